package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vitalog/vitalog/internal/config"
	"github.com/vitalog/vitalog/internal/logger"
)

// DB wraps the shared *sql.DB handle together with the driver-specific error
// classifier used by the repositories to translate constraint violations
// into sentinel errors.
type DB struct {
	*sql.DB
	classifier ErrorClassifier
	logger     *logger.Logger
}

// ErrorClassifier inspects driver-level errors and recognises the constraint
// violations the repositories care about. Each supported backend provides
// its own implementation.
type ErrorClassifier interface {
	// IsUniqueViolation reports whether err was caused by a UNIQUE
	// constraint (duplicate email, duplicate open fast, reused token).
	IsUniqueViolation(err error) bool

	// IsForeignKeyViolation reports whether err was caused by a FOREIGN KEY
	// constraint (e.g. a session referencing a deleted user).
	IsForeignKeyViolation(err error) bool
}

// NewDatabase opens a database connection for the configured driver.
// Supported drivers: "pgx" (PostgreSQL) and "sqlite3" (local development).
func NewDatabase(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case "pgx":
		return NewConnectPostgres(ctx, cfg.DSN, log)
	case "sqlite3":
		return NewConnectSQLite(ctx, cfg.DSN, log)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}
