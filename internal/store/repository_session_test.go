package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/vitalog/vitalog/models"
)

func newTestSessionRepo(t *testing.T) (*sessionRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock := newTestDB(t)
	repo := &sessionRepository{db: db, logger: db.logger}
	return repo, mock
}

func TestCreateSession_Success(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	ctx := context.Background()
	session := models.Session{
		Token:     "abc123",
		UserID:    "u-1",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	mock.ExpectExec("INSERT INTO sessions").
		WithArgs(session.Token, session.UserID, session.ExpiresAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.CreateSession(ctx, session); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFindSession_Success(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	ctx := context.Background()
	expiresAt := time.Now().Add(time.Hour)

	rows := sqlmock.
		NewRows([]string{"token", "user_id", "expires_at"}).
		AddRow("abc123", "u-1", expiresAt)

	mock.ExpectQuery("SELECT token").
		WithArgs("abc123").
		WillReturnRows(rows)

	session, err := repo.FindSession(ctx, "abc123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.UserID != "u-1" {
		t.Errorf("expected UserID u-1, got %s", session.UserID)
	}
}

func TestFindSession_ReturnsExpiredRow(t *testing.T) {
	// Expiry is the session manager's concern: the repository must hand back
	// an expired row untouched so the manager can delete it and report why.
	repo, mock := newTestSessionRepo(t)

	ctx := context.Background()
	expiredAt := time.Now().Add(-time.Hour)

	rows := sqlmock.
		NewRows([]string{"token", "user_id", "expires_at"}).
		AddRow("stale", "u-1", expiredAt)

	mock.ExpectQuery("SELECT token").
		WithArgs("stale").
		WillReturnRows(rows)

	session, err := repo.FindSession(ctx, "stale")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !session.Expired(time.Now()) {
		t.Error("expected session to report expired")
	}
}

func TestFindSession_NotFound(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	ctx := context.Background()

	mock.ExpectQuery("SELECT token").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindSession(ctx, "missing")
	if !errors.Is(err, ErrNoSessionWasFound) {
		t.Fatalf("expected ErrNoSessionWasFound, got %v", err)
	}
}

func TestUpdateSessionExpiry_Success(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	ctx := context.Background()
	newExpiry := time.Now().Add(2 * time.Hour)

	mock.ExpectExec("UPDATE sessions").
		WithArgs(newExpiry, "abc123").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdateSessionExpiry(ctx, "abc123", newExpiry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdateSessionExpiry_GoneSession(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	ctx := context.Background()

	mock.ExpectExec("UPDATE sessions").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateSessionExpiry(ctx, "gone", time.Now().Add(time.Hour))
	if !errors.Is(err, ErrNoSessionWasFound) {
		t.Fatalf("expected ErrNoSessionWasFound, got %v", err)
	}
}

func TestDeleteSession_Idempotent(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM sessions").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.DeleteSession(ctx, "missing"); err != nil {
		t.Fatalf("deleting an absent session must not fail, got %v", err)
	}
}

func TestDeleteSessionsForUser_Success(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM sessions").
		WithArgs("u-1").
		WillReturnResult(sqlmock.NewResult(0, 3))

	if err := repo.DeleteSessionsForUser(ctx, "u-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteExpiredSessions_ReportsCount(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	ctx := context.Background()
	now := time.Now()

	mock.ExpectExec("DELETE FROM sessions").
		WithArgs(now).
		WillReturnResult(sqlmock.NewResult(0, 5))

	purged, err := repo.DeleteExpiredSessions(ctx, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if purged != 5 {
		t.Errorf("expected 5 purged sessions, got %d", purged)
	}
}

func TestDeleteExpiredSessions_DBError(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM sessions").
		WillReturnError(errors.New("db failure"))

	_, err := repo.DeleteExpiredSessions(ctx, time.Now())
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected wrapped ErrExecutingStatement, got %v", err)
	}
}
