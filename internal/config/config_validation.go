package config

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants the application relies on at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.Driver != "pgx" && cfg.Storage.DB.Driver != "sqlite3" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Auth.SessionDuration <= 0 || cfg.Auth.SessionRenewalThreshold <= 0 {
		return ErrInvalidAuthConfigs
	}

	// A threshold at or above the full lifetime would refresh on every
	// request and defeat the amortisation.
	if cfg.Auth.SessionRenewalThreshold >= cfg.Auth.SessionDuration {
		return ErrInvalidAuthConfigs
	}

	return nil
}
