package config

import (
	"errors"
	"fmt"
	"time"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	config.applyDerivedDefaults()

	return config, config.validate()
}

// applyDerivedDefaults fills the fields whose default depends on another
// field and therefore cannot live in the static withDefaults source.
// Secure cookies default to on everywhere except local development; an
// explicit value from env, flags or JSON always wins.
func (cfg *StructuredConfig) applyDerivedDefaults() {
	if cfg.Auth.SecureCookies == nil {
		secure := cfg.App.Environment != "development"
		cfg.Auth.SecureCookies = &secure
	}
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	flags := ParseFlags()

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	isJSONSpecified := false

	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			isJSONSpecified = true
			jsonPath = cfg.JSONFilePath
		}
	}

	if isJSONSpecified {
		jsonCfg, err := parseJSON(jsonPath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.configs = append(b.configs, jsonCfg)
	}

	return b
}

// withDefaults appends the built-in defaults. Mergo fills only zero fields,
// so appending last makes defaults the lowest-priority source.
func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, &StructuredConfig{
		App: App{
			Environment: "development",
		},
		Auth: Auth{
			SessionDuration:         720 * time.Hour,
			SessionRenewalThreshold: 168 * time.Hour,
		},
		Storage: Storage{
			DB: DB{
				Driver: "sqlite3",
				DSN:    "file:vitalog.db?_foreign_keys=on",
			},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Workers: Workers{
			SessionPurgeInterval: time.Hour,
		},
	})
	return b
}
