package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{"defaults", func(cfg *StructuredConfig) {}, nil},
		{"postgres driver", func(cfg *StructuredConfig) {
			cfg.Storage.DB.Driver = DriverPostgres
			cfg.Storage.DB.DSN = "postgres://localhost/accounts"
		}, nil},
		{"unknown driver", func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = "mysql" }, ErrInvalidStorageConfigs},
		{"empty dsn", func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" }, ErrInvalidStorageConfigs},
		{"unknown algorithm", func(cfg *StructuredConfig) { cfg.App.PasswordHashAlgorithm = "md5" }, ErrInvalidAppConfigs},
		{"hmac without key", func(cfg *StructuredConfig) { cfg.App.PasswordHashAlgorithm = "hmac-sha256" }, ErrInvalidAppConfigs},
		{"hmac with key", func(cfg *StructuredConfig) {
			cfg.App.PasswordHashAlgorithm = "hmac-sha256"
			cfg.App.PasswordHashKey = "secret"
		}, nil},
		{"argon2id", func(cfg *StructuredConfig) { cfg.App.PasswordHashAlgorithm = "argon2id" }, nil},
		{"username bound too small", func(cfg *StructuredConfig) { cfg.App.MaxUsernameLength = 2 }, ErrInvalidAppConfigs},
		{"no listen address", func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" }, ErrInvalidServerConfigs},
		{"no server timeout", func(cfg *StructuredConfig) { cfg.Server.RequestTimeout = 0 }, ErrInvalidServerConfigs},
		{"no adapter timeout", func(cfg *StructuredConfig) { cfg.Adapter.RequestTimeout = 0 }, ErrInvalidAdapterConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
