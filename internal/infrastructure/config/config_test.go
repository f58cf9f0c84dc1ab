package config

import (
	"os"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Save original env vars and restore after tests
	originalEnv := map[string]string{
		"ATTAR_APP_NAME":               os.Getenv("ATTAR_APP_NAME"),
		"ATTAR_APP_ENV":                os.Getenv("ATTAR_APP_ENV"),
		"ATTAR_APP_PORT":               os.Getenv("ATTAR_APP_PORT"),
		"ATTAR_DATABASE_HOST":          os.Getenv("ATTAR_DATABASE_HOST"),
		"ATTAR_DATABASE_PORT":          os.Getenv("ATTAR_DATABASE_PORT"),
		"ATTAR_DATABASE_USER":          os.Getenv("ATTAR_DATABASE_USER"),
		"ATTAR_DATABASE_PASSWORD":      os.Getenv("ATTAR_DATABASE_PASSWORD"),
		"ATTAR_DATABASE_DBNAME":        os.Getenv("ATTAR_DATABASE_DBNAME"),
		"ATTAR_DATABASE_SSLMODE":       os.Getenv("ATTAR_DATABASE_SSLMODE"),
		"ATTAR_LEDGER_DRIFT_TOLERANCE": os.Getenv("ATTAR_LEDGER_DRIFT_TOLERANCE"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv()

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "attarerp-backend", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "attarerp", cfg.Database.DBName)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.True(t, cfg.Ledger.DriftTolerance.Equal(decimal.NewFromInt(1)))
	})

	t.Run("loads values from environment variables with ATTAR prefix", func(t *testing.T) {
		clearEnv()
		os.Setenv("ATTAR_APP_PORT", "9000")
		os.Setenv("ATTAR_DATABASE_HOST", "testdb.local")
		os.Setenv("ATTAR_DATABASE_PORT", "5433")
		os.Setenv("ATTAR_LEDGER_DRIFT_TOLERANCE", "0.50")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, "testdb.local", cfg.Database.Host)
		assert.Equal(t, 5433, cfg.Database.Port)
		assert.True(t, cfg.Ledger.DriftTolerance.Equal(decimal.RequireFromString("0.50")))
	})

	t.Run("rejects a malformed drift tolerance", func(t *testing.T) {
		clearEnv()
		os.Setenv("ATTAR_LEDGER_DRIFT_TOLERANCE", "lots")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("production requires a database password", func(t *testing.T) {
		clearEnv()
		os.Setenv("ATTAR_APP_ENV", "production")
		os.Setenv("ATTAR_DATABASE_SSLMODE", "require")

		_, err := Load()
		assert.Error(t, err)
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Run("escapes special characters in credentials", func(t *testing.T) {
		d := DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "user",
			Password: "p@ss/word",
			DBName:   "attarerp",
			SSLMode:  "disable",
		}

		dsn := d.DSN()

		assert.Contains(t, dsn, "postgres://")
		assert.Contains(t, dsn, "p%40ss%2Fword")
		assert.Contains(t, dsn, "sslmode=disable")
	})
}
