package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "RevUp.db", cfg.DatabaseURL)
	assert.Equal(t, 5, cfg.LowStockThreshold)
	assert.Equal(t, 8, cfg.JWTExpirationHours)
	assert.Equal(t, 20, cfg.LoginAttemptsPerMin)
	assert.Equal(t, "PHP", cfg.CurrencyLabel)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9100")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("LOW_STOCK_THRESHOLD", "2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Port)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, 2, cfg.LowStockThreshold)
}
