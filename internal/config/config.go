package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port       int    `mapstructure:"PORT"`
	Env        string `mapstructure:"APP_ENV"` // development | production
	CORSOrigin string `mapstructure:"CORS_ORIGIN"`

	// Database
	DBDriver    string `mapstructure:"DB_DRIVER"`    // sqlite | postgres
	DatabaseURL string `mapstructure:"DATABASE_URL"` // file path for sqlite, DSN for postgres

	// Auth
	JWTSecret           string `mapstructure:"JWT_SECRET"`
	JWTExpirationHours  int    `mapstructure:"JWT_EXPIRATION_HOURS"`
	LoginAttemptsPerMin int    `mapstructure:"LOGIN_ATTEMPTS_PER_MINUTE"` // 0 disables the limiter

	// Business
	LowStockThreshold int    `mapstructure:"LOW_STOCK_THRESHOLD"`
	CurrencyLabel     string `mapstructure:"CURRENCY_LABEL"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	v.SetDefault("PORT", 8000)
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("CORS_ORIGIN", "*")
	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("DATABASE_URL", "RevUp.db")
	v.SetDefault("JWT_SECRET", "revup-development-secret-change-me")
	v.SetDefault("JWT_EXPIRATION_HOURS", 8)
	v.SetDefault("LOGIN_ATTEMPTS_PER_MINUTE", 20)
	v.SetDefault("LOW_STOCK_THRESHOLD", 5)
	v.SetDefault("CURRENCY_LABEL", "PHP")

	// Optional .env file for local development; does not fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
