package config

import (
	"errors"

	"github.com/spf13/viper"
)

// ErrConfigurationMissing is returned by Load when a required secret is
// absent. main treats it as fatal before any store interaction.
var ErrConfigurationMissing = errors.New("missing required configuration")

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Database
	DatabaseURL string `mapstructure:"DATABASE_URL"`

	// Redis
	RedisURL string `mapstructure:"REDIS_URL"`

	// Auth
	JWTSecret          string `mapstructure:"JWT_SECRET"`
	JWTExpirationHours int    `mapstructure:"JWT_EXPIRATION_HOURS"`
	JWTRefreshHours    int    `mapstructure:"JWT_REFRESH_HOURS"`

	// Snapshot cache / activity log tunables
	CacheTTLSeconds     int `mapstructure:"CACHE_TTL_SECONDS"`
	ActivityLogPageSize int `mapstructure:"ACTIVITY_LOG_PAGE_SIZE"`

	// SMTP (report delivery)
	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     int    `mapstructure:"SMTP_PORT"`
	SMTPUser     string `mapstructure:"SMTP_USER"`
	SMTPPassword string `mapstructure:"SMTP_PASSWORD"`

	// Business
	ReportStoragePath string `mapstructure:"REPORT_STORAGE_PATH"`
	SalonName         string `mapstructure:"SALON_NAME"`
}

// Load reads configuration from environment variables (and optional .env file).
// DATABASE_URL and JWT_SECRET have no defaults: missing values abort startup.
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	viper.SetDefault("PORT", 8000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("JWT_EXPIRATION_HOURS", 8)
	viper.SetDefault("JWT_REFRESH_HOURS", 24)
	viper.SetDefault("CACHE_TTL_SECONDS", 60)
	viper.SetDefault("ACTIVITY_LOG_PAGE_SIZE", 50)
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("REPORT_STORAGE_PATH", "/tmp/salon/reports")
	viper.SetDefault("SALON_NAME", "Salon Transaction System")
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.Join(ErrConfigurationMissing, errors.New("DATABASE_URL is not set"))
	}
	if cfg.JWTSecret == "" {
		return nil, errors.Join(ErrConfigurationMissing, errors.New("JWT_SECRET is not set"))
	}
	return cfg, nil
}
