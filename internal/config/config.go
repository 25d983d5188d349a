package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds process configuration read from the environment.
type Config struct {
	Port            string
	DatabaseDriver  string
	DatabasePath    string
	DatabaseURL     string
	PublicBaseURL   string
	MaxUploadBytes  int64
	UploadRate      float64
	UploadBurst     float64
	LogLevel        slog.Level
	ShutdownTimeout time.Duration

	// TrustProxyHeaders lets X-Real-IP and X-Forwarded-For set the client
	// address. Enable only behind a proxy that overwrites them.
	TrustProxyHeaders bool
}

// Load reads configuration from the process environment. Values in the
// given .env files are loaded first without overriding variables that are
// already set; missing files are ignored.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("port", "8080")
	v.SetDefault("database_driver", DriverSQLite)
	v.SetDefault("database_path", "gallery.db")
	v.SetDefault("database_url", "")
	v.SetDefault("public_base_url", "")
	v.SetDefault("max_upload_bytes", 10<<20)
	v.SetDefault("upload_rate", 1.0)
	v.SetDefault("upload_burst", 10.0)
	v.SetDefault("log_level", "info")
	v.SetDefault("shutdown_timeout", "5s")
	v.SetDefault("trust_proxy_headers", false)

	var level slog.Level
	if err := level.UnmarshalText([]byte(v.GetString("log_level"))); err != nil {
		return Config{}, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	cfg := Config{
		Port:            v.GetString("port"),
		DatabaseDriver:  strings.ToLower(v.GetString("database_driver")),
		DatabasePath:    v.GetString("database_path"),
		DatabaseURL:     v.GetString("database_url"),
		PublicBaseURL:   strings.TrimRight(v.GetString("public_base_url"), "/"),
		MaxUploadBytes:  v.GetInt64("max_upload_bytes"),
		UploadRate:      v.GetFloat64("upload_rate"),
		UploadBurst:     v.GetFloat64("upload_burst"),
		LogLevel:        level,
		ShutdownTimeout: v.GetDuration("shutdown_timeout"),

		TrustProxyHeaders: v.GetBool("trust_proxy_headers"),
	}
	return cfg, cfg.Validate()
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch c.DatabaseDriver {
	case DriverSQLite:
		if c.DatabasePath == "" {
			return errors.New("DATABASE_PATH is required for the sqlite driver")
		}
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown DATABASE_DRIVER %q", c.DatabaseDriver)
	}
	if c.Port == "" {
		return errors.New("PORT must not be empty")
	}
	if c.MaxUploadBytes <= 0 {
		return errors.New("MAX_UPLOAD_BYTES must be positive")
	}
	if c.UploadRate < 0 {
		return errors.New("UPLOAD_RATE must not be negative")
	}
	if c.UploadBurst < 1 {
		return errors.New("UPLOAD_BURST must be at least 1")
	}
	if c.ShutdownTimeout <= 0 {
		return errors.New("SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}
