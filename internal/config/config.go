// Package config loads server settings from GIFTDRAW_* environment variables
// and command-line flags.
package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/mmynk/giftdraw/internal/pairing"
	"github.com/mmynk/giftdraw/internal/validation"
)

// Config holds the server configuration.
type Config struct {
	Port     int    `env:"GIFTDRAW_PORT"      envDefault:"8080"                validate:"min=1,max=65535"`
	DBPath   string `env:"GIFTDRAW_DB_PATH"   envDefault:"./data/giftdraw.db"  validate:"required"`
	LogLevel string `env:"GIFTDRAW_LOG_LEVEL" envDefault:"info"                validate:"oneof=debug info warn error"`

	JWTSecret string        `env:"GIFTDRAW_JWT_SECRET" validate:"required,min=32"`
	TokenTTL  time.Duration `env:"GIFTDRAW_TOKEN_TTL"  envDefault:"24h" validate:"min=1m"`

	// AdminEmail and AdminPassword seed the administrator account on startup
	// when no user with that email exists yet.
	AdminEmail    string `env:"GIFTDRAW_ADMIN_EMAIL"    validate:"omitempty,email"`
	AdminPassword string `env:"GIFTDRAW_ADMIN_PASSWORD" validate:"required_with=AdminEmail"`

	YearsLookback int `env:"GIFTDRAW_YEARS_LOOKBACK" envDefault:"3"  validate:"gte=0"`
	MinimumAge    int `env:"GIFTDRAW_MINIMUM_AGE"    envDefault:"18" validate:"gte=0"`

	CORSOrigins []string `env:"GIFTDRAW_CORS_ORIGINS" envDefault:"*" envSeparator:","`

	// OTLPEndpoint is the URL of an OTLP/HTTP trace collector.
	// Tracing is disabled when empty.
	OTLPEndpoint string `env:"GIFTDRAW_OTLP_ENDPOINT"`
}

// ParseConfig parses environment and flags into a Config and validates it.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.IntVar(&cfg.Port, "port", cfg.Port, "HTTP listen port")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite database path")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	fs.IntVar(&cfg.YearsLookback, "years-lookback", cfg.YearsLookback, "years a previous pairing blocks a repeat")
	fs.IntVar(&cfg.MinimumAge, "minimum-age", cfg.MinimumAge, "minimum age to take part in a drawing")
	fs.StringVar(&cfg.OTLPEndpoint, "otlp-endpoint", cfg.OTLPEndpoint, "OTLP/HTTP trace collector URL")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := validation.Struct(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Pairing returns the engine settings.
func (c Config) Pairing() pairing.Config {
	return pairing.Config{
		YearsLookback: c.YearsLookback,
		MinimumAge:    c.MinimumAge,
	}
}
