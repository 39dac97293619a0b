package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Environment represents different deployment environments.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvTesting     Environment = "testing"
	EnvProduction  Environment = "production"
)

// Config holds the configuration for the planner services.
// Environment variables are parsed from the PLANNER_ prefix.
type Config struct {
	// Build target selects the high-level environment: local | cloud
	BuildTarget string `envconfig:"BUILD_TARGET" default:"local"`

	// Derived or override driver: auto | sqlite | postgres
	DBDriver string `envconfig:"DB_DRIVER" default:"auto"`

	Environment Environment `envconfig:"ENVIRONMENT" default:"development"`

	// HTTP configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// Postgres configuration
	PostgresDSN string `envconfig:"POSTGRES_DSN" default:""`

	// SQLite configuration (local target)
	SQLitePath string `envconfig:"SQLITE_PATH" default:""`

	// User-local timezone for date bucketing. "Local" uses the host zone.
	TimeZone string `envconfig:"TIME_ZONE" default:"Local"`

	// Reminder worker configuration
	ReminderMode            string `envconfig:"REMINDER_MODE" default:"poll"` // poll | timer
	ReminderIntervalSeconds int    `envconfig:"REMINDER_INTERVAL_SECONDS" default:"60"`
	ReminderRefreshSeconds  int    `envconfig:"REMINDER_REFRESH_SECONDS" default:"300"`

	// Notification sink: desktop | webhook
	NotifySink string `envconfig:"NOTIFY_SINK" default:"desktop"`
	WebhookURL string `envconfig:"WEBHOOK_URL" default:""`

	// Health checking
	HealthIntervalSeconds     int `envconfig:"HEALTH_INTERVAL_SECONDS" default:"15"`
	HealthProbeTimeoutSeconds int `envconfig:"HEALTH_PROBE_TIMEOUT_SECONDS" default:"2"`
	BootstrapTimeoutSeconds   int `envconfig:"BOOTSTRAP_TIMEOUT_SECONDS" default:"30"`
}

// ResolveDefaults validates BuildTarget and derives DBDriver when set to
// "auto" or empty.
func (c *Config) ResolveDefaults() error {
	var defaultDB string

	switch c.BuildTarget {
	case "local":
		defaultDB = "sqlite"
	case "cloud":
		defaultDB = "postgres"
	default:
		return fmt.Errorf("unsupported BUILD_TARGET: %s", c.BuildTarget)
	}

	if c.DBDriver == "" || c.DBDriver == "auto" {
		c.DBDriver = defaultDB
	}

	allowedDB := map[string]bool{"sqlite": true, "postgres": true}
	if !allowedDB[c.DBDriver] {
		return fmt.Errorf("unsupported DB_DRIVER: %s", c.DBDriver)
	}

	switch c.ReminderMode {
	case "poll", "timer":
	default:
		return fmt.Errorf("unsupported REMINDER_MODE: %s", c.ReminderMode)
	}

	switch c.NotifySink {
	case "desktop":
	case "webhook":
		if c.WebhookURL == "" {
			return fmt.Errorf("PLANNER_WEBHOOK_URL is required when NOTIFY_SINK=webhook")
		}
	default:
		return fmt.Errorf("unsupported NOTIFY_SINK: %s", c.NotifySink)
	}
	return nil
}

// New creates a Config by parsing environment variables.
// Variables are prefixed with PLANNER_, e.g. PLANNER_HTTP_PORT.
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("PLANNER", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}

	log.Info().
		Str("build_target", cfg.BuildTarget).
		Str("db_driver", cfg.DBDriver).
		Str("environment", string(cfg.Environment)).
		Int("port", cfg.HTTPPort).
		Str("time_zone", cfg.TimeZone).
		Str("reminder_mode", cfg.ReminderMode).
		Str("notify_sink", cfg.NotifySink).
		Msg("Configuration loaded")

	return &cfg, nil
}

// NewForTesting creates a config suitable for unit tests: in-memory
// SQLite, testing environment, no external sinks.
func NewForTesting() *Config {
	return &Config{
		BuildTarget:               "local",
		DBDriver:                  "sqlite",
		Environment:               EnvTesting,
		HTTPPort:                  8080,
		TimeZone:                  "UTC",
		ReminderMode:              "poll",
		ReminderIntervalSeconds:   60,
		ReminderRefreshSeconds:    300,
		NotifySink:                "desktop",
		HealthIntervalSeconds:     15,
		HealthProbeTimeoutSeconds: 2,
		BootstrapTimeoutSeconds:   30,
	}
}

// IsTesting returns true if the environment is set to testing.
func (c *Config) IsTesting() bool { return c.Environment == EnvTesting }

// IsProduction returns true if the environment is set to production.
func (c *Config) IsProduction() bool { return c.Environment == EnvProduction }

// GetHTTPAddr returns the HTTP server address.
func (c *Config) GetHTTPAddr() string { return fmt.Sprintf(":%d", c.HTTPPort) }

// Location resolves the configured timezone, falling back to the host
// zone when the name cannot be loaded.
func (c *Config) Location() *time.Location {
	if c.TimeZone == "" || c.TimeZone == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		log.Warn().Str("time_zone", c.TimeZone).Err(err).Msg("falling back to host timezone")
		return time.Local
	}
	return loc
}

// ReminderInterval returns the polling cadence for the reminder worker.
func (c *Config) ReminderInterval() time.Duration {
	return time.Duration(c.ReminderIntervalSeconds) * time.Second
}

// ReminderRefresh returns the rescheduling cadence for the timer variant.
func (c *Config) ReminderRefresh() time.Duration {
	return time.Duration(c.ReminderRefreshSeconds) * time.Second
}
