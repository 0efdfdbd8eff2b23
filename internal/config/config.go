// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	Offers        OffersConfig        `yaml:"offers"`
	Schedule      ScheduleConfig      `yaml:"schedule"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
}

// OffersConfig defines offer lifecycle behavior.
type OffersConfig struct {
	// DefaultPageSize is the page size used when a list request omits limit.
	DefaultPageSize int `yaml:"default_page_size"`
	// MaxPageSize caps the limit query parameter.
	MaxPageSize int `yaml:"max_page_size"`
}

// ScheduleConfig defines the offer expiry sweep.
type ScheduleConfig struct {
	// ExpiryEnabled turns the sweep on. Off by default: expiring offers is a
	// policy decision, not every deployment wants it.
	ExpiryEnabled bool `yaml:"expiry_enabled"`
	// ExpiryInterval is how often the sweep runs.
	ExpiryInterval time.Duration `yaml:"expiry_interval"`
	// ExpireAfter is how long a PENDING offer may sit unmodified before the
	// sweep marks it EXPIRED.
	ExpireAfter time.Duration `yaml:"expire_after"`
}

// NotificationsConfig defines notification targets and dispatch behavior.
type NotificationsConfig struct {
	Discord   DiscordConfig   `yaml:"discord"`
	Dispatch  DispatchConfig  `yaml:"dispatch"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// DiscordConfig defines Discord webhook settings.
type DiscordConfig struct {
	Enabled    bool   `yaml:"enabled"`
	WebhookURL string `yaml:"webhook_url"`
}

// DispatchConfig defines the background notification dispatcher.
type DispatchConfig struct {
	// QueueSize is the buffered event queue depth. Events beyond this are
	// dropped with a log line rather than blocking request handling.
	QueueSize int `yaml:"queue_size"`
	// SendTimeout bounds each outbound send attempt.
	SendTimeout time.Duration `yaml:"send_timeout"`
}

// RateLimitConfig throttles outbound notification sends.
type RateLimitConfig struct {
	PerSecond float64 `yaml:"per_second"`
	Burst     int     `yaml:"burst"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applyOffersDefaults(&cfg.Offers)
	applyScheduleDefaults(&cfg.Schedule)
	applyNotificationsDefaults(&cfg.Notifications)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applyOffersDefaults(o *OffersConfig) {
	if o.DefaultPageSize == 0 {
		o.DefaultPageSize = 20
	}
	if o.MaxPageSize == 0 {
		o.MaxPageSize = 200
	}
}

func applyScheduleDefaults(s *ScheduleConfig) {
	if s.ExpiryInterval == 0 {
		s.ExpiryInterval = time.Hour
	}
	if s.ExpireAfter == 0 {
		s.ExpireAfter = 30 * 24 * time.Hour
	}
}

func applyNotificationsDefaults(n *NotificationsConfig) {
	if n.Dispatch.QueueSize == 0 {
		n.Dispatch.QueueSize = 256
	}
	if n.Dispatch.SendTimeout == 0 {
		n.Dispatch.SendTimeout = 10 * time.Second
	}
	if n.RateLimit.PerSecond == 0 {
		n.RateLimit.PerSecond = 2.0
	}
	if n.RateLimit.Burst == 0 {
		n.RateLimit.Burst = 5
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Database.Host == "" {
		errs = append(errs, fmt.Errorf("database.host is required"))
	}
	if cfg.Database.Name == "" {
		errs = append(errs, fmt.Errorf("database.name is required"))
	}
	if cfg.Database.User == "" {
		errs = append(errs, fmt.Errorf("database.user is required"))
	}

	if cfg.Notifications.Discord.Enabled && cfg.Notifications.Discord.WebhookURL == "" {
		errs = append(
			errs,
			fmt.Errorf("notifications.discord.webhook_url is required when discord is enabled"),
		)
	}

	if cfg.Schedule.ExpiryEnabled && cfg.Schedule.ExpireAfter < time.Hour {
		errs = append(
			errs,
			fmt.Errorf("schedule.expire_after must be at least 1h when expiry is enabled"),
		)
	}

	return errors.Join(errs...)
}
