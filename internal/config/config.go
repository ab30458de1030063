// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	domain "github.com/stampdesk/stampdesk/pkg/types"
)

// Config is the top-level application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	Ebay          EbayConfig          `yaml:"ebay"`
	ImageHosts    ImageHostsConfig    `yaml:"image_hosts"`
	Vision        VisionConfig        `yaml:"vision"`
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

// DatabaseConfig defines PostgreSQL connection settings for the tracking store.
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

// EbayConfig defines eBay API settings.
type EbayConfig struct {
	Environment  domain.Environment `yaml:"environment"` // sandbox or production
	AppID        string             `yaml:"app_id"`
	CertID       string             `yaml:"cert_id"`
	RefreshToken string             `yaml:"refresh_token"`
	UserID       string             `yaml:"user_id"`

	TokenURL     string `yaml:"token_url"`
	TradingURL   string `yaml:"trading_url"`
	AccountURL   string `yaml:"account_url"`
	InventoryURL string `yaml:"inventory_url"`

	SiteID             string `yaml:"site_id"`
	CompatibilityLevel string `yaml:"compatibility_level"`
	MarketplaceID      string `yaml:"marketplace_id"`

	// DefaultCountry is used when the seller's registered country cannot
	// be detected from the inventory location API.
	DefaultCountry string `yaml:"default_country"`
	Location       string `yaml:"location"`

	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig defines eBay API rate limiting settings.
type RateLimitConfig struct {
	PerSecond  float64 `yaml:"per_second"`
	Burst      int     `yaml:"burst"`
	DailyLimit int64   `yaml:"daily_limit"`
}

// ImageHostsConfig defines the image hosting backends.
type ImageHostsConfig struct {
	ImgbbKey       string        `yaml:"imgbb_key"`
	ImgbbURL       string        `yaml:"imgbb_url"`
	PlaceholderURL string        `yaml:"placeholder_url"`
	Timeout        time.Duration `yaml:"timeout"`
}

// VisionConfig defines the vision extraction backend settings.
type VisionConfig struct {
	Backend   string        `yaml:"backend"` // anthropic, openai_compat
	Model     string        `yaml:"model"`
	Endpoint  string        `yaml:"endpoint"`
	Timeout   time.Duration `yaml:"timeout"`
	MaxTokens int           `yaml:"max_tokens"`
}

// NotificationsConfig defines notification targets.
type NotificationsConfig struct {
	Discord DiscordConfig `yaml:"discord"`
}

// DiscordConfig defines Discord webhook settings.
type DiscordConfig struct {
	Enabled    bool   `yaml:"enabled"`
	WebhookURL string `yaml:"webhook_url"`
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
	applyEbayDefaults(&cfg.Ebay)
	applyImageHostDefaults(&cfg.ImageHosts)
	applyVisionDefaults(&cfg.Vision)
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

func applyEbayDefaults(e *EbayConfig) {
	if e.Environment == "" {
		e.Environment = domain.EnvSandbox
	}

	sandbox := e.Environment == domain.EnvSandbox
	if e.TokenURL == "" {
		if sandbox {
			e.TokenURL = "https://api.sandbox.ebay.com/identity/v1/oauth2/token"
		} else {
			e.TokenURL = "https://api.ebay.com/identity/v1/oauth2/token"
		}
	}
	if e.TradingURL == "" {
		if sandbox {
			e.TradingURL = "https://api.sandbox.ebay.com/ws/api.dll"
		} else {
			e.TradingURL = "https://api.ebay.com/ws/api.dll"
		}
	}
	if e.AccountURL == "" {
		if sandbox {
			e.AccountURL = "https://api.sandbox.ebay.com/sell/account/v1"
		} else {
			e.AccountURL = "https://api.ebay.com/sell/account/v1"
		}
	}
	if e.InventoryURL == "" {
		if sandbox {
			e.InventoryURL = "https://api.sandbox.ebay.com/sell/inventory/v1"
		} else {
			e.InventoryURL = "https://api.ebay.com/sell/inventory/v1"
		}
	}
	if e.SiteID == "" {
		e.SiteID = "0" // eBay US
	}
	if e.CompatibilityLevel == "" {
		e.CompatibilityLevel = "1193"
	}
	if e.MarketplaceID == "" {
		e.MarketplaceID = "EBAY_US"
	}
	if e.DefaultCountry == "" {
		e.DefaultCountry = "US"
	}

	applyRateLimitDefaults(&e.RateLimit)
}

func applyRateLimitDefaults(r *RateLimitConfig) {
	if r.PerSecond == 0 {
		r.PerSecond = 2.0
	}
	if r.Burst == 0 {
		r.Burst = 4
	}
	if r.DailyLimit == 0 {
		r.DailyLimit = 5000
	}
}

func applyImageHostDefaults(i *ImageHostsConfig) {
	if i.ImgbbURL == "" {
		i.ImgbbURL = "https://api.imgbb.com/1/upload"
	}
	if i.PlaceholderURL == "" {
		i.PlaceholderURL = "https://i.ibb.co/placeholder/image-unavailable.png"
	}
	if i.Timeout == 0 {
		i.Timeout = 30 * time.Second
	}
}

func applyVisionDefaults(v *VisionConfig) {
	if v.Backend == "" {
		v.Backend = "anthropic"
	}
	if v.Timeout == 0 {
		v.Timeout = 60 * time.Second
	}
	if v.MaxTokens == 0 {
		v.MaxTokens = 1024
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
	if cfg.Ebay.Environment != domain.EnvSandbox && cfg.Ebay.Environment != domain.EnvProduction {
		return fmt.Errorf("ebay.environment must be sandbox or production, got %q", cfg.Ebay.Environment)
	}

	if cfg.Ebay.AppID == "" {
		return errors.New("ebay.app_id is required")
	}
	if cfg.Ebay.CertID == "" {
		return errors.New("ebay.cert_id is required")
	}

	if cfg.Database.Host == "" {
		return errors.New("database.host is required")
	}
	if cfg.Database.Name == "" {
		return errors.New("database.name is required")
	}

	if cfg.Notifications.Discord.Enabled && cfg.Notifications.Discord.WebhookURL == "" {
		return errors.New("notifications.discord.webhook_url is required when discord is enabled")
	}

	switch cfg.Vision.Backend {
	case "anthropic", "openai_compat":
	default:
		return fmt.Errorf("vision.backend must be anthropic or openai_compat, got %q", cfg.Vision.Backend)
	}

	return nil
}
