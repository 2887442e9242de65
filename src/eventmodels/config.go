package eventmodels

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultPollIntervalSeconds    = 10
	defaultReconnectDelaySeconds  = 5
	defaultNotificationTTLSeconds = 5
)

type BalanceWatch struct {
	AccountType string `yaml:"account_type"`
	AccountID   string `yaml:"account_id"`
}

// WatchConfig seeds the dashboard with the trade rows and balance cells to
// keep current. The view remains the source of truth at runtime; this only
// provides the initial set.
type WatchConfig struct {
	Trades   []string       `yaml:"trades"`
	Balances []BalanceWatch `yaml:"balances"`
}

type Config struct {
	BaseURL                string      `yaml:"base_url"`
	WsOrigin               string      `yaml:"ws_origin"`
	LiveChannelEnabled     bool        `yaml:"live_channel_enabled"`
	PollIntervalSeconds    int         `yaml:"poll_interval_seconds"`
	ReconnectDelaySeconds  int         `yaml:"reconnect_delay_seconds"`
	NotificationTTLSeconds int         `yaml:"notification_ttl_seconds"`
	LogLevel               string      `yaml:"log_level"`
	Watch                  WatchConfig `yaml:"watch"`
}

func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalSeconds) * time.Second
}

func (c *Config) ReconnectDelay() time.Duration {
	return time.Duration(c.ReconnectDelaySeconds) * time.Second
}

func (c *Config) NotificationTTL() time.Duration {
	return time.Duration(c.NotificationTTLSeconds) * time.Second
}

func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("Config:Validate(): base_url is required")
	}

	if c.LiveChannelEnabled && c.WsOrigin == "" {
		return fmt.Errorf("Config:Validate(): ws_origin is required when the live channel is enabled")
	}

	if c.PollIntervalSeconds <= 0 {
		return fmt.Errorf("Config:Validate(): poll_interval_seconds must be positive, got %d", c.PollIntervalSeconds)
	}

	if c.ReconnectDelaySeconds <= 0 {
		return fmt.Errorf("Config:Validate(): reconnect_delay_seconds must be positive, got %d", c.ReconnectDelaySeconds)
	}

	if c.NotificationTTLSeconds <= 0 {
		return fmt.Errorf("Config:Validate(): notification_ttl_seconds must be positive, got %d", c.NotificationTTLSeconds)
	}

	for _, watch := range c.Watch.Balances {
		target := RefreshTarget{Kind: ResourceKindAccountBalance, ResourceID: watch.AccountID, AccountType: watch.AccountType}
		if err := target.Validate(); err != nil {
			return fmt.Errorf("Config:Validate(): invalid balance watch: %w", err)
		}
	}

	return nil
}

// LoadConfig reads the yaml config file, fills in defaults, and applies
// environment overrides for the connection endpoints.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("LoadConfig: failed to read %s: %w", path, err)
	}

	config := &Config{
		PollIntervalSeconds:    defaultPollIntervalSeconds,
		ReconnectDelaySeconds:  defaultReconnectDelaySeconds,
		NotificationTTLSeconds: defaultNotificationTTLSeconds,
		LogLevel:               "info",
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("LoadConfig: failed to unmarshal %s: %w", path, err)
	}

	if baseURL := os.Getenv("DASHBOARD_BASE_URL"); baseURL != "" {
		config.BaseURL = baseURL
	}

	if wsOrigin := os.Getenv("DASHBOARD_WS_ORIGIN"); wsOrigin != "" {
		config.WsOrigin = wsOrigin
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}
