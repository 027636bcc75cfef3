package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all client configuration.
type Config struct {
	UI      UIConfig      `mapstructure:"ui"`
	Backend BackendConfig `mapstructure:"backend"`
	Session SessionConfig `mapstructure:"session"`
	Rate    RateConfig    `mapstructure:"rate"`
	Log     LogConfig     `mapstructure:"log"`
}

// UIConfig configures the local HTTP server the browser talks to.
type UIConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

// Addr returns the local listen address.
func (u UIConfig) Addr() string {
	return fmt.Sprintf("%s:%d", u.Host, u.Port)
}

// BackendConfig points at the wallet backend.
type BackendConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

// WebsocketURL derives the push-channel URL for a user from the REST base URL.
// https bases upgrade to wss, everything else to ws.
func (b BackendConfig) WebsocketURL(userID int64) (string, error) {
	u, err := url.Parse(b.BaseURL)
	if err != nil {
		return "", fmt.Errorf("parsing backend base URL: %w", err)
	}
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	u.Path = fmt.Sprintf("/user/ws/%d", userID)
	return u.String(), nil
}

// SessionConfig configures client-local credential persistence.
type SessionConfig struct {
	CredentialFile string `mapstructure:"credential_file"`
}

// RateConfig configures the simulated ETH/USD ticker.
type RateConfig struct {
	Base     float64       `mapstructure:"base"`
	Floor    float64       `mapstructure:"floor"`
	Drift    float64       `mapstructure:"drift"` // max symmetric deviation, fraction of base
	Interval time.Duration `mapstructure:"interval"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: WC_ (Wallet Client).
// Nested keys use underscore: WC_BACKEND_BASE_URL, WC_UI_PORT, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("ui.host", "127.0.0.1")
	v.SetDefault("ui.port", 5173)
	v.SetDefault("ui.mode", "debug")
	v.SetDefault("backend.base_url", "http://localhost:8000")
	v.SetDefault("session.credential_file", "")
	v.SetDefault("rate.base", 3000.0)
	v.SetDefault("rate.floor", 100.0)
	v.SetDefault("rate.drift", 0.02)
	v.SetDefault("rate.interval", "5s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: WC_BACKEND_BASE_URL -> backend.base_url
	v.SetEnvPrefix("WC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
