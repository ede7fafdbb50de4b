package config

import (
	"fmt"
	"net/url"

	"github.com/iudanet/cardconnect/internal/imagecodec"
)

// Client - настройки CLI клиента
type Client struct {
	ServerURL       string `mapstructure:"server_url"`
	DBPath          string `mapstructure:"db_path"`
	AnthropicAPIKey string `mapstructure:"anthropic_api_key"`
	AnthropicModel  string `mapstructure:"anthropic_model"`
	LogLevel        string `mapstructure:"log_level"`
	LogFormat       string `mapstructure:"log_format"`
	LogFile         string `mapstructure:"log_file"`
	MaxImageBytes   int    `mapstructure:"max_image_bytes"`
	PushWorkers     int    `mapstructure:"push_workers"`
}

func clientDefaults() map[string]any {
	return map[string]any{
		"server_url":        "http://localhost:8080",
		"db_path":           "cardconnect.db",
		"anthropic_api_key": "",
		"anthropic_model":   "claude-sonnet-4-5",
		"max_image_bytes":   imagecodec.DefaultMaxBytes,
		"push_workers":      1,
		"log_level":         "info",
		"log_format":        "text",
		"log_file":          "",
	}
}

// LoadClient читает настройки клиента
func LoadClient(src Source) (*Client, error) {
	v, err := newViper(src, clientDefaults())
	if err != nil {
		return nil, err
	}

	var cfg Client
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode client config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate проверяет значения настроек
func (c *Client) Validate() error {
	u, err := url.Parse(c.ServerURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid server_url %q", c.ServerURL)
	}
	if c.DBPath == "" {
		return fmt.Errorf("db_path is required")
	}
	if c.MaxImageBytes <= 0 {
		return fmt.Errorf("max_image_bytes must be positive, got %d", c.MaxImageBytes)
	}
	if c.PushWorkers < 1 {
		return fmt.Errorf("push_workers must be at least 1, got %d", c.PushWorkers)
	}
	return validateLog(c.LogLevel, c.LogFormat)
}

// ImageOptions возвращает настройки сжатия изображений для облака
func (c *Client) ImageOptions() imagecodec.Options {
	return imagecodec.Options{MaxBytes: c.MaxImageBytes}
}
