package config

import (
	"fmt"
	"time"
)

// Поддерживаемые драйверы БД и хранилища документов
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	DocBackendSQL = "sql"
	DocBackendS3  = "s3"
)

// Server - настройки сервера
type Server struct {
	Address          string        `mapstructure:"address"`
	DBDriver         string        `mapstructure:"db_driver"`
	DBDSN            string        `mapstructure:"db_dsn"`
	DocBackend       string        `mapstructure:"doc_backend"`
	JWTSecret        string        `mapstructure:"jwt_secret"`
	LogLevel         string        `mapstructure:"log_level"`
	LogFormat        string        `mapstructure:"log_format"`
	S3               S3            `mapstructure:",squash"`
	AccessTTL        time.Duration `mapstructure:"access_ttl"`
	RefreshTTL       time.Duration `mapstructure:"refresh_ttl"`
	RateWindow       time.Duration `mapstructure:"rate_window"`
	MaxDocumentBytes int64         `mapstructure:"max_document_bytes"`
	RateLimit        int           `mapstructure:"rate_limit"`
}

// S3 - настройки S3-совместимого хранилища документов
type S3 struct {
	Endpoint     string `mapstructure:"s3_endpoint"`
	Region       string `mapstructure:"s3_region"`
	Bucket       string `mapstructure:"s3_bucket"`
	AccessKey    string `mapstructure:"s3_access_key"`
	SecretKey    string `mapstructure:"s3_secret_key"`
	UsePathStyle bool   `mapstructure:"s3_use_path_style"`
}

func serverDefaults() map[string]any {
	return map[string]any{
		"address":            ":8080",
		"db_driver":          DriverSQLite,
		"db_dsn":             "cardconnect-server.db",
		"doc_backend":        DocBackendSQL,
		"jwt_secret":         "",
		"access_ttl":         15 * time.Minute,
		"refresh_ttl":        30 * 24 * time.Hour,
		"max_document_bytes": int64(1_000_000),
		"rate_limit":         100,
		"rate_window":        time.Minute,
		"log_level":          "info",
		"log_format":         "json",
		"s3_endpoint":        "",
		"s3_region":          "us-east-1",
		"s3_bucket":          "",
		"s3_access_key":      "",
		"s3_secret_key":      "",
		"s3_use_path_style":  false,
	}
}

// LoadServer читает настройки сервера
func LoadServer(src Source) (*Server, error) {
	v, err := newViper(src, serverDefaults())
	if err != nil {
		return nil, err
	}

	var cfg Server
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode server config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate проверяет значения настроек
func (c *Server) Validate() error {
	if c.Address == "" {
		return fmt.Errorf("address is required")
	}

	switch c.DBDriver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("unsupported db_driver %q", c.DBDriver)
	}
	if c.DBDSN == "" {
		return fmt.Errorf("db_dsn is required")
	}

	switch c.DocBackend {
	case DocBackendSQL:
	case DocBackendS3:
		if c.S3.Bucket == "" {
			return fmt.Errorf("s3_bucket is required for the s3 backend")
		}
	default:
		return fmt.Errorf("unsupported doc_backend %q", c.DocBackend)
	}

	// секрет подписи JWT должен быть не короче 32 байт
	if len(c.JWTSecret) < 32 {
		return fmt.Errorf("jwt_secret must be at least 32 characters")
	}
	if c.AccessTTL <= 0 || c.RefreshTTL <= 0 {
		return fmt.Errorf("access_ttl and refresh_ttl must be positive")
	}
	if c.MaxDocumentBytes <= 0 {
		return fmt.Errorf("max_document_bytes must be positive")
	}
	if c.RateLimit <= 0 || c.RateWindow <= 0 {
		return fmt.Errorf("rate_limit and rate_window must be positive")
	}
	return validateLog(c.LogLevel, c.LogFormat)
}
