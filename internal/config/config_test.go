package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func noEnvFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoadClient_Defaults(t *testing.T) {
	cfg, err := LoadClient(Source{EnvFile: noEnvFile(t)})
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.ServerURL)
	assert.Equal(t, "cardconnect.db", cfg.DBPath)
	assert.Equal(t, 700_000, cfg.MaxImageBytes)
	assert.Equal(t, 1, cfg.PushWorkers)
	assert.Equal(t, 700_000, cfg.ImageOptions().MaxBytes)
}

func TestLoadClient_Precedence(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "client.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("server_url: https://cards.example.com\npush_workers: 3\nlog_format: json\n"), 0o600))

	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("CARDCONNECT_ANTHROPIC_API_KEY=from-dotenv\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("CARDCONNECT_ANTHROPIC_API_KEY") })

	t.Setenv("CARDCONNECT_PUSH_WORKERS", "4")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("db-path", "cardconnect.db", "")
	require.NoError(t, flags.Parse([]string{"--db-path", "/tmp/flag.db"}))

	cfg, err := LoadClient(Source{Flags: flags, ConfigFile: configFile, EnvFile: envFile})
	require.NoError(t, err)

	assert.Equal(t, "https://cards.example.com", cfg.ServerURL) // файл
	assert.Equal(t, 4, cfg.PushWorkers)                         // env важнее файла
	assert.Equal(t, "from-dotenv", cfg.AnthropicAPIKey)         // .env
	assert.Equal(t, "/tmp/flag.db", cfg.DBPath)                 // флаг
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadClient_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "bad server url", env: map[string]string{"CARDCONNECT_SERVER_URL": "not a url"}},
		{name: "zero workers", env: map[string]string{"CARDCONNECT_PUSH_WORKERS": "0"}},
		{name: "negative image bound", env: map[string]string{"CARDCONNECT_MAX_IMAGE_BYTES": "-1"}},
		{name: "unknown log level", env: map[string]string{"CARDCONNECT_LOG_LEVEL": "loud"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadClient(Source{EnvFile: noEnvFile(t)})
			assert.Error(t, err)
		})
	}
}

func TestLoadClient_MissingConfigFile(t *testing.T) {
	_, err := LoadClient(Source{EnvFile: noEnvFile(t), ConfigFile: filepath.Join(t.TempDir(), "nope.yaml")})
	assert.Error(t, err)
}

func TestLoadServer(t *testing.T) {
	t.Setenv("CARDCONNECT_JWT_SECRET", testSecret)
	t.Setenv("CARDCONNECT_ACCESS_TTL", "5m")

	cfg, err := LoadServer(Source{EnvFile: noEnvFile(t)})
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Address)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, DocBackendSQL, cfg.DocBackend)
	assert.Equal(t, 5*time.Minute, cfg.AccessTTL)
	assert.Equal(t, 30*24*time.Hour, cfg.RefreshTTL)
	assert.Equal(t, int64(1_000_000), cfg.MaxDocumentBytes)
	assert.Equal(t, "us-east-1", cfg.S3.Region)
}

func TestLoadServer_S3(t *testing.T) {
	t.Setenv("CARDCONNECT_JWT_SECRET", testSecret)
	t.Setenv("CARDCONNECT_DOC_BACKEND", "s3")
	t.Setenv("CARDCONNECT_S3_BUCKET", "cards")
	t.Setenv("CARDCONNECT_S3_ENDPOINT", "http://localhost:9000")
	t.Setenv("CARDCONNECT_S3_USE_PATH_STYLE", "true")

	cfg, err := LoadServer(Source{EnvFile: noEnvFile(t)})
	require.NoError(t, err)

	assert.Equal(t, "cards", cfg.S3.Bucket)
	assert.Equal(t, "http://localhost:9000", cfg.S3.Endpoint)
	assert.True(t, cfg.S3.UsePathStyle)
}

func TestServer_Validate(t *testing.T) {
	valid := func() Server {
		return Server{
			Address:          ":8080",
			DBDriver:         DriverSQLite,
			DBDSN:            ":memory:",
			DocBackend:       DocBackendSQL,
			JWTSecret:        testSecret,
			LogLevel:         "info",
			LogFormat:        "json",
			AccessTTL:        time.Minute,
			RefreshTTL:       time.Hour,
			RateWindow:       time.Minute,
			MaxDocumentBytes: 1000,
			RateLimit:        10,
		}
	}

	tests := []struct {
		mutate  func(c *Server)
		name    string
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Server) {}},
		{name: "postgres", mutate: func(c *Server) { c.DBDriver = DriverPostgres }},
		{name: "unknown driver", mutate: func(c *Server) { c.DBDriver = "mysql" }, wantErr: true},
		{name: "empty dsn", mutate: func(c *Server) { c.DBDSN = "" }, wantErr: true},
		{name: "s3 without bucket", mutate: func(c *Server) { c.DocBackend = DocBackendS3 }, wantErr: true},
		{name: "unknown backend", mutate: func(c *Server) { c.DocBackend = "ftp" }, wantErr: true},
		{name: "short secret", mutate: func(c *Server) { c.JWTSecret = "short" }, wantErr: true},
		{name: "zero ttl", mutate: func(c *Server) { c.AccessTTL = 0 }, wantErr: true},
		{name: "zero rate", mutate: func(c *Server) { c.RateLimit = 0 }, wantErr: true},
		{name: "bad format", mutate: func(c *Server) { c.LogFormat = "xml" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
