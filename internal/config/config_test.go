package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Missing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "digit.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "digit.yaml", `
log_level: debug
http:
  port: 9090
  cors_origins: ["https://example.com"]
  rate_limit: 5
  metrics: false
mcp:
  transport: sse
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, []string{"https://example.com"}, cfg.HTTP.CORSOrigins)
	assert.Equal(t, 5.0, cfg.HTTP.RateLimit)
	assert.Equal(t, 10, cfg.HTTP.RateBurst, "unset keys keep their defaults")
	assert.False(t, cfg.HTTP.Metrics)
	assert.Equal(t, TransportSSE, cfg.MCP.Transport)
	assert.Equal(t, 8081, cfg.MCP.Port)
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "digit.json", `{"http": {"port": 7000}, "mcp": {"port": 7001}}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.HTTP.Port)
	assert.Equal(t, 7001, cfg.MCP.Port)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"Bad YAML", "digit.yaml", "http: [port"},
		{"Bad JSON", "digit.json", "{"},
		{"Bad level", "digit.yaml", "log_level: loud"},
		{"Bad port", "digit.yaml", "http:\n  port: 70000"},
		{"Bad transport", "digit.yaml", "mcp:\n  transport: websocket"},
		{"Negative rate", "digit.yaml", "http:\n  rate_limit: -1"},
		{"Zero burst", "digit.yaml", "http:\n  rate_limit: 1\n  rate_burst: 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			assert.Error(t, err)
		})
	}
}
