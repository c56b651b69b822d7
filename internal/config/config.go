package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/digit/internal/logging"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file read when --config is not given.
const DefaultPath = "digit.yaml"

// MCP transports.
const (
	TransportStdio = "stdio"
	TransportSSE   = "sse"
)

// Config is the file-level configuration of the digit binary.
type Config struct {
	LogLevel string     `yaml:"log_level" json:"log_level" mapstructure:"log_level"`
	HTTP     HTTPConfig `yaml:"http" json:"http" mapstructure:"http"`
	MCP      MCPConfig  `yaml:"mcp" json:"mcp" mapstructure:"mcp"`
}

// HTTPConfig configures `digit serve`.
type HTTPConfig struct {
	Port        int      `yaml:"port" json:"port" mapstructure:"port"`
	CORSOrigins []string `yaml:"cors_origins" json:"cors_origins" mapstructure:"cors_origins"`
	RateLimit   float64  `yaml:"rate_limit" json:"rate_limit" mapstructure:"rate_limit"` // requests per second, 0 disables
	RateBurst   int      `yaml:"rate_burst" json:"rate_burst" mapstructure:"rate_burst"`
	Metrics     bool     `yaml:"metrics" json:"metrics" mapstructure:"metrics"`
}

// MCPConfig configures `digit mcp`.
type MCPConfig struct {
	Transport string `yaml:"transport" json:"transport" mapstructure:"transport"`
	Port      int    `yaml:"port" json:"port" mapstructure:"port"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		LogLevel: "info",
		HTTP: HTTPConfig{
			Port:      8080,
			RateBurst: 10,
			Metrics:   true,
		},
		MCP: MCPConfig{
			Transport: TransportStdio,
			Port:      8081,
		},
	}
}

// Load reads path over the defaults. A missing file is not an error: the
// defaults are returned as is. Files ending in .json are parsed as JSON,
// anything else as YAML.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	} else {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	}

	return cfg, cfg.Validate()
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if err := validPort(c.HTTP.Port); err != nil {
		return fmt.Errorf("http.port: %w", err)
	}
	if c.HTTP.RateLimit < 0 {
		return fmt.Errorf("http.rate_limit: must not be negative")
	}
	if c.HTTP.RateLimit > 0 && c.HTTP.RateBurst < 1 {
		return fmt.Errorf("http.rate_burst: must be at least 1 when rate_limit is set")
	}
	switch c.MCP.Transport {
	case TransportStdio, TransportSSE:
	default:
		return fmt.Errorf("mcp.transport: unknown transport %q, supported: stdio, sse", c.MCP.Transport)
	}
	if err := validPort(c.MCP.Port); err != nil {
		return fmt.Errorf("mcp.port: %w", err)
	}
	return nil
}

func validPort(p int) error {
	if p < 1 || p > 65535 {
		return fmt.Errorf("%d out of range", p)
	}
	return nil
}
