package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Anthropic AnthropicConfig `yaml:"anthropic"`
	Tailscale TailscaleConfig `yaml:"tailscale"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// AnthropicConfig configures the optional model client. An empty APIKey
// means the service runs in fallback-only mode.
type AnthropicConfig struct {
	APIKey      string  `yaml:"api_key"`
	Model       string  `yaml:"model"`
	Temperature float64 `yaml:"temperature"`
	MaxTokens   int     `yaml:"max_tokens"`
	BaseURL     string  `yaml:"base_url"`
}

type TailscaleConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Hostname string `yaml:"hostname"`
	StateDir string `yaml:"state_dir"`
}

const (
	defaultModel       = "claude-3-haiku-20240307"
	defaultTemperature = 0.2
	defaultMaxTokens   = 1800
)

// Load reads config from a YAML file, then applies environment variable
// overrides. A missing file is not an error; the service can run from
// defaults and environment alone. Env vars use the prefix COACHPLAN_:
//
//	COACHPLAN_SERVER_HOST, COACHPLAN_SERVER_PORT,
//	COACHPLAN_ANTHROPIC_API_KEY, COACHPLAN_ANTHROPIC_MODEL,
//	COACHPLAN_ANTHROPIC_TEMPERATURE, COACHPLAN_ANTHROPIC_MAX_TOKENS,
//	COACHPLAN_TS_ENABLED, COACHPLAN_TS_HOSTNAME, COACHPLAN_TS_STATE_DIR
//
// ANTHROPIC_API_KEY is also honored when the prefixed key is unset.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{Host: "0.0.0.0", Port: 8080},
		Anthropic: AnthropicConfig{
			Model:       defaultModel,
			Temperature: defaultTemperature,
			MaxTokens:   defaultMaxTokens,
		},
	}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)
	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("COACHPLAN_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("COACHPLAN_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("COACHPLAN_ANTHROPIC_API_KEY"); v != "" {
		cfg.Anthropic.APIKey = v
	} else if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" && cfg.Anthropic.APIKey == "" {
		cfg.Anthropic.APIKey = v
	}
	if v := os.Getenv("COACHPLAN_ANTHROPIC_MODEL"); v != "" {
		cfg.Anthropic.Model = v
	}
	if v := os.Getenv("COACHPLAN_ANTHROPIC_TEMPERATURE"); v != "" {
		if t, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Anthropic.Temperature = t
		}
	}
	if v := os.Getenv("COACHPLAN_ANTHROPIC_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Anthropic.MaxTokens = n
		}
	}
	if v := os.Getenv("COACHPLAN_TS_ENABLED"); v != "" {
		cfg.Tailscale.Enabled = v == "true" || v == "1"
	}
	if v := os.Getenv("COACHPLAN_TS_HOSTNAME"); v != "" {
		cfg.Tailscale.Hostname = v
	}
	if v := os.Getenv("COACHPLAN_TS_STATE_DIR"); v != "" {
		cfg.Tailscale.StateDir = v
	}
}

// applyDefaults restores required model settings a config file may have
// blanked out.
func applyDefaults(cfg *Config) {
	if cfg.Anthropic.Model == "" {
		cfg.Anthropic.Model = defaultModel
	}
	if cfg.Anthropic.MaxTokens <= 0 {
		cfg.Anthropic.MaxTokens = defaultMaxTokens
	}
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1-65535")
	}
	if c.Anthropic.Temperature < 0 || c.Anthropic.Temperature > 1 {
		return fmt.Errorf("anthropic.temperature must be in 0-1")
	}
	if c.Tailscale.Enabled && c.Tailscale.Hostname == "" {
		return fmt.Errorf("tailscale.hostname is required when tailscale.enabled is true")
	}
	return nil
}
