// Package config provides YAML-based configuration loading for MessageCraft.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the top-level MessageCraft configuration, loaded from
// messagecraft.yaml. Every field has a working default; secrets are never
// stored here, only the names of the environment variables holding them.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Groq     GroqConfig     `yaml:"groq"`
	Store    StoreConfig    `yaml:"store"`
	Delivery DeliveryConfig `yaml:"delivery"`
}

// ServerConfig holds HTTP API settings.
type ServerConfig struct {
	Port int `yaml:"port"`
}

// GroqConfig holds settings for the Groq chat-completions endpoint.
type GroqConfig struct {
	BaseURL     string  `yaml:"base_url"`
	Model       string  `yaml:"model"`
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float64 `yaml:"temperature"`
	APIKeyEnv   string  `yaml:"api_key_env"`
}

// StoreConfig selects and configures the collection store backend.
type StoreConfig struct {
	Backend string      `yaml:"backend"` // memory, sqlite, mysql, badger
	Path    string      `yaml:"path"`    // sqlite database file
	Dir     string      `yaml:"dir"`     // badger database directory
	MySQL   MySQLConfig `yaml:"mysql"`
}

// MySQLConfig holds connection settings for the mysql backend.
type MySQLConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Database string `yaml:"database"`
}

// DeliveryConfig configures optional outbound delivery targets.
type DeliveryConfig struct {
	Slack   SlackConfig   `yaml:"slack"`
	Discord DiscordConfig `yaml:"discord"`
}

// SlackConfig configures the Slack delivery target. The adapter is only
// constructed when Channel is set.
type SlackConfig struct {
	TokenEnv string `yaml:"token_env"`
	Channel  string `yaml:"channel"`
}

// DiscordConfig configures the Discord delivery target.
type DiscordConfig struct {
	TokenEnv string `yaml:"token_env"`
	Channel  string `yaml:"channel"`
}

// Default returns a Config with every default applied, suitable for
// running without a config file.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads a YAML config file from path and returns a validated Config.
// A missing file is not an error: defaults apply.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse unmarshals YAML bytes into a validated Config.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults fills in default values.
func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Groq.BaseURL == "" {
		c.Groq.BaseURL = "https://api.groq.com"
	}
	if c.Groq.Model == "" {
		c.Groq.Model = "llama-3.3-70b-versatile"
	}
	if c.Groq.MaxTokens == 0 {
		c.Groq.MaxTokens = 200
	}
	if c.Groq.Temperature == 0 {
		c.Groq.Temperature = 0.7
	}
	if c.Groq.APIKeyEnv == "" {
		c.Groq.APIKeyEnv = "GROQ_API_KEY"
	}
	if c.Store.Backend == "" {
		c.Store.Backend = "sqlite"
	}
	if c.Store.Path == "" {
		c.Store.Path = "messagecraft.db"
	}
	if c.Store.Dir == "" {
		c.Store.Dir = ".messagecraft/badger"
	}
	if c.Store.MySQL.Host == "" {
		c.Store.MySQL.Host = "127.0.0.1"
	}
	if c.Store.MySQL.Port == 0 {
		c.Store.MySQL.Port = 3306
	}
	if c.Store.MySQL.User == "" {
		c.Store.MySQL.User = "root"
	}
	if c.Store.MySQL.Database == "" {
		c.Store.MySQL.Database = "messagecraft"
	}
	if c.Delivery.Slack.TokenEnv == "" {
		c.Delivery.Slack.TokenEnv = "SLACK_BOT_TOKEN"
	}
	if c.Delivery.Discord.TokenEnv == "" {
		c.Delivery.Discord.TokenEnv = "DISCORD_BOT_TOKEN"
	}
}

// validate checks that all fields are consistent.
func (c *Config) validate() error {
	var errs []string
	switch c.Store.Backend {
	case "memory", "sqlite", "mysql", "badger":
	default:
		errs = append(errs, fmt.Sprintf("store.backend %q is not one of memory, sqlite, mysql, badger", c.Store.Backend))
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("server.port %d is out of range", c.Server.Port))
	}
	if c.Groq.MaxTokens < 0 {
		errs = append(errs, "groq.max_tokens must be positive")
	}
	if c.Groq.Temperature < 0 || c.Groq.Temperature > 2 {
		errs = append(errs, fmt.Sprintf("groq.temperature %v is out of range [0, 2]", c.Groq.Temperature))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
