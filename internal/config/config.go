// Package config loads service configuration from a YAML file and the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Suggestion providers
const (
	ProviderStatic = "static"
	ProviderGemini = "gemini"
)

// Config is the service configuration. Every field is optional in the file;
// MergeWithDefaults fills the gaps and environment variables win over both.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	DatabaseURL string            `yaml:"database_url"`
	Suggestions SuggestionsConfig `yaml:"suggestions"`
	Rendering   RenderingConfig   `yaml:"rendering"`
	Sessions    SessionsConfig    `yaml:"sessions"`
	Verbose     bool              `yaml:"verbose"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Port int `yaml:"port"`
}

// SuggestionsConfig selects where suggestion text comes from.
type SuggestionsConfig struct {
	Provider string `yaml:"provider"` // static or gemini
	Model    string `yaml:"model"`    // overrides the lite tier model
	APIKey   string `yaml:"api_key"`
}

// RenderingConfig holds export settings.
type RenderingConfig struct {
	ChromePath string        `yaml:"chrome_path"`
	PDFTimeout time.Duration `yaml:"pdf_timeout"`
	DisablePDF bool          `yaml:"disable_pdf"`
}

// SessionsConfig bounds editing sessions.
type SessionsConfig struct {
	TTL             time.Duration `yaml:"ttl"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Server:      ServerConfig{Port: 8080},
		Suggestions: SuggestionsConfig{Provider: ProviderStatic},
		Rendering:   RenderingConfig{PDFTimeout: 60 * time.Second},
		Sessions:    SessionsConfig{TTL: 2 * time.Hour, CleanupInterval: 5 * time.Minute},
	}
}

// LoadConfig reads a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	return &cfg, nil
}

// Load reads path when it is non-empty, fills defaults and applies environment
// overrides. The result is validated.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	merged := cfg.MergeWithDefaults(Defaults())
	if err := merged.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

// ApplyEnv overrides fields from DATABASE_URL, PORT, GEMINI_API_KEY,
// SUGGESTIONS_PROVIDER, CHROME_PATH and SESSION_TTL.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT: %v", err)
		}
		c.Server.Port = port
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.Suggestions.APIKey = v
	}
	if v := os.Getenv("SUGGESTIONS_PROVIDER"); v != "" {
		c.Suggestions.Provider = v
	}
	if v := os.Getenv("CHROME_PATH"); v != "" {
		c.Rendering.ChromePath = v
	}
	if v := os.Getenv("SESSION_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid SESSION_TTL: %v", err)
		}
		c.Sessions.TTL = ttl
	}
	return nil
}

// Validate checks that the configuration has valid values. It does not
// require DatabaseURL; commands that need a database check for it themselves.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config error: 'server.port' must be between 0 and 65535")
	}
	switch c.Suggestions.Provider {
	case ProviderStatic:
	case ProviderGemini:
		if c.Suggestions.APIKey == "" {
			return fmt.Errorf("config error: the gemini suggestion provider needs 'suggestions.api_key' or GEMINI_API_KEY")
		}
	default:
		return fmt.Errorf("config error: unknown suggestion provider %q", c.Suggestions.Provider)
	}
	if c.Rendering.PDFTimeout < 0 {
		return fmt.Errorf("config error: 'rendering.pdf_timeout' must be non-negative")
	}
	if c.Sessions.TTL < 0 || c.Sessions.CleanupInterval < 0 {
		return fmt.Errorf("config error: session durations must be non-negative")
	}
	if c.Rendering.ChromePath != "" {
		if _, err := os.Stat(c.Rendering.ChromePath); os.IsNotExist(err) {
			return fmt.Errorf("config error: chrome binary not found: %s", c.Rendering.ChromePath)
		}
	}
	return nil
}

// MergeWithDefaults returns a copy of c with zero fields filled from defaults.
// Bools are left alone since unset and false look the same.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Server.Port == 0 {
		result.Server.Port = defaults.Server.Port
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.Suggestions.Provider == "" {
		result.Suggestions.Provider = defaults.Suggestions.Provider
	}
	if result.Suggestions.Model == "" {
		result.Suggestions.Model = defaults.Suggestions.Model
	}
	if result.Suggestions.APIKey == "" {
		result.Suggestions.APIKey = defaults.Suggestions.APIKey
	}
	if result.Rendering.ChromePath == "" {
		result.Rendering.ChromePath = defaults.Rendering.ChromePath
	}
	if result.Rendering.PDFTimeout == 0 {
		result.Rendering.PDFTimeout = defaults.Rendering.PDFTimeout
	}
	if result.Sessions.TTL == 0 {
		result.Sessions.TTL = defaults.Sessions.TTL
	}
	if result.Sessions.CleanupInterval == 0 {
		result.Sessions.CleanupInterval = defaults.Sessions.CleanupInterval
	}
	return result
}
