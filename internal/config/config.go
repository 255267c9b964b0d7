// Package config loads menucli settings from an optional YAML file and
// environment variables. Flags still win; the file only moves defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config holds persistent menucli settings.
type Config struct {
	// Format is the default output format (auto, json, compact, ndjson,
	// yaml, table, path, id).
	Format string `yaml:"format"`
	// NoHeader suppresses the header row of table output.
	NoHeader bool `yaml:"no_header"`
	// Debug enables diagnostic logging on stderr.
	Debug bool `yaml:"debug"`

	Search SearchConfig `yaml:"search"`
	MCP    MCPConfig    `yaml:"mcp"`
}

// SearchConfig holds search defaults.
type SearchConfig struct {
	// Limit caps search results when --limit is not given.
	Limit int `yaml:"limit"`
}

// MCPConfig holds MCP server defaults.
type MCPConfig struct {
	// Transport selects stdio or streamable-http.
	Transport string `yaml:"transport"`
	// Port is the streamable-http listen port.
	Port int `yaml:"port"`
	// CacheTTLMS bounds how long a menu tree snapshot is reused between
	// tool calls. Zero disables the cache.
	CacheTTLMS int `yaml:"cache_ttl_ms"`
}

// DefaultConfig returns the settings used when no file or environment
// overrides are present.
func DefaultConfig() *Config {
	return &Config{
		Search: SearchConfig{Limit: 10},
		MCP: MCPConfig{
			Transport:  "stdio",
			Port:       8080,
			CacheTTLMS: 500,
		},
	}
}

// Load reads the config file if one exists and applies environment
// overrides. A missing file is not an error.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	if path := configPath(); path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	loadFromEnv(cfg)
	return cfg, nil
}

// configPath returns where the config file lives. XDG_CONFIG_HOME wins;
// on macOS an existing Application Support or .config file is honored,
// with Application Support the default for new installs.
func configPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "menucli", "config.yaml")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	if runtime.GOOS == "darwin" {
		appSupport := filepath.Join(home, "Library", "Application Support", "menucli", "config.yaml")
		if _, err := os.Stat(appSupport); err == nil {
			return appSupport
		}
		dotConfig := filepath.Join(home, ".config", "menucli", "config.yaml")
		if _, err := os.Stat(dotConfig); err == nil {
			return dotConfig
		}
		return appSupport
	}

	return filepath.Join(home, ".config", "menucli", "config.yaml")
}

func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func loadFromEnv(cfg *Config) {
	if format := os.Getenv("MENUCLI_FORMAT"); format != "" {
		cfg.Format = format
	}
	if debug := os.Getenv("MENUCLI_DEBUG"); debug != "" && debug != "0" && debug != "false" {
		cfg.Debug = true
	}
}
