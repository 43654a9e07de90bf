package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var DefaultConfigYAML []byte

type Config struct {
	Storage     Storage     `yaml:"storage"`
	Copywriter  Copywriter  `yaml:"copywriter"`
	Experiments Experiments `yaml:"experiments"`
	Logging     Logging     `yaml:"logging"`
}

type Storage struct {
	DBPath string `yaml:"db_path"`
}

type Copywriter struct {
	Addr           string `yaml:"addr"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type Experiments struct {
	Scope                string `yaml:"scope"`
	TimeoutWindowMinutes int    `yaml:"timeout_window_minutes"`
}

type Logging struct {
	Level string `yaml:"level"`
}

// ConfigDir returns the XDG config directory for buildstory.
func ConfigDir() string {
	return filepath.Join(homeDir(), ".config", "buildstory")
}

// DataDir returns the XDG data directory for buildstory.
func DataDir() string {
	return filepath.Join(homeDir(), ".local", "share", "buildstory")
}

// ResolveConfigPath finds the config file following priority:
// explicit path > ~/.config/buildstory/config.yaml > ./config.yaml
func ResolveConfigPath(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file not found: %s", explicit)
		}
		return explicit, nil
	}

	xdgConfig := filepath.Join(ConfigDir(), "config.yaml")
	if _, err := os.Stat(xdgConfig); err == nil {
		return xdgConfig, nil
	}

	cwdConfig := "config.yaml"
	if _, err := os.Stat(cwdConfig); err == nil {
		return cwdConfig, nil
	}

	return "", fmt.Errorf(
		"no config file found; searched:\n  %s\n  ./config.yaml\n\nRun 'buildstory init' to create a default config",
		xdgConfig,
	)
}

// Load reads and parses a config YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return parse(data)
}

// parse parses YAML bytes into a Config, applying defaults.
func parse(data []byte) (*Config, error) {
	cfg := &Config{
		Copywriter: Copywriter{
			Addr:           "localhost:50061",
			TimeoutSeconds: 20,
		},
		Experiments: Experiments{
			Scope:                "landing",
			TimeoutWindowMinutes: 30,
		},
		Logging: Logging{Level: "INFO"},
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// GetDBPath returns the effective database path. Priority:
// BUILDSTORY_DB env > config storage.db_path > XDG data dir default.
func (c *Config) GetDBPath() string {
	if env := os.Getenv("BUILDSTORY_DB"); env != "" {
		return env
	}
	if c.Storage.DBPath != "" {
		return c.Storage.DBPath
	}
	return filepath.Join(DataDir(), "buildstory.db")
}

// CopywriterTimeout returns the RPC deadline for copywriter calls.
func (c *Config) CopywriterTimeout() time.Duration {
	if c.Copywriter.TimeoutSeconds <= 0 {
		return 20 * time.Second
	}
	return time.Duration(c.Copywriter.TimeoutSeconds) * time.Second
}

// TimeoutWindow returns the silence window used by the timeout sweep.
func (c *Config) TimeoutWindow() time.Duration {
	if c.Experiments.TimeoutWindowMinutes <= 0 {
		return 30 * time.Minute
	}
	return time.Duration(c.Experiments.TimeoutWindowMinutes) * time.Minute
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
