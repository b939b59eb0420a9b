package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/OTrepse/jsoncrack.com/pkg/settings"
)

// Config is the optional YAML configuration file. Every field is optional;
// flags given on the command line win over it.
type Config struct {
	Debug bool      `yaml:"debug"`
	Set   SetConfig `yaml:"set"`
}

// SetConfig holds defaults for the set command.
type SetConfig struct {
	Type   string `yaml:"type"`
	Backup bool   `yaml:"backup"`
}

// Load reads a config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &cfg, nil
}

// ResolvePath returns explicit if set, otherwise the first existing file of
// $XDG_CONFIG_HOME/nodeedit/config.yaml and ~/.config/nodeedit/config.yaml.
// An empty result means there is no config file.
func ResolvePath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	candidate := ""
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		candidate = filepath.Join(xdg, settings.CliBinaryName, "config.yaml")
	} else if home, err := os.UserHomeDir(); err == nil {
		candidate = filepath.Join(home, ".config", settings.CliBinaryName, "config.yaml")
	}
	if candidate != "" {
		if st, err := os.Stat(candidate); err == nil && !st.IsDir() {
			return candidate
		}
	}
	return ""
}

// Apply copies the configured values onto run.
func (c *Config) Apply(run *settings.Run) {
	if c == nil {
		return
	}
	if c.Debug {
		run.MinLogLevel = -1
	}
	if c.Set.Type != "" {
		run.DefaultType = c.Set.Type
	}
	run.Backup = c.Set.Backup
}
