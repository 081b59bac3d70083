// Package config loads the icsfeed server configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/icsfeed/icsfeed"
)

// Duration is a time.Duration that unmarshals from the Go duration string
// form used in the configuration file, e.g. "5s" or "1m30s".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the duration as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config is the on-disk server configuration. Missing fields take the
// defaults applied by Load.
type Config struct {
	Listen         string             `yaml:"listen"`
	AppName        string             `yaml:"app_name"`
	HostName       string             `yaml:"host_name"`
	Timezone       string             `yaml:"timezone"`
	EventsPath     string             `yaml:"events_path"`
	ReloadSchedule string             `yaml:"reload_schedule"`
	Properties     icsfeed.Properties `yaml:"properties"`
	LogLevel       string             `yaml:"log_level"`
	LogFormat      string             `yaml:"log_format"`
	ReadTimeout    Duration           `yaml:"read_timeout"`
	WriteTimeout   Duration           `yaml:"write_timeout"`
	IdleTimeout    Duration           `yaml:"idle_timeout"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Listen:         ":8080",
		AppName:        "icsfeed",
		ReloadSchedule: "@every 5m",
		LogLevel:       "info",
		LogFormat:      "text",
		ReadTimeout:    Duration(5 * time.Second),
		WriteTimeout:   Duration(10 * time.Second),
		IdleTimeout:    Duration(60 * time.Second),
	}
}

// Load reads the YAML file at path. An empty path or a missing file yields
// the defaults unchanged; otherwise unset fields are filled in afterwards.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse yaml: %w", err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	d := Default()
	if c.Listen == "" {
		c.Listen = d.Listen
	}
	if c.AppName == "" {
		c.AppName = d.AppName
	}
	if c.ReloadSchedule == "" {
		c.ReloadSchedule = d.ReloadSchedule
	}
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = d.LogFormat
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = d.ReadTimeout
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = d.WriteTimeout
	}
	if c.IdleTimeout == 0 {
		c.IdleTimeout = d.IdleTimeout
	}
}

// Validate rejects option values the server cannot run with.
func (c Config) Validate() error {
	switch c.LogLevel {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log_level %q is not one of debug, info, warn, error", c.LogLevel)
	}
	switch c.LogFormat {
	case "", "text", "json":
	default:
		return fmt.Errorf("log_format %q is not one of text, json", c.LogFormat)
	}
	if c.Listen == "" {
		return fmt.Errorf("listen address is empty")
	}
	return nil
}
