package runner

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	yaml "github.com/goccy/go-yaml"

	"lwos/internal/sched"
)

// Config mirrors config.yml
type Config struct {
	Capacity int    `yaml:"capacity"`  // 16 (by default)
	TickMS   int    `yaml:"tick_ms"`   // 5 (by default)
	Passes   int    `yaml:"passes"`    // 2 (by default), 0 runs until cancelled
	LogLevel string `yaml:"log_level"` // info (by default)
	CSVPath  string `yaml:"csv_path"`  // empty disables the CSV event log
}

func defaultConfig() Config {
	return Config{
		Capacity: 16,
		TickMS:   5,
		Passes:   2,
		LogLevel: "info",
	}
}

// Load reads YAML and overrides defaults. An empty path or a missing file
// yields the defaults; a malformed file is an error.
func Load(path string) (Config, error) {
	cfg := defaultConfig()

	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return defaultConfig(), fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.clamp()
	return cfg, nil
}

// sanity clamps
func (c *Config) clamp() {
	if c.Capacity <= 0 {
		c.Capacity = 16
	} else if c.Capacity > sched.MaxCapacity {
		c.Capacity = sched.MaxCapacity
	}
	if c.TickMS <= 0 {
		c.TickMS = 5
	}
	if c.Passes < 0 {
		c.Passes = 0
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
