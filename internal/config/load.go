package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is looked up in the working directory when no -config is given.
const DefaultConfigFile = "mc-icons.yaml"

// Load builds the configuration with priority: defaults < file < flags.
func Load(f *Flags) (*Config, error) {
	cfg := Default()

	configPath := f.ConfigPath
	if configPath == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			configPath = DefaultConfigFile
		}
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	f.apply(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Validate rejects settings the batch cannot run with.
func (c *Config) Validate() error {
	if c.Assets.Dir == "" {
		return fmt.Errorf("assets dir must be set")
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("output dir must be set")
	}
	if c.Workers.Count < 1 {
		c.Workers.Count = 1
	}
	if c.Workers.QueueSize < 1 {
		c.Workers.QueueSize = c.Workers.Count
	}
	if c.Render.Slot == "" {
		c.Render.Slot = "gui"
	}
	return nil
}
