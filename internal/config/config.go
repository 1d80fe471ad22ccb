// Package config handles tool configuration loading.
package config

import "runtime"

// Config holds all settings of a generation run.
type Config struct {
	Assets  AssetsConfig  `yaml:"assets"`
	Output  OutputConfig  `yaml:"output"`
	Render  RenderConfig  `yaml:"render"`
	Workers WorkersConfig `yaml:"workers"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// AssetsConfig points at an extracted asset tree (<dir>/<namespace>/models/...).
type AssetsConfig struct {
	Dir       string `yaml:"dir"`
	Overrides string `yaml:"overrides"`
}

type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// RenderConfig selects what is generated.
type RenderConfig struct {
	Slot   string   `yaml:"slot"`   // display slot used for meshes
	Models []string `yaml:"models"` // glob patterns; empty means every item model
}

type WorkersConfig struct {
	Count     int `yaml:"count"`
	QueueSize int `yaml:"queue_size"`
}

type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// MetricsConfig enables a Prometheus endpoint while the batch runs when Addr is set.
type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Assets: AssetsConfig{
			Dir:       "./assets",
			Overrides: "./overrides",
		},
		Output: OutputConfig{
			Dir: "./output",
		},
		Render: RenderConfig{
			Slot: "gui",
		},
		Workers: WorkersConfig{
			Count:     runtime.NumCPU(),
			QueueSize: 64,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
