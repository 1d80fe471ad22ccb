package config

import (
	"flag"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Assets.Dir != "./assets" {
		t.Errorf("expected assets dir ./assets, got %s", cfg.Assets.Dir)
	}
	if cfg.Output.Dir != "./output" {
		t.Errorf("expected output dir ./output, got %s", cfg.Output.Dir)
	}
	if cfg.Render.Slot != "gui" {
		t.Errorf("expected slot gui, got %s", cfg.Render.Slot)
	}
	if cfg.Workers.Count != runtime.NumCPU() {
		t.Errorf("expected %d workers, got %d", runtime.NumCPU(), cfg.Workers.Count)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Metrics.Addr != "" {
		t.Errorf("expected metrics disabled, got %s", cfg.Metrics.Addr)
	}
}

func TestLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	yamlContent := `
assets:
  dir: /data/assets
output:
  dir: /data/icons
render:
  slot: fixed
  models: ["item/stone*", "item/apple"]
workers:
  count: 3
logging:
  level: debug
  log_file: run.log
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Assets.Dir != "/data/assets" {
		t.Errorf("expected /data/assets, got %s", cfg.Assets.Dir)
	}
	if cfg.Assets.Overrides != "./overrides" {
		t.Errorf("expected unset overrides to keep default, got %s", cfg.Assets.Overrides)
	}
	if cfg.Render.Slot != "fixed" {
		t.Errorf("expected slot fixed, got %s", cfg.Render.Slot)
	}
	if len(cfg.Render.Models) != 2 || cfg.Render.Models[1] != "item/apple" {
		t.Errorf("unexpected models %v", cfg.Render.Models)
	}
	if cfg.Workers.Count != 3 {
		t.Errorf("expected 3 workers, got %d", cfg.Workers.Count)
	}
	if cfg.Workers.QueueSize != 64 {
		t.Errorf("expected default queue size, got %d", cfg.Workers.QueueSize)
	}
	if cfg.Logging.LogFile != "run.log" {
		t.Errorf("expected run.log, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadPriority(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	yamlContent := `
output:
  dir: /from/file
workers:
  count: 2
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	flags := RegisterFlags(fs)
	if err := fs.Parse([]string{"-config", configPath, "-p", "8", "-debug", "-models", "item/a, item/b"}); err != nil {
		t.Fatalf("failed to parse flags: %v", err)
	}

	cfg, err := Load(flags)
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	if cfg.Output.Dir != "/from/file" {
		t.Errorf("expected file value for output dir, got %s", cfg.Output.Dir)
	}
	if cfg.Workers.Count != 8 {
		t.Errorf("expected flag to win for workers, got %d", cfg.Workers.Count)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected debug level from flag, got %s", cfg.Logging.Level)
	}
	if len(cfg.Render.Models) != 2 || cfg.Render.Models[0] != "item/a" || cfg.Render.Models[1] != "item/b" {
		t.Errorf("unexpected models %v", cfg.Render.Models)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(&Flags{ConfigPath: filepath.Join(t.TempDir(), "missing.yaml")})
	if err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestValidateFillsWorkers(t *testing.T) {
	cfg := Default()
	cfg.Workers = WorkersConfig{}
	cfg.Render.Slot = ""
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Workers.Count != 1 || cfg.Workers.QueueSize != 1 {
		t.Errorf("expected 1/1 workers, got %+v", cfg.Workers)
	}
	if cfg.Render.Slot != "gui" {
		t.Errorf("expected slot reset to gui, got %s", cfg.Render.Slot)
	}

	cfg.Assets.Dir = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for empty assets dir")
	}
}
