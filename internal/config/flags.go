package config

import (
	"flag"
	"strings"
)

// Flags are the command-line overrides. Zero values leave the config untouched.
type Flags struct {
	ConfigPath  string
	Debug       bool
	AssetsDir   string
	Overrides   string
	OutputDir   string
	Workers     int
	Slot        string
	Models      string
	MetricsAddr string
	LogFile     string
}

// RegisterFlags binds the tool's flags to fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.ConfigPath, "config", "", "Path to config file")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.StringVar(&f.AssetsDir, "assets", "", "Extracted asset directory (<dir>/<namespace>/models/...)")
	fs.StringVar(&f.AssetsDir, "t", "", "Shorthand for -assets")
	fs.StringVar(&f.Overrides, "overrides", "", "Override directory with the same layout as -assets")
	fs.StringVar(&f.OutputDir, "o", "", "The output location to save generated files")
	fs.IntVar(&f.Workers, "p", 0, "The number of workers generating models")
	fs.StringVar(&f.Slot, "slot", "", "Display slot used to place meshes")
	fs.StringVar(&f.Models, "models", "", "Comma separated glob patterns selecting item models")
	fs.StringVar(&f.MetricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address while running")
	fs.StringVar(&f.LogFile, "log-file", "", "Also write logs to this rotating file")
	return f
}

// apply applies CLI flag overrides to the config.
func (f *Flags) apply(cfg *Config) {
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.AssetsDir != "" {
		cfg.Assets.Dir = f.AssetsDir
	}
	if f.Overrides != "" {
		cfg.Assets.Overrides = f.Overrides
	}
	if f.OutputDir != "" {
		cfg.Output.Dir = f.OutputDir
	}
	if f.Workers > 0 {
		cfg.Workers.Count = f.Workers
	}
	if f.Slot != "" {
		cfg.Render.Slot = f.Slot
	}
	if f.Models != "" {
		cfg.Render.Models = splitList(f.Models)
	}
	if f.MetricsAddr != "" {
		cfg.Metrics.Addr = f.MetricsAddr
	}
	if f.LogFile != "" {
		cfg.Logging.LogFile = f.LogFile
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
