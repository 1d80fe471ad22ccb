package main

import (
	"mc-icons/internal/batch"
	"mc-icons/internal/config"
	"mc-icons/internal/itemgen"
	"mc-icons/internal/logger"
	"mc-icons/internal/metrics"
	"mc-icons/internal/registry"
	"mc-icons/pkg/blockmodel"

	"go.uber.org/zap"
)

// app wires the generation pipeline from the loaded configuration.
type app struct {
	cfg         *config.Config
	paths       blockmodel.Paths
	runner      *batch.Runner
	stopMetrics func()
}

func setup(cfg *config.Config, log *zap.Logger) (*app, error) {
	paths := blockmodel.Paths{Base: cfg.Assets.Dir, Overrides: cfg.Assets.Overrides}
	resolver := blockmodel.NewResolver(paths, logger.Named("blockmodel"))
	gen := itemgen.New(resolver, cfg.Render.Slot, logger.Named("itemgen"))

	rec := metrics.NewRecorder()
	a := &app{cfg: cfg, paths: paths, stopMetrics: func() {}}
	if cfg.Metrics.Addr != "" {
		stop, err := rec.Serve(cfg.Metrics.Addr, log)
		if err != nil {
			return nil, err
		}
		a.stopMetrics = stop
	}

	a.runner = batch.NewRunner(gen, batch.Options{
		OutputDir: cfg.Output.Dir,
		Workers:   cfg.Workers.Count,
		QueueSize: cfg.Workers.QueueSize,
	}, rec, logger.Named("batch"))
	return a, nil
}

// models returns the explicitly named models, or every item model matching
// the configured patterns.
func (a *app) models(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	names, err := registry.ListItems(a.paths)
	if err != nil {
		return nil, err
	}
	if len(a.cfg.Render.Models) == 0 {
		return names, nil
	}
	return registry.Filter(names, a.cfg.Render.Models)
}

func (a *app) Close() {
	a.stopMetrics()
}
