package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mc-icons/internal/batch"
	"mc-icons/internal/config"
	"mc-icons/internal/logger"
	"mc-icons/internal/profiling"

	"go.uber.org/zap"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("mc-icons", flag.ContinueOnError)
	flags := config.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return 1
	}

	log, err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		return 1
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := setup(cfg, log)
	if err != nil {
		log.Error("setup failed", zap.Error(err))
		return 1
	}
	defer app.Close()

	names, err := app.models(fs.Args())
	if err != nil {
		log.Error("listing models failed", zap.Error(err))
		return 1
	}
	log.Info("generating models",
		zap.Int("count", len(names)),
		zap.String("assets", cfg.Assets.Dir),
		zap.String("output", cfg.Output.Dir),
		zap.Int("workers", cfg.Workers.Count))

	profiling.Reset()
	start := time.Now()
	summary, err := app.runner.Run(ctx, names)
	logSummary(log, summary, time.Since(start))
	if err != nil {
		log.Warn("run interrupted", zap.Error(err))
		return 130
	}
	return 0
}

func logSummary(log *zap.Logger, summary batch.Summary, took time.Duration) {
	for _, name := range summary.FailedModels() {
		log.Debug("failed model", zap.String("model", name), zap.Error(summary.Errors[name]))
	}
	log.Info("done",
		zap.Int("generated", summary.Generated),
		zap.Int("failed", summary.Failed),
		zap.Duration("took", took),
		zap.String("stages", profiling.TopN(4)))
}
