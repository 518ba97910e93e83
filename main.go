package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/soocke/radial-select-go/app"
	"github.com/soocke/radial-select-go/config"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run returns the process exit code: 0 on normal termination (the result
// line is on stdout), 1 on initialization failure, 2 on bad arguments.
func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, err)
		fmt.Fprintln(stderr, usageLine)
		return 2
	}

	// Base config from defaults and optional file
	cfg, loadErr := config.Load(opts.ConfigPath)
	opts.apply(cfg)

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := NewLogger(stderr, level)
	if loadErr != nil {
		logger.Error("could not load config", "path", opts.ConfigPath, "error", loadErr)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid config", "error", err)
		return 1
	}
	logger.Debug("config", "window_size", cfg.WindowSize, "segments", cfg.Segments,
		"inner_radius", cfg.InnerRadius, "outer_radius", cfg.OuterRadius, "border_width", cfg.BorderWidth)

	if opts.WriteConfig != "" {
		if err := cfg.Save(opts.WriteConfig); err != nil {
			logger.Warn("could not write config", "path", opts.WriteConfig, "error", err)
		}
	}
	if opts.Snapshot != "" {
		if err := writeSnapshot(cfg, opts.Snapshot); err != nil {
			logger.Error("snapshot failed", "error", err)
			return 1
		}
		logger.Info("snapshot written", "path", opts.Snapshot)
		return 0
	}

	c, err := app.BuildContainer(cfg, logger)
	if err != nil {
		logger.Error("initialization failed", "error", err)
		return 1
	}
	outcome, err := app.Run(c)
	if err != nil {
		logger.Error("window loop failed", "error", err)
		return 1
	}
	logger.Debug("selection finished", "outcome", outcome.String())
	fmt.Fprintln(stdout, outcome.Code(cfg.Segments))
	return 0
}
