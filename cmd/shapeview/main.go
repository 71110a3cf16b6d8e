// Package main is the entry point for the interactive shape viewer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/glprim/internal/config"
	"github.com/Faultbox/glprim/internal/logger"
	"github.com/Faultbox/glprim/internal/viewer"
	"github.com/Faultbox/glprim/pkg/shape"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(logOptions(cfg.Logging)); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	shape.SetLogger(logger.Log)

	logger.Info("=== glprim shape viewer ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	v, err := viewer.New(cfg)
	if err != nil {
		logger.Error("failed to create viewer", zap.Error(err))
		os.Exit(1)
	}
	defer v.Close()

	if err := v.Run(); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("viewer closed normally")
}

func logOptions(c config.LoggingConfig) logger.Options {
	opts := logger.DefaultOptions()
	opts.Level = c.Level
	opts.File = c.LogFile
	opts.MaxSizeMB = c.MaxSizeMB
	opts.MaxBackups = c.MaxBackups
	opts.MaxAgeDays = c.MaxAgeDays
	opts.Compress = c.Compress
	return opts
}
