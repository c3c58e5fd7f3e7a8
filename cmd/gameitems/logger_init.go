package main

import (
	"github.com/osse101/gameitems/internal/config"
	"github.com/osse101/gameitems/internal/logger"
)

// initLogger initializes the logger from the environment preset.
// Explicitly configured values take precedence over the preset.
func initLogger(cfg *config.Config) logger.Config {
	loggerConfig := logger.ConfigFor(cfg.Environment).
		Override(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName, cfg.Version)

	logger.InitLogger(loggerConfig)
	return loggerConfig
}
