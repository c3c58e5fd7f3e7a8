package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/osse101/gameitems/internal/validation"
)

// ErrInvalidConfig is returned when an environment value is out of range
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the application configuration
type Config struct {
	LogLevel    string `validate:"omitempty,oneof=debug info warn warning error"`
	LogFormat   string `validate:"omitempty,oneof=json text"`
	Environment string `validate:"required"`
	ServiceName string `validate:"required"`
	Version     string
	DumpMetrics bool
}

// Load loads the configuration from environment variables.
// LogLevel, LogFormat and Version stay empty when unset so the logger
// preset for Environment applies.
// The given env files (".env" when none) are read first; variables already
// set in the process environment win.
func Load(envFiles ...string) (*Config, error) {
	// Missing env files are fine, the real environment may be enough.
	_ = godotenv.Load(envFiles...)

	cfg := &Config{
		LogLevel:    strings.ToLower(getEnv(EnvLogLevel, "")),
		LogFormat:   strings.ToLower(getEnv(EnvLogFormat, "")),
		Environment: getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName: getEnv(EnvServiceName, DefaultServiceName),
		Version:     os.Getenv(EnvVersion),
	}

	dump, err := strconv.ParseBool(getEnv(EnvDumpMetrics, "false"))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, EnvDumpMetrics, err)
	}
	cfg.DumpMetrics = dump

	if err := validation.Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}
