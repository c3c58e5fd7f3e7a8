package config

// Environment variable names
const (
	EnvLogLevel    = "LOG_LEVEL"
	EnvLogFormat   = "LOG_FORMAT"
	EnvEnvironment = "ENVIRONMENT"
	EnvServiceName = "SERVICE_NAME"
	EnvVersion     = "VERSION"
	EnvDumpMetrics = "DUMP_METRICS"
)

// Default values
const (
	DefaultEnvironment = "dev"
	DefaultServiceName = "gameitems"
)
