package logger

import (
	"os"
	"strconv"
)

// Log levels accepted by Config.Level.
const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

// Config controls the zap logger built by NewLoggerClient.
type Config struct {
	// Level is one of debug, info, warning or error.
	// Anything else falls back to info.
	Level string `yaml:"level" envconfig:"ZAP_LOGGER_LEVEL"`

	// EnableTracing adds trace_id and span_id to entries logged through
	// the *WithContext methods when the context carries a valid span.
	EnableTracing bool `yaml:"enable_tracing" envconfig:"LOGGER_ENABLE_TRACING"`

	// ServiceName is attached to every entry as the "service" field.
	ServiceName string `yaml:"service_name" envconfig:"LOGGER_SERVICE_NAME"`
}

// NewConfig reads the logger configuration from the environment.
func NewConfig() Config {
	cfg := Config{
		Level:       os.Getenv("ZAP_LOGGER_LEVEL"),
		ServiceName: os.Getenv("LOGGER_SERVICE_NAME"),
	}
	if v := os.Getenv("LOGGER_ENABLE_TRACING"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.EnableTracing = b
		}
	}
	if cfg.Level == "" {
		cfg.Level = Info
	}
	return cfg
}
