package tracer

import (
	"os"
	"strconv"
)

// Config controls the OpenTelemetry tracer provider.
type Config struct {
	// ServiceName is reported as the service.name resource attribute.
	ServiceName string `yaml:"service_name" envconfig:"TRACER_SERVICE_NAME"`

	// AppEnv is reported as deployment.environment and "environment".
	AppEnv string `yaml:"app_env" envconfig:"APP_ENV"`

	// EnableExport turns on the OTLP/HTTP exporter. Without it spans are
	// created and propagated but never shipped.
	EnableExport bool `yaml:"enable_export" envconfig:"TRACER_ENABLE_EXPORT"`

	// Endpoint is the full OTLP/HTTP traces URL, e.g.
	// "http://otel-collector:4318/v1/traces". When empty the exporter falls
	// back to the OTEL_EXPORTER_OTLP_* environment variables.
	Endpoint string `yaml:"endpoint" envconfig:"TRACER_ENDPOINT"`
}

// NewConfig reads the tracer configuration from the environment.
func NewConfig() Config {
	cfg := Config{
		ServiceName: os.Getenv("TRACER_SERVICE_NAME"),
		AppEnv:      os.Getenv("APP_ENV"),
		Endpoint:    os.Getenv("TRACER_ENDPOINT"),
	}
	if v := os.Getenv("TRACER_ENABLE_EXPORT"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.EnableExport = b
		}
	}
	return cfg
}
