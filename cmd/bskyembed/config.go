package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/Aleph-Alpha/bsky-embed/v1/logger"
	"github.com/Aleph-Alpha/bsky-embed/v1/metrics"
	"github.com/Aleph-Alpha/bsky-embed/v1/oembed"
	"github.com/Aleph-Alpha/bsky-embed/v1/preview"
	"github.com/Aleph-Alpha/bsky-embed/v1/tracer"
)

const serviceName = "bsky-embed"

// Config is the full application configuration.
type Config struct {
	Logger  logger.Config
	Tracer  tracer.Config
	Metrics metrics.Config
	OEmbed  oembed.Config
	Preview preview.Config
}

// envBindings maps config keys to the environment variables each package
// reads in its own NewConfig.
var envBindings = map[string]string{
	"logger.level":                        "ZAP_LOGGER_LEVEL",
	"logger.enable_tracing":               "LOGGER_ENABLE_TRACING",
	"logger.service_name":                 "LOGGER_SERVICE_NAME",
	"tracer.service_name":                 "TRACER_SERVICE_NAME",
	"tracer.app_env":                      "APP_ENV",
	"tracer.enable_export":                "TRACER_ENABLE_EXPORT",
	"tracer.endpoint":                     "TRACER_ENDPOINT",
	"metrics.address":                     "METRICS_ADDRESS",
	"metrics.enable_default_collectors":   "METRICS_ENABLE_DEFAULT_COLLECTORS",
	"metrics.namespace":                   "METRICS_NAMESPACE",
	"metrics.service_name":                "METRICS_SERVICE_NAME",
	"oembed.endpoint":                     "OEMBED_ENDPOINT",
	"oembed.http_timeout_seconds":         "OEMBED_HTTP_TIMEOUT_SECONDS",
	"oembed.user_agent":                   "OEMBED_USER_AGENT",
	"preview.address":                     "PREVIEW_ADDRESS",
	"preview.read_header_timeout_seconds": "PREVIEW_READ_HEADER_TIMEOUT_SECONDS",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", logger.Info)
	v.SetDefault("logger.service_name", serviceName)
	v.SetDefault("tracer.service_name", serviceName)
	v.SetDefault("tracer.app_env", "development")
	v.SetDefault("metrics.address", metrics.DefaultMetricsAddress)
	v.SetDefault("metrics.enable_default_collectors", true)
	v.SetDefault("metrics.service_name", serviceName)
	v.SetDefault("oembed.endpoint", oembed.DefaultEndpoint)
	v.SetDefault("oembed.http_timeout_seconds", oembed.DefaultHTTPTimeoutS)
	v.SetDefault("oembed.user_agent", oembed.DefaultUserAgent)
	v.SetDefault("preview.address", preview.DefaultAddress)
	v.SetDefault("preview.read_header_timeout_seconds", 10)
}

// LoadConfig resolves the configuration from defaults, the YAML file at path
// (if any) and the environment, in increasing order of precedence.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		Logger: logger.Config{
			Level:         v.GetString("logger.level"),
			EnableTracing: v.GetBool("logger.enable_tracing"),
			ServiceName:   v.GetString("logger.service_name"),
		},
		Tracer: tracer.Config{
			ServiceName:  v.GetString("tracer.service_name"),
			AppEnv:       v.GetString("tracer.app_env"),
			EnableExport: v.GetBool("tracer.enable_export"),
			Endpoint:     v.GetString("tracer.endpoint"),
		},
		Metrics: metrics.Config{
			Address:                 v.GetString("metrics.address"),
			EnableDefaultCollectors: v.GetBool("metrics.enable_default_collectors"),
			Namespace:               v.GetString("metrics.namespace"),
			ServiceName:             v.GetString("metrics.service_name"),
		},
		OEmbed: oembed.Config{
			Endpoint:     v.GetString("oembed.endpoint"),
			HTTPTimeoutS: v.GetInt("oembed.http_timeout_seconds"),
			UserAgent:    v.GetString("oembed.user_agent"),
		},
		Preview: preview.Config{
			Address:            v.GetString("preview.address"),
			ReadHeaderTimeoutS: v.GetInt("preview.read_header_timeout_seconds"),
		},
	}

	if err := cfg.OEmbed.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
