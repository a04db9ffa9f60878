// Package logger provides structured logging for the bsky-embed module.
//
// It wraps Uber's zap with a small field-map API shared by every package in
// the module, and can correlate log entries with OpenTelemetry spans.
//
// # Architecture
//
// This package follows the "accept interfaces, return structs" design pattern:
//   - Logger interface: the contract consumed by oembed, bskyembed and preview
//   - LoggerClient struct: zap-backed implementation of Logger
//   - NewLoggerClient constructor: returns *LoggerClient
//   - FXModule: provides both *LoggerClient and Logger
//
// # Direct Usage (Without FX)
//
//	log := logger.NewLoggerClient(logger.Config{
//		Level:         logger.Info,
//		EnableTracing: true,
//		ServiceName:   "bsky-embed",
//	})
//
//	log.Info("Embed rendered", nil, map[string]interface{}{
//		"url": "https://bsky.app/profile/tylur.dev/post/3m34dacmoyc2g",
//	})
//
//	// Adds trace_id and span_id when ctx carries a span.
//	log.ErrorWithContext(ctx, "oEmbed fetch failed", err, nil)
//
// # FX Module Integration
//
//	app := fx.New(
//		logger.FXModule,
//		fx.Provide(logger.NewConfig),
//	)
//
// # Configuration
//
//	ZAP_LOGGER_LEVEL=debug          # debug, info, warning, error
//	LOGGER_ENABLE_TRACING=true      # attach trace_id/span_id in *WithContext
//	LOGGER_SERVICE_NAME=bsky-embed  # "service" field on every entry
//
// # Thread Safety
//
// All methods are safe for concurrent use by multiple goroutines.
package logger
