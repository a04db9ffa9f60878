// Package tracer provides distributed tracing using OpenTelemetry.
//
// It owns the SDK TracerProvider for the process: resource attributes,
// optional OTLP/HTTP export and the W3C trace-context propagators. Other
// packages of this module start spans through *Tracer, and the oEmbed
// client's otelhttp transport uses the same provider so outbound provider
// calls appear as children of the render span.
//
// Basic usage:
//
//	tr := tracer.NewClient(tracer.Config{
//		ServiceName:  "bsky-embed",
//		AppEnv:       "development",
//		EnableExport: true,
//		Endpoint:     "http://localhost:4318/v1/traces",
//	}, log)
//
//	ctx, span := tr.StartSpan(ctx, "bskyembed.render")
//	defer span.End()
//
//	if err != nil {
//		tr.RecordErrorOnSpan(span, err)
//	}
//
// Configuration:
//
//	TRACER_SERVICE_NAME=bsky-embed
//	APP_ENV=production
//	TRACER_ENABLE_EXPORT=true
//	TRACER_ENDPOINT=http://otel-collector:4318/v1/traces
package tracer
