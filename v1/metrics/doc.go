// Package metrics provides Prometheus-based metrics for the bsky-embed module.
//
// # Architecture
//
// This package follows the "accept interfaces, return structs" design pattern:
//   - MetricsCollector interface: the contract for metrics operations
//   - Metrics struct: concrete implementation
//   - NewMetrics constructor: returns *Metrics
//   - FXModule: provides both *Metrics and MetricsCollector
//
// *Metrics also implements observability.Observer: attach it to the oEmbed
// client with WithObserver and every provider call is counted in
// operations_total{component,operation,status} and timed in
// operation_duration_seconds{component,operation}.
//
// # Direct Usage (Without FX)
//
//	m := metrics.NewMetrics(metrics.Config{
//		Address:                 ":9090",
//		EnableDefaultCollectors: true,
//		ServiceName:             "bsky-embed",
//	})
//	go m.Server.ListenAndServe()
//
//	client = client.WithObserver(m)
//	m.IncrementRequests("200")
//	defer m.RecordRequestDuration(time.Now(), "/embed")
//
// # Configuration
//
//	METRICS_ADDRESS=:9090
//	METRICS_ENABLE_DEFAULT_COLLECTORS=true
//	METRICS_NAMESPACE=bsky
//	METRICS_SERVICE_NAME=bsky-embed
//
// # Thread Safety
//
// All methods on Metrics and the underlying Prometheus collectors are safe for
// concurrent use.
package metrics
