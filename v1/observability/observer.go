// Package observability defines the hook contract clients use to report
// completed operations to metrics, tracing or audit backends.
//
// Clients accept an Observer through a WithObserver builder method and call it
// once per finished operation. A nil observer disables reporting.
package observability

import "time"

// Observer receives one notification per completed operation.
// Implementations must be safe for concurrent use.
type Observer interface {
	ObserveOperation(ctx OperationContext)
}

// OperationContext describes a single completed operation.
type OperationContext struct {
	// Component is the reporting package, e.g. "oembed".
	Component string

	// Operation is the action performed, e.g. "fetch".
	Operation string

	// Resource is the primary target of the operation (endpoint host, post URL).
	Resource string

	// SubResource carries extra addressing such as a path or query.
	SubResource string

	// Duration is the wall time of the operation.
	Duration time.Duration

	// Error is nil on success.
	Error error

	// Size is the payload size in bytes, 0 when unknown.
	Size int64

	// Metadata holds component specific key/value pairs.
	Metadata map[string]interface{}
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(ctx OperationContext)

// ObserveOperation calls f(ctx).
func (f ObserverFunc) ObserveOperation(ctx OperationContext) {
	f(ctx)
}

// Multi fans a notification out to every non-nil observer in order.
func Multi(observers ...Observer) Observer {
	filtered := make([]Observer, 0, len(observers))
	for _, o := range observers {
		if o != nil {
			filtered = append(filtered, o)
		}
	}
	return ObserverFunc(func(ctx OperationContext) {
		for _, o := range filtered {
			o.ObserveOperation(ctx)
		}
	})
}
