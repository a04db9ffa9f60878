package preview

import (
	"context"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/bsky-embed/v1/bskyembed"
	"github.com/Aleph-Alpha/bsky-embed/v1/logger"
	"github.com/Aleph-Alpha/bsky-embed/v1/metrics"
)

// FXModule provides the preview *Handler and *Server and runs the server
// for the lifetime of the application.
//
// Dependencies required by this module:
// - a preview.Config
// - a *bskyembed.Renderer
// - a logger.Logger
// - a metrics.MetricsCollector (optional)
var FXModule = fx.Module("preview",
	fx.Provide(
		NewHandlerWithDI,
		NewServer,
	),
	fx.Invoke(RegisterServerLifecycle),
)

// HandlerParams groups the dependencies of NewHandlerWithDI.
type HandlerParams struct {
	fx.In

	Renderer *bskyembed.Renderer
	Logger   logger.Logger
	Metrics  metrics.MetricsCollector `optional:"true"`
}

// NewHandlerWithDI builds a Handler from Fx-provided dependencies.
func NewHandlerWithDI(p HandlerParams) *Handler {
	return NewHandler(p.Renderer, p.Logger, p.Metrics)
}

// RegisterServerLifecycle starts the server on application start and shuts
// it down gracefully on stop.
func RegisterServerLifecycle(lc fx.Lifecycle, s *Server) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return s.Start()
		},
		OnStop: func(ctx context.Context) error {
			return s.Shutdown(ctx)
		},
	})
}
