package bskyembed

import (
	"go.uber.org/fx"

	"github.com/Aleph-Alpha/bsky-embed/v1/logger"
	"github.com/Aleph-Alpha/bsky-embed/v1/oembed"
	"github.com/Aleph-Alpha/bsky-embed/v1/tracer"
)

// FXModule provides *Renderer backed by the *oembed.Client from oembed.FXModule.
// A *tracer.Tracer and a logger.Logger are attached when present.
var FXModule = fx.Module(
	"bskyembed",

	fx.Provide(
		NewRendererWithDI, // -> *Renderer
	),
)

// RendererParams groups the dependencies of NewRendererWithDI.
type RendererParams struct {
	fx.In

	Client *oembed.Client
	Tracer *tracer.Tracer `optional:"true"`
	Logger logger.Logger  `optional:"true"`
}

// NewRendererWithDI builds a Renderer from Fx-provided dependencies.
func NewRendererWithDI(p RendererParams) *Renderer {
	r := NewRenderer(p.Client)
	if p.Tracer != nil {
		r = r.WithTracer(p.Tracer)
	}
	if p.Logger != nil {
		r = r.WithLogger(p.Logger)
	}
	return r
}
