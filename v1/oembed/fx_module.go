package oembed

import (
	"context"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/bsky-embed/v1/logger"
	"github.com/Aleph-Alpha/bsky-embed/v1/observability"
)

// FXModule wires the oEmbed client into Fx.
//
// It provides:
//   - *Client                (NewClientWithDI)
//   - Lifecycle hook         (RegisterClientLifecycle)
//
// A *Config must be supplied by the application (for example oembed.NewConfig).
// A logger.Logger and an observability.Observer are attached when present.
var FXModule = fx.Module(
	"oembed",

	fx.Provide(
		NewClientWithDI, // -> *Client
	),

	fx.Invoke(RegisterClientLifecycle),
)

// ClientParams groups the dependencies of NewClientWithDI.
type ClientParams struct {
	fx.In

	Config   *Config
	Logger   logger.Logger          `optional:"true"`
	Observer observability.Observer `optional:"true"`
}

// NewClientWithDI builds a Client and attaches the optional logger and observer.
func NewClientWithDI(p ClientParams) (*Client, error) {
	client, err := NewClient(p.Config)
	if err != nil {
		return nil, err
	}
	if p.Logger != nil {
		client = client.WithLogger(p.Logger)
	}
	if p.Observer != nil {
		client = client.WithObserver(p.Observer)
	}
	return client, nil
}

// RegisterClientLifecycle closes idle provider connections on shutdown.
func RegisterClientLifecycle(lc fx.Lifecycle, client *Client) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
}
