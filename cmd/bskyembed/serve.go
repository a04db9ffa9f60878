package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/Aleph-Alpha/bsky-embed/v1/bskyembed"
	"github.com/Aleph-Alpha/bsky-embed/v1/logger"
	"github.com/Aleph-Alpha/bsky-embed/v1/metrics"
	"github.com/Aleph-Alpha/bsky-embed/v1/observability"
	"github.com/Aleph-Alpha/bsky-embed/v1/oembed"
	"github.com/Aleph-Alpha/bsky-embed/v1/preview"
	"github.com/Aleph-Alpha/bsky-embed/v1/tracer"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the preview server",
	Long: `Run the preview HTTP server with metrics and tracing.

  GET /embed?url=<post>&maxwidth=<px>&colorMode=<light|dark|system>
  GET /healthz`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfigFromFlags(cmd)
		if err != nil {
			return err
		}
		app := fx.New(appOptions(cfg))
		if err := app.Err(); err != nil {
			return err
		}
		app.Run()
		return nil
	},
}

// appOptions assembles the fx application for cfg.
func appOptions(cfg *Config) fx.Option {
	oembedCfg := cfg.OEmbed
	return fx.Options(
		fx.Supply(cfg.Logger, cfg.Tracer, cfg.Metrics, cfg.Preview, &oembedCfg),
		logger.FXModule,
		tracer.FXModule,
		metrics.FXModule,
		fx.Provide(func(m *metrics.Metrics) observability.Observer { return m }),
		oembed.FXModule,
		bskyembed.FXModule,
		preview.FXModule,
	)
}
