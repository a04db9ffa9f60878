package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Aleph-Alpha/bsky-embed/v1/bskyembed"
	"github.com/Aleph-Alpha/bsky-embed/v1/logger"
	"github.com/Aleph-Alpha/bsky-embed/v1/oembed"
)

var renderCmd = &cobra.Command{
	Use:   "render <post-url> [post-url...]",
	Short: "Print the embed markup for one or more posts",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().Int("maxwidth", 0, "Maximum embed width in pixels (provider range 220-600)")
	renderCmd.Flags().String("color-mode", string(bskyembed.DefaultColorMode), "Color mode: light, dark or system")
	renderCmd.Flags().Int("concurrency", bskyembed.DefaultConcurrency, "Parallel provider requests")
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfigFromFlags(cmd)
	if err != nil {
		return err
	}

	mode, err := cmd.Flags().GetString("color-mode")
	if err != nil {
		return err
	}
	colorMode, err := bskyembed.ParseColorMode(mode)
	if err != nil {
		return err
	}

	var maxWidth *int
	if cmd.Flags().Changed("maxwidth") {
		w, err := cmd.Flags().GetInt("maxwidth")
		if err != nil {
			return err
		}
		maxWidth = &w
	}

	concurrency, err := cmd.Flags().GetInt("concurrency")
	if err != nil {
		return err
	}

	log := logger.NewLoggerClient(cfg.Logger)
	defer func() { _ = log.Zap.Sync() }()

	client, err := oembed.NewClient(&cfg.OEmbed)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()
	client = client.WithLogger(log)

	renderer := bskyembed.NewRenderer(client).WithLogger(log).WithConcurrency(concurrency)

	props := make([]bskyembed.Props, len(args))
	for i, u := range args {
		props[i] = bskyembed.Props{URL: u, MaxWidth: maxWidth, ColorMode: colorMode}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	embeds, err := renderer.RenderMany(ctx, props)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, e := range embeds {
		if err := e.Render(out); err != nil {
			return err
		}
		fmt.Fprintln(out)
	}
	return nil
}
