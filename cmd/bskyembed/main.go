package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bskyembed",
	Short: "Render Bluesky post embeds",
	Long: `bskyembed fetches Bluesky oEmbed records and renders them as themed
embed markup.

Examples:
  bskyembed render https://bsky.app/profile/tylur.dev/post/3m34dacmoyc2g --color-mode dark
  bskyembed serve --config config.yaml`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(renderCmd)

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to a YAML config file")
}

func loadConfigFromFlags(cmd *cobra.Command) (*Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	return LoadConfig(path)
}
