package preview

import (
	"os"
	"strconv"
)

// DefaultAddress is used when no address is configured.
const DefaultAddress = ":8080"

// Config configures the preview HTTP server.
type Config struct {
	// Address is the listen address of the preview server.
	Address string `yaml:"address" envconfig:"PREVIEW_ADDRESS"`

	// ReadHeaderTimeoutS bounds how long a client may take to send headers.
	ReadHeaderTimeoutS int `yaml:"read_header_timeout_seconds" envconfig:"PREVIEW_READ_HEADER_TIMEOUT_SECONDS"`
}

// NewConfig reads the preview configuration from the environment.
func NewConfig() Config {
	cfg := Config{
		Address:            os.Getenv("PREVIEW_ADDRESS"),
		ReadHeaderTimeoutS: 10,
	}
	if v := os.Getenv("PREVIEW_READ_HEADER_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.ReadHeaderTimeoutS = n
		}
	}
	if cfg.Address == "" {
		cfg.Address = DefaultAddress
	}
	return cfg
}
