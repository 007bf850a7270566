package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config contains client configuration parameters.
type Config struct {
	GraphQLURL    string        `env:"GRAPHQL_URL" envDefault:"https://learn.reboot01.com/api/graphql-engine/v1/graphql"`
	AuthURL       string        `env:"AUTH_URL" envDefault:"https://learn.reboot01.com/api/auth/signin"`
	DBPath        string        `env:"DB" envDefault:"progressboard.db"`
	ExcludedPaths []string      `env:"EXCLUDED_PATHS" envSeparator:"," envDefault:"/bahrain/bh-module/piscine-js,/bahrain/bh-module/checkpoint,/bahrain/bh-module/piscine-rust"`
	Timeout       time.Duration `env:"TIMEOUT" envDefault:"30s"`
	TopN          int           `env:"TOP_N" envDefault:"10"`
}

// Root is the full environment: client settings under the PROGRESSBOARD_
// prefix plus the unprefixed log level.
type Root struct {
	Client   Config `envPrefix:"PROGRESSBOARD_"`
	LogLevel int    `env:"LOG_LEVEL" envDefault:"0"`
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Root, error) {
	cfg := Root{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Client.TopN <= 0 {
		return nil, fmt.Errorf("invalid PROGRESSBOARD_TOP_N: %d", cfg.Client.TopN)
	}

	return &cfg, nil
}
