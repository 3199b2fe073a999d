package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_NATS_URL points at a live NATS server; empty skips the suite.
	NatsURL string `envconfig:"E2E_NATS_URL"`
	Room    string `envconfig:"E2E_ROOM" default:"e2e-lobby"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
