package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_BASE_URL points the scenario at an already running instance.
	// When empty, the test wires the full stack in-process instead.
	BaseURL string `envconfig:"E2E_BASE_URL"`
	// E2E_DEBUG_JSON allows dumping full HTTP response bodies
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
