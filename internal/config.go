package internal

import (
	"fmt"
	"time"
)

type Config struct {
	Host            string        `env:"HOST,required=true"`
	Port            int           `env:"PORT,required=true"`
	BadgerFilepath  string        `env:"BADGER_FILEPATH,required=true"`
	LogLevel        string        `env:"LOG_LEVEL,required=true"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT,required=true"`
	AllowedOrigins  []string      `env:"ALLOWED_ORIGINS"`
	DebugPort       int           `env:"DEBUG_PORT"`
}

// Addr is the listen address of the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
