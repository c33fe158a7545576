// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/google/uuid"
)

const envPrefix = "MATFORM_"

type config struct {
	LogLevel          string        `env:"LOG_LEVEL"           envDefault:"info"`
	InstanceID        string        `env:"INSTANCE_ID"`
	HTTPHost          string        `env:"HTTP_HOST"           envDefault:"0.0.0.0"`
	HTTPPort          string        `env:"HTTP_PORT"           envDefault:"5000"`
	MaxDimension      int           `env:"MAX_DIMENSION"       envDefault:"1000"`
	MaxElements       int           `env:"MAX_ELEMENTS"        envDefault:"1000000"`
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT"    envDefault:"10s"`
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" envDefault:"5s"`
}

// loadConfig reads MATFORM_* variables. A nil environ means the process environment.
func loadConfig(environ map[string]string) (config, error) {
	cfg := config{}
	opts := env.Options{Prefix: envPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return config{}, fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.MaxDimension < 0 || cfg.MaxElements < 0 {
		return config{}, fmt.Errorf("limits must be >= 0, got MAX_DIMENSION=%d MAX_ELEMENTS=%d",
			cfg.MaxDimension, cfg.MaxElements)
	}
	if cfg.InstanceID == "" {
		cfg.InstanceID = uuid.NewString()
	}

	return cfg, nil
}

func (c config) addr() string {
	return net.JoinHostPort(c.HTTPHost, c.HTTPPort)
}

func (c config) level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, fmt.Errorf("failed to parse log level: %w", err)
	}

	return level, nil
}
