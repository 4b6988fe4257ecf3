package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all process configuration, read from the environment with
// an optional .env file for local development.
type Config struct {
	Addr      string `env:"ONENIGHT_ADDR" envDefault:":3000"`
	PublicURL string `env:"ONENIGHT_PUBLIC_URL" envDefault:"http://localhost:3000"`
	StaticDir string `env:"ONENIGHT_STATIC_DIR" envDefault:"public"`
	Debug     bool   `env:"DEBUG"`
}

// Load reads configuration. A missing .env file is not an error.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
