// Package config reads server settings from the environment, with an
// optional .env file for local runs.
package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPServer HTTPServer
	NBP        NBP
	Limits     Limits
}

type HTTPServer struct {
	Port        string        `env:"HTTP_PORT" env-default:"8080"`
	Timeout     time.Duration `env:"HTTP_TIMEOUT" env-default:"30s"`
	IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

type NBP struct {
	BaseURL string        `env:"NBP_BASE_URL" env-default:"https://api.nbp.pl"`
	Timeout time.Duration `env:"NBP_TIMEOUT" env-default:"10s"`
}

type Limits struct {
	MaxRangeDays int `env:"MAX_RANGE_DAYS" env-default:"367"`
}

func New() (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}

	return cfg, nil
}
