package config

import (
	"log"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port       string `envconfig:"PORT" default:"8080"`
	DBPath     string `envconfig:"DB_PATH" default:"casino.sqlite"`
	APIKey     string `envconfig:"API_KEY" required:"true"`
	AdminToken string `envconfig:"ADMIN_TOKEN" required:"true"`

	// Optional. The in-memory limiter is used when unset.
	RedisAddr string `envconfig:"REDIS_ADDR"`

	// Bets allowed per user per minute on the bet endpoint.
	BetRateLimit int `envconfig:"BET_RATE_LIMIT" default:"60"`
}

func Load() *Config {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("config: %v", err)
	}
	return &cfg
}
