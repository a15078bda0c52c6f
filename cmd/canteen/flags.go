package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

type Config struct {
	Address            string        `env:"RUN_ADDRESS" envDefault:"localhost:8080"`
	LogLevel           string        `env:"LOG_LEVEL" envDefault:"INFO"`
	DatabaseConnection string        `env:"DATABASE_URI"`
	SessionTTL         time.Duration `env:"SESSION_TTL" envDefault:"720h"`
	StrictStatusFlow   bool          `env:"STRICT_STATUS_FLOW" envDefault:"false"`
}

func NewConfig() (*Config, error) {
	godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	address := flag.String("a", cfg.Address, "{Host:port} for server")
	loglevel := flag.String("l", cfg.LogLevel, "Log level for server")
	databaseConnection := flag.String("d", cfg.DatabaseConnection, "Database connection string")
	sessionTTL := flag.Duration("t", cfg.SessionTTL, "TTL for session tokens (e.g. 720h; 30m)")
	strictFlow := flag.Bool("s", cfg.StrictStatusFlow, "Enforce forward-only status transitions")

	flag.Parse()

	cfg.Address = *address
	cfg.LogLevel = *loglevel
	cfg.DatabaseConnection = *databaseConnection
	cfg.SessionTTL = *sessionTTL
	cfg.StrictStatusFlow = *strictFlow

	if cfg.DatabaseConnection == "" {
		return nil, fmt.Errorf("ENV DATABASE_URI must be set")
	}

	return cfg, nil
}
