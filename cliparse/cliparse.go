// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	HistoryLimit int
}

const (
	defaultPort         = 8787
	defaultDatabaseURL  = "foodwheel.db"
	defaultHistoryLimit = 50
)

// ParseFlags validates flags, falling back to environment variables
func ParseFlags(args []string) (Config, error) {
	// Load .env when present; already-set env vars win.
	_ = godotenv.Load()

	var cfg Config

	fs := flag.NewFlagSet("food-wheel", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (postgres) or file path (sqlite)")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.IntVar(&cfg.HistoryLimit, "history-limit", 0, "Max spin history entries kept per wheel")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = defaultPort
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = defaultDatabaseURL
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}

	if cfg.HistoryLimit == 0 {
		if limitStr := os.Getenv("HISTORY_LIMIT"); limitStr != "" {
			limit, err := strconv.Atoi(limitStr)
			if err != nil {
				return Config{}, errors.New("invalid HISTORY_LIMIT env variable")
			}
			cfg.HistoryLimit = limit
		} else {
			cfg.HistoryLimit = defaultHistoryLimit
		}
	}
	if cfg.HistoryLimit < 1 {
		return Config{}, errors.New("history limit must be positive")
	}

	return cfg, nil
}
