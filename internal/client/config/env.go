package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables recognized by the CLI. A .env file in the working
// directory is loaded first, without overriding variables already set in the
// process environment.
const (
	envAddress  = "SUPERHEROES_ADDRESS"
	envTimeout  = "SUPERHEROES_TIMEOUT"
	envDatabase = "SUPERHEROES_DATABASE"
	envDebug    = "SUPERHEROES_DEBUG"
)

// parseEnv overlays Config with values from the environment. Unset variables
// leave the corresponding field untouched; unparsable values are ignored.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv(envAddress); v != "" {
		cfg.ServerEndpointAddr = v
	}
	if v := os.Getenv(envTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv(envDatabase); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv(envDebug); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Debug = b
		}
	}
}
