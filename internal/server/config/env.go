package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from TASKCHAT_* environment variables.
// A .env file in the working directory is loaded first if present; variables
// already set in the environment win over the file, which is godotenv's
// default behavior.
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("TASKCHAT_ADDRESS"); v != "" {
		config.EndpointAddr = v
	}
	if v := os.Getenv("TASKCHAT_DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("TASKCHAT_SECRET_KEY"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("TASKCHAT_TOKEN_VALIDITY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenValidity = d
		}
	}
}
