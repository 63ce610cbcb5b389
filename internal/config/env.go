package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the environment, after loading a
// .env file if one exists in the working directory. Missing variables leave
// the current value untouched.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("DATABASE_DSN"); v != "" {
		cfg.DatabaseDSN = v
	}
	if v := os.Getenv("SESSION_SECRET"); v != "" {
		cfg.SessionSecret = v
	}
	if v := os.Getenv("SESSION_TOKEN_VALIDITY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.SessionTokenValidity = d
		}
	}
	if v := os.Getenv("S3_ROOT_USER"); v != "" {
		cfg.S3RootUser = v
	}
	if v := os.Getenv("S3_ROOT_PASSWORD"); v != "" {
		cfg.S3RootPassword = v
	}
	if v := os.Getenv("S3_BUCKET"); v != "" {
		cfg.S3Bucket = v
	}
	if v := os.Getenv("S3_REGION"); v != "" {
		cfg.S3Region = v
	}
	if v := os.Getenv("S3_BASE_ENDPOINT"); v != "" {
		cfg.S3BaseEndpoint = v
	}
}
