package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	Port      string
	JWTSecret string
	ExcelFile string
	TokenTTL  int // hours
}

// ErrMissingJWTSecret is returned when APP_JWT_SECRET is not set. The server
// refuses to start without it so a default secret never ships in a build.
var ErrMissingJWTSecret = errors.New("APP_JWT_SECRET environment variable is required")

// Load builds Config from environment with sensible defaults.
func Load() (*Config, error) {
	secret := os.Getenv("APP_JWT_SECRET")
	if secret == "" {
		return nil, ErrMissingJWTSecret
	}

	return &Config{
		Port:      getEnv("PORT", "3001"),
		JWTSecret: secret,
		ExcelFile: getEnv("EXCEL_FILE", "taxi_data.xlsx"),
		TokenTTL:  getEnvInt("TOKEN_TTL_HOURS", 24),
	}, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
