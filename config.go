package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Version reported by the health endpoint.
const Version = "2.0.0"

// Config holds all environment-driven settings for the service.
type Config struct {
	Port      string  // HTTP listen port
	DataDir   string  // directory holding the JSON collections
	StaticDir string  // directory holding the front-end assets
	AdminIDs  []int64 // Telegram user ids granted admin access
	Env       string  // "production" switches zap to its production config
}

// LoadConfig reads settings from the environment, applying the defaults
// the original deployment used. ADMIN_IDS is a comma-separated list of
// Telegram user ids.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:      getEnv("PORT", "3000"),
		DataDir:   getEnv("DATA_DIR", "./data"),
		StaticDir: getEnv("STATIC_DIR", "./web"),
		Env:       getEnv("ENV", "development"),
	}

	raw := getEnv("ADMIN_IDS", "410375956")
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("ADMIN_IDS contains invalid id %q: %w", part, err)
		}
		cfg.AdminIDs = append(cfg.AdminIDs, id)
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
