package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	DBDSN        string
	Port         string
	GeminiAPIKey string
	SessionTTL   time.Duration
}

// Load reads configuration from the environment. DB_DSN is mandatory; the
// rest has development defaults.
func Load() *Config {
	cfg := &Config{
		DBDSN:        os.Getenv("DB_DSN"),
		Port:         os.Getenv("PORT"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		SessionTTL:   24 * time.Hour,
	}

	if cfg.DBDSN == "" {
		log.Fatal("DB_DSN is not set in environment")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if raw := os.Getenv("SESSION_TTL_HOURS"); raw != "" {
		hours, err := strconv.Atoi(raw)
		if err != nil || hours <= 0 {
			log.Fatalf("invalid SESSION_TTL_HOURS %q", raw)
		}
		cfg.SessionTTL = time.Duration(hours) * time.Hour
	}
	return cfg
}
