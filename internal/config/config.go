package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config: server settings, read once at startup.
type Config struct {
	Port              string
	AllowedDomains    string
	MaxColors         int
	MaxMessageSize    int
	MessagesPerSecond float64
	BurstSize         int
	ConnectsPerMinute int
	ConnectBurst      int
}

// Load: reads .env if present, then the environment, falling back to
// defaults for anything unset.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	return &Config{
		Port:              getEnv("PORT", "8080"),
		AllowedDomains:    getEnv("DOMAINS", ""),
		MaxColors:         getEnvInt("MAX_COLORS", 512),
		MaxMessageSize:    getEnvInt("MAX_MESSAGE_SIZE", 4096),
		MessagesPerSecond: getEnvFloat("MESSAGES_PER_SECOND", 20),
		BurstSize:         getEnvInt("BURST_SIZE", 40),
		ConnectsPerMinute: getEnvInt("CONNECTS_PER_MINUTE", 10),
		ConnectBurst:      getEnvInt("CONNECT_BURST", 5),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Invalid value for %s: %q, using default %d", key, v, fallback)
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("Invalid value for %s: %q, using default %g", key, v, fallback)
		return fallback
	}
	return f
}
