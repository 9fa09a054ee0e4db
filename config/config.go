package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	Env      string
	LogLevel string
	// StoreAPIURL is the base URL of the remote commerce API. It is resolved
	// once at startup; every backend call goes through it.
	StoreAPIURL     string
	StoreAPITimeout time.Duration
	SessionSecret   string
	// Transient checkout state (the server-side stand-in for state carried
	// between pages) is dropped after this TTL.
	CheckoutStateTTL time.Duration
	// NoticeAutoclose is how long an error banner stays up before it closes
	// itself.
	NoticeAutoClose time.Duration
	// Rate limiting
	RateLimitPerSecond float64
	RateLimitBurst     int
}

func LoadConfig() *Config {
	// A specific config file can be requested via env var; otherwise fall back
	// to .env. Missing files are fine, system env vars still apply.
	configFile := os.Getenv("CONFIG_FILE")
	if configFile != "" {
		if err := godotenv.Load(configFile); err != nil {
			log.Printf("Warning: Failed to load config file '%s': %v", configFile, err)
		} else {
			log.Printf("Loaded configuration from %s", configFile)
		}
	} else {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found or error loading it, relying on system env vars")
		}
	}

	cfg := &Config{
		Port:     getEnv("PORT", "3000"),
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		StoreAPIURL:     getEnv("STORE_API_URL", "http://127.0.0.1:8080"),
		StoreAPITimeout: getDurationEnv("STORE_API_TIMEOUT", 10*time.Second),

		SessionSecret: getEnv("SESSION_SECRET", "default_secret_CHANGE_ME"),

		CheckoutStateTTL: getDurationEnv("CHECKOUT_STATE_TTL", 30*time.Minute),
		NoticeAutoClose:  getDurationEnv("NOTICE_AUTO_CLOSE", 5*time.Second),

		RateLimitPerSecond: getFloatEnv("RATE_LIMIT_PER_SECOND", 50),
		RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 100),
	}

	cfg.Validate()
	return cfg
}

func (c *Config) Validate() {
	if c.StoreAPIURL == "" {
		log.Fatal("CRITICAL: STORE_API_URL must not be empty")
	}
	if c.SessionSecret == "default_secret_CHANGE_ME" {
		log.Println("WARNING: Using default session secret. Setting up for failure in production.")
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		log.Printf("Invalid duration for %s, using fallback", key)
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
		log.Printf("Invalid int for %s, using fallback", key)
	}
	return fallback
}

func getFloatEnv(key string, fallback float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
		log.Printf("Invalid float for %s, using fallback", key)
	}
	return fallback
}
