package config

import (
	"os"
	"strconv"

	"github.com/GenioFalco/gardenTapTap2-sub000/internal/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort     string
	DatabaseURL string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Engine tuning
	TapExperience    int64
	EnergyPerMinute  int
	DefaultMaxEnergy int

	// Rate limits (requests per window, window in seconds)
	APIRateLimit  int
	APIRateWindow int
	TapRateLimit  int
	TapRateWindow int
}

// Load reads configuration from the environment, .env included.
func Load() *Config {
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		logger.Fatal("DATABASE_URL is not set")
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}

	return &Config{
		AppPort:     port,
		DatabaseURL: dbURL,

		RedisAddr:     redisAddr,
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       envInt("REDIS_DB", 0),

		TapExperience:    int64(envInt("TAP_EXPERIENCE", 1)),
		EnergyPerMinute:  envInt("ENERGY_PER_MINUTE", 1),
		DefaultMaxEnergy: envInt("DEFAULT_MAX_ENERGY", 100),

		APIRateLimit:  envInt("API_RATE_LIMIT", 120),
		APIRateWindow: envInt("API_RATE_WINDOW", 60),
		TapRateLimit:  envInt("TAP_RATE_LIMIT", 20),
		TapRateWindow: envInt("TAP_RATE_WINDOW", 1),
	}
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}
