// File: /config/config.go
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string

	// Friend request rate limiting
	RateLimitWindowSeconds int
	RateLimitMaxRequests   int
}

func Load() *Config {
	// Optional .env for local development; deployments set the environment directly
	_ = godotenv.Load()

	windowSeconds, _ := strconv.Atoi(getEnv("FRIEND_RATE_WINDOW_SECONDS", "60"))
	maxRequests, _ := strconv.Atoi(getEnv("FRIEND_RATE_MAX_REQUESTS", "3"))

	return &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: getEnv("DATABASE_URL", "user:password@tcp(localhost:3306)/socialnet?charset=utf8mb4&parseTime=True&loc=Local"),
		JWTSecret:   getEnv("JWT_SECRET", "your-secret-key"),

		RateLimitWindowSeconds: windowSeconds,
		RateLimitMaxRequests:   maxRequests,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
