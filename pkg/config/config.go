package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	ServerAddr  string
	DBHost      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBPort      string
	RedisAddr   string
	GithubToken string
	CacheWindow time.Duration
}

// Load reads the configuration from environment variables with fallbacks
func Load() Config {
	return Config{
		ServerAddr:  getEnv("SERVER_ADDR", ":8080"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", "password"),
		DBName:      getEnv("DB_NAME", "gittags"),
		DBPort:      getEnv("DB_PORT", "5432"),
		RedisAddr:   getEnv("REDIS_ADDR", ""),
		GithubToken: getEnv("GITHUB_TOKEN", ""),
		CacheWindow: time.Duration(getEnvInt("CACHE_WINDOW_SECONDS", 600)) * time.Second,
	}
}

// Helper function to fetch environment variables with a fallback value
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}
