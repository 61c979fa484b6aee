package config

import (
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	DataDir     string
	OllamaURL   string
	ModelName   string
	RedisAddr   string // optional; empty disables the document cache
	Environment string
	LogLevel    slog.Level
}

func Load() *Config {
	return &Config{
		DataDir:     getEnv("DATA_DIR", "./data"),
		OllamaURL:   getEnv("OLLAMA_URL", "http://localhost:11434"),
		ModelName:   getEnv("MODEL_NAME", "llama3.2"),
		RedisAddr:   getEnv("REDIS_ADDR", ""),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    parseLogLevel(getEnv("LOG_LEVEL", "info")),
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
