// File: /config/config.go
package config

import (
	"os"
)

type Config struct {
	Port      string
	DataPath  string
	JWTSecret string

	// Weather Configuration
	OpenWeatherAPIKey string
}

func Load() *Config {
	return &Config{
		Port:      getEnv("PORT", "8080"),
		DataPath:  getEnv("DATA_PATH", "eventease.db"),
		JWTSecret: getEnv("JWT_SECRET", "your-secret-key"),

		OpenWeatherAPIKey: getEnv("OPENWEATHER_API_KEY", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
