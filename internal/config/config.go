package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTP_ADDR      string
	STORE_PATH     string
	JWT_SECRET     string
	LOG_LEVEL      string
	SEED_DEMO_DATA bool
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	config := &Config{
		HTTP_ADDR:      getenvDefault("HTTP_ADDR", ":8080"),
		STORE_PATH:     getenvDefault("STORE_PATH", "vocano.db"),
		JWT_SECRET:     os.Getenv("JWT_SECRET"),
		LOG_LEVEL:      getenvDefault("LOG_LEVEL", "info"),
		SEED_DEMO_DATA: os.Getenv("SEED_DEMO_DATA") == "1" || os.Getenv("SEED_DEMO_DATA") == "true",
	}

	return config, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
