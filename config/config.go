package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all server configuration
type Config struct {
	Port           int
	OpenAIKey      string // empty is allowed: handlers answer with canned fallbacks
	Model          string
	KnowledgePath  string
	AllowedOrigins []string
	RedisURL       string
	RedisPassword  string
}

// Load reads configuration from environment variables with defaults
func Load() (*Config, error) {
	// Load .env file if it exists (doesn't error if missing)
	_ = godotenv.Load()

	config := &Config{
		Port:           3000,
		Model:          "gpt-4o-mini",
		KnowledgePath:  "knowledge.json",
		AllowedOrigins: []string{"*"},
		RedisURL:       "localhost:6379",
		RedisPassword:  "",
	}

	// Optional: OPENAI_API_KEY. Absence is not an error; every handler has a
	// canned response path so the service stays useful unconfigured.
	config.OpenAIKey = os.Getenv("OPENAI_API_KEY")

	// Optional: PORT
	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %w", err)
		}
		config.Port = p
	}

	// Optional: OPENAI_MODEL
	if model := os.Getenv("OPENAI_MODEL"); model != "" {
		config.Model = model
	}

	// Optional: KNOWLEDGE_PATH
	if path := os.Getenv("KNOWLEDGE_PATH"); path != "" {
		config.KnowledgePath = path
	}

	// Optional: ALLOWED_ORIGINS (comma-separated)
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		config.AllowedOrigins = strings.Split(origins, ",")
	}

	// Optional: REDIS_URL
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		config.RedisURL = redisURL
	}

	// Optional: REDIS_PASSWORD
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.RedisPassword = redisPassword
	}

	return config, nil
}
