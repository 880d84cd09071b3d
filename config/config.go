package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig
	OpenAI OpenAIConfig
	App    AppConfig
}

type ServerConfig struct {
	Port string
}

type OpenAIConfig struct {
	APIKey     string
	Model      string
	BaseURL    string
	TimeoutSec int
}

type AppConfig struct {
	Environment   string
	LogLevel      string
	Version       string
	KnowledgePath string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		OpenAI: OpenAIConfig{
			APIKey:     getEnv("OPENAI_API_KEY", ""),
			Model:      getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
			BaseURL:    getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			TimeoutSec: getEnvAsInt("OPENAI_TIMEOUT_SEC", 30),
		},
		App: AppConfig{
			Environment:   getEnv("APP_ENV", "development"),
			LogLevel:      getEnv("LOG_LEVEL", "info"),
			Version:       getEnv("APP_VERSION", "1.0.0"),
			KnowledgePath: getEnv("KNOWLEDGE_PATH", "data/knowledge.json"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.App.KnowledgePath == "" {
		return fmt.Errorf("KNOWLEDGE_PATH is required")
	}

	return nil
}

// GenerationEnabled reports whether an API key is configured. Without one the
// agent runs in knowledge-base-only mode.
func (c *Config) GenerationEnabled() bool {
	return c.OpenAI.APIKey != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}
