package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// AWS configuration
	AWSRegion     string
	DynamoDBTable string

	// Cache configuration. RedisURL empty means in-process cache.
	RedisURL        string
	CacheTTLSeconds int

	// Completion API (OpenAI-compatible)
	CompletionBaseURL string
	CompletionAPIKey  string
	CompletionModel   string

	// Job search API (Adzuna-compatible)
	JobSearchBaseURL string
	JobSearchAppID   string
	JobSearchAppKey  string

	// Export
	ExportDir string

	// Logging
	LogLevel string

	// Feature flags
	EnableCORS bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		AWSRegion:     getEnv("AWS_REGION", "us-west-2"),
		DynamoDBTable: getEnv("TABLE_NAME", getEnv("DYNAMODB_TABLE", "journeymap")),

		RedisURL:        getEnv("REDIS_URL", ""),
		CacheTTLSeconds: getEnvInt("CACHE_TTL_SECONDS", 3600),

		CompletionBaseURL: getEnv("COMPLETION_BASE_URL", "https://api.openai.com/v1"),
		CompletionAPIKey:  getEnv("COMPLETION_API_KEY", ""),
		CompletionModel:   getEnv("COMPLETION_MODEL", "gpt-4o-mini"),

		JobSearchBaseURL: getEnv("JOB_SEARCH_BASE_URL", "https://api.adzuna.com/v1/api/jobs/us/search/1"),
		JobSearchAppID:   getEnv("JOB_SEARCH_APP_ID", ""),
		JobSearchAppKey:  getEnv("JOB_SEARCH_APP_KEY", ""),

		ExportDir: getEnv("EXPORT_DIR", "exports"),

		LogLevel:   getEnv("LOG_LEVEL", "info"),
		EnableCORS: getEnvBool("ENABLE_CORS", true),
	}

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if c.Environment == "production" {
		if c.DynamoDBTable == "" {
			return fmt.Errorf("DYNAMODB_TABLE is required")
		}
		if c.CompletionAPIKey == "" {
			return fmt.Errorf("COMPLETION_API_KEY is required in production")
		}
	}
	if c.CacheTTLSeconds <= 0 {
		return fmt.Errorf("CACHE_TTL_SECONDS must be positive")
	}

	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
