package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// CompanyInfo identifies the workshop on printed and exported documents.
type CompanyInfo struct {
	Name    string
	NIT     string
	Address string
	Phone   string
	Email   string
	LogoURL string
}

// Config holds all application configuration
type Config struct {
	Port                  string
	GoEnv                 string
	BackendAPIURL         string
	EmailEndpointURL      string
	NotifyIntervalMinutes int
	LogLevel              string
	Company               CompanyInfo
}

var configInstance *Config

// Load loads the configuration from environment variables
// It automatically determines which .env file to load based on GO_ENV
func Load() (*Config, error) {
	// Determine which environment file to load
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// Try to load environment-specific file first
	envFile := fmt.Sprintf(".env.%s", env)
	if err := godotenv.Load(envFile); err != nil {
		// If environment-specific file doesn't exist, try .env
		if err := godotenv.Load(); err != nil {
			// In production, environment variables are set directly
			// so it's okay if .env files don't exist
			log.Printf("No .env file found, using system environment variables")
		}
	} else {
		log.Printf("Loaded configuration from %s", envFile)
	}

	config := &Config{
		Port:                  getEnv("PORT", "8080"),
		GoEnv:                 getEnv("GO_ENV", "development"),
		BackendAPIURL:         getEnv("BACKEND_API_URL", ""),
		EmailEndpointURL:      getEnv("EMAIL_ENDPOINT_URL", ""),
		NotifyIntervalMinutes: getEnvInt("NOTIFY_INTERVAL_MINUTES", 5),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
		Company: CompanyInfo{
			Name:    getEnv("COMPANY_NAME", "Moto Workshop"),
			NIT:     getEnv("COMPANY_NIT", ""),
			Address: getEnv("COMPANY_ADDRESS", ""),
			Phone:   getEnv("COMPANY_PHONE", ""),
			Email:   getEnv("COMPANY_EMAIL", ""),
			LogoURL: getEnv("COMPANY_LOGO_URL", ""),
		},
	}

	// Validate required configuration
	if err := config.Validate(); err != nil {
		return nil, err
	}

	configInstance = config
	return config, nil
}

// Validate checks that all required configuration values are set
func (c *Config) Validate() error {
	if c.BackendAPIURL == "" {
		return fmt.Errorf("BACKEND_API_URL is required")
	}
	if c.NotifyIntervalMinutes <= 0 {
		return fmt.Errorf("NOTIFY_INTERVAL_MINUTES must be positive")
	}
	return nil
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.GoEnv == "production"
}

// IsTest returns true if the application is running in test mode
func (c *Config) IsTest() bool {
	return c.GoEnv == "test"
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.GoEnv == "development"
}

// GetConfig returns the loaded configuration instance
func GetConfig() *Config {
	return configInstance
}

// SetConfig sets the configuration instance (primarily for testing)
func SetConfig(c *Config) {
	configInstance = c
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid value for %s: %q, using default %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}
