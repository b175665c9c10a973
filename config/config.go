package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Mail    MailConfig
	Content ContentConfig
	Cache   CacheConfig
	App     AppConfig
}

type ServerConfig struct {
	Port string
}

// MailConfig carries the SMTP account used for both the notification and the
// acknowledgment send. Inbox is where notifications land when no override is set.
type MailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Inbox    string
}

// ContentConfig identifies the hosted Sanity dataset the content API reads from.
type ContentConfig struct {
	ProjectID   string
	Dataset     string
	APIVersion  string
	UseCDN      bool
	RefreshSpec string
}

type CacheConfig struct {
	RedisAddr     string
	RedisPassword string
	TTL           time.Duration
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
}

const DefaultInbox = "info@befound.studio"

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Mail: MailConfig{
			Host:     getEnv("SMTP_HOST", "smtp.gmail.com"),
			Port:     getEnvAsInt("SMTP_PORT", 587),
			User:     getEnv("SMTP_USER", ""),
			Password: getEnv("SMTP_PASS", ""),
			Inbox:    getEnv("CONTACT_EMAIL", DefaultInbox),
		},
		Content: ContentConfig{
			ProjectID:   getEnv("SANITY_PROJECT_ID", ""),
			Dataset:     getEnv("SANITY_DATASET", "production"),
			APIVersion:  getEnv("SANITY_API_VERSION", "2024-01-01"),
			UseCDN:      getEnvAsBool("SANITY_USE_CDN", true),
			RefreshSpec: getEnv("CONTENT_REFRESH_SPEC", "0 0 * * * *"),
		},
		Cache: CacheConfig{
			RedisAddr:     getEnv("REDIS_ADDR", ""),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			TTL:           time.Duration(getEnvAsInt("CACHE_TTL_MINUTES", 30)) * time.Minute,
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
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

	if c.Mail.Inbox == "" {
		return fmt.Errorf("CONTACT_EMAIL must not be empty")
	}

	if c.Content.ProjectID == "" && c.App.Environment != "development" {
		return fmt.Errorf("SANITY_PROJECT_ID is required outside development")
	}

	return nil
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

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean for %s, using default: %t", key, defaultValue)
		return defaultValue
	}

	return value
}
