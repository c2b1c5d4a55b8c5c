package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken string
	// AdminIDs is the admin set, loaded once and immutable at runtime
	AdminIDs []int64
	// LogFile enables file logging and the export_logs action when set
	LogFile  string
	Database DatabaseConfig
	Notify   NotifyConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// NotifyConfig bounds the notification fan-out
type NotifyConfig struct {
	MaxInFlight int
	PerSecond   float64
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	admins, err := parseAdminIDs(os.Getenv("ADMIN_IDS"))
	if err != nil {
		return nil, fmt.Errorf("ADMIN_IDS: %w", err)
	}

	maxInFlight, err := strconv.Atoi(getEnv("NOTIFY_MAX_IN_FLIGHT", "8"))
	if err != nil {
		return nil, fmt.Errorf("NOTIFY_MAX_IN_FLIGHT: %w", err)
	}

	perSecond, err := strconv.ParseFloat(getEnv("NOTIFY_PER_SECOND", "25"), 64)
	if err != nil {
		return nil, fmt.Errorf("NOTIFY_PER_SECOND: %w", err)
	}

	cfg := &Config{
		BotToken: os.Getenv("BOT_TOKEN"),
		AdminIDs: admins,
		LogFile:  os.Getenv("LOG_FILE"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "kollegebot"),
			User:     getEnv("DB_USER", "kollegebot"),
			Password: os.Getenv("DB_PASSWORD"),
		},
		Notify: NotifyConfig{
			MaxInFlight: maxInFlight,
			PerSecond:   perSecond,
		},
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}

	return cfg, nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func parseAdminIDs(value string) ([]int64, error) {
	var ids []int64
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad admin id %q: %w", part, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
