package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	APIBaseURL   string
	APIToken     string
	PollInterval time.Duration
	KVPath       string
	UserID       string
	UserRole     string
	IsProduction bool
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("API_BASE_URL", "http://localhost:8080")
	viper.SetDefault("API_TOKEN", "")
	viper.SetDefault("POLL_INTERVAL", "30s")
	viper.SetDefault("KV_PATH", "autix.db")
	viper.SetDefault("USER_ID", "")
	viper.SetDefault("USER_ROLE", "DEALER")
	viper.SetDefault("IS_PRODUCTION", false)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.APIBaseURL = viper.GetString("API_BASE_URL")
	if cfg.APIBaseURL == "" {
		log.Println("Warning: API_BASE_URL environment variable not set.")
	}

	cfg.APIToken = viper.GetString("API_TOKEN")
	if cfg.APIToken == "" {
		log.Println("Warning: API_TOKEN not set. Requests will be unauthenticated.")
	}

	pollStr := viper.GetString("POLL_INTERVAL")
	pollInterval, err := time.ParseDuration(pollStr)
	if err != nil || pollInterval <= 0 {
		pollInterval = 30 * time.Second
		if pollStr != "" {
			log.Printf("Warning: Invalid value for POLL_INTERVAL ('%s'). Defaulting to %s.\n", pollStr, pollInterval)
		}
	}
	cfg.PollInterval = pollInterval

	cfg.KVPath = viper.GetString("KV_PATH")
	if cfg.KVPath == "" {
		cfg.KVPath = "autix.db"
		log.Printf("Warning: KV_PATH not set. Defaulting to %s.\n", cfg.KVPath)
	}

	cfg.UserID = viper.GetString("USER_ID")
	if cfg.UserID == "" {
		log.Println("Warning: USER_ID environment variable not set.")
	}

	cfg.UserRole = viper.GetString("USER_ROLE")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	return cfg, nil
}
