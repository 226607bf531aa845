package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration for the application
type Config struct {
	Campaign CampaignConfig
	Redis    RedisConfig
	Trade    TradeConfig
}

// CampaignConfig identifies which campaign's records this instance serves
type CampaignConfig struct {
	ID string
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// TradeConfig holds trade settlement configuration
type TradeConfig struct {
	// BuybackRate is the fraction of listed value merchants pay when
	// buying from players. Must be in (0, 1].
	BuybackRate float64
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Campaign: CampaignConfig{
			ID: os.Getenv("CAMPAIGN_ID"),
		},
		Redis: RedisConfig{
			Addr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
		},
		Trade: TradeConfig{
			BuybackRate: getEnvAsFloatOrDefault("MERCHANT_BUYBACK_RATE", 0.8),
		},
	}

	// Validate required fields
	if cfg.Campaign.ID == "" {
		return nil, fmt.Errorf("CAMPAIGN_ID is required")
	}
	if cfg.Trade.BuybackRate <= 0 || cfg.Trade.BuybackRate > 1 {
		return nil, fmt.Errorf("MERCHANT_BUYBACK_RATE must be in (0, 1], got %v", cfg.Trade.BuybackRate)
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
