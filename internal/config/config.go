package config

import (
	"os"
	"strconv"
)

// Config holds all configuration for the application
type Config struct {
	Redis    RedisConfig
	Settings Settings
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Settings mirrors the host's read-only world settings store. The engine only
// reads these; changing them is the host's concern.
type Settings struct {
	// CurrencyWeight adds carried coin weight to encumbrance
	CurrencyWeight bool

	// AllowPolymorphing permits non-GM users to transform actors
	AllowPolymorphing bool

	// IDJMode uses the reduced currency set with no platinum conversion
	IDJMode bool
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Redis: RedisConfig{
			Addr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
		},
		Settings: Settings{
			CurrencyWeight:    getEnvAsBoolOrDefault("TRPG_CURRENCY_WEIGHT", false),
			AllowPolymorphing: getEnvAsBoolOrDefault("TRPG_ALLOW_POLYMORPHING", false),
			IDJMode:           getEnvAsBoolOrDefault("TRPG_IDJ_MODE", false),
		},
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

func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
