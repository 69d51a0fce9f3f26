package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	DatabaseURL       string
	JWTSecret         string
	JWTAccessExpiry   time.Duration
	JWTRefreshExpiry  time.Duration
	ContractAddress   string
	RPCURL            string
	HuggingFaceAPIKey string
	FrontendURL       string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	accessExpiry := 24 * time.Hour
	if exp := os.Getenv("JWT_ACCESS_EXPIRY"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			accessExpiry = parsed
		}
	}

	refreshExpiry := 168 * time.Hour // 7 days
	if exp := os.Getenv("JWT_REFRESH_EXPIRY"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			refreshExpiry = parsed
		}
	}

	return &Config{
		Port:              getEnv("PORT", "8080"),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		JWTSecret:         getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		JWTAccessExpiry:   accessExpiry,
		JWTRefreshExpiry:  refreshExpiry,
		ContractAddress:   getEnv("CONTRACT_ADDRESS", ""),
		RPCURL:            getEnv("SEPOLIA_RPC_URL", ""),
		HuggingFaceAPIKey: getEnv("HUGGINGFACE_API_KEY", ""),
		FrontendURL:       getEnv("FRONTEND_URL", ""),
	}
}

// Validate reports the env vars the server cannot run without.
func (c *Config) Validate() error {
	required := map[string]string{
		"DATABASE_URL":     c.DatabaseURL,
		"CONTRACT_ADDRESS": c.ContractAddress,
		"SEPOLIA_RPC_URL":  c.RPCURL,
	}
	for name, value := range required {
		if value == "" {
			return fmt.Errorf("missing required environment variable %s", name)
		}
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
