package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/sumaconta/sumaconta_backend/internal/core/domain"
)

// Config holds application configuration.
type Config struct {
	Port               string
	IsProduction       bool
	RateLimit          string // ulule/limiter format, e.g. "120-M"
	CORSAllowedOrigins []string
	// NegativeStockPolicy is the default policy applied when a valuation
	// request does not specify one.
	NegativeStockPolicy domain.NegativeStockPolicy
}

// LoadConfig loads configuration from environment variables and a .env file
// if present. Environment variables override .env values.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("RATE_LIMIT", "120-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("NEGATIVE_STOCK_POLICY", string(domain.NegativeStockReject))

	viper.AutomaticEnv()

	cfg := &Config{
		Port:         viper.GetString("PORT"),
		IsProduction: viper.GetBool("IS_PRODUCTION"),
		RateLimit:    viper.GetString("RATE_LIMIT"),
	}

	cfg.CORSAllowedOrigins = strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",")
	for i := range cfg.CORSAllowedOrigins {
		cfg.CORSAllowedOrigins[i] = strings.TrimSpace(cfg.CORSAllowedOrigins[i])
	}

	policy := domain.NegativeStockPolicy(strings.ToUpper(viper.GetString("NEGATIVE_STOCK_POLICY")))
	switch policy {
	case domain.NegativeStockReject, domain.NegativeStockAllow, domain.NegativeStockClamp:
		cfg.NegativeStockPolicy = policy
	default:
		return nil, fmt.Errorf("invalid NEGATIVE_STOCK_POLICY %q (want REJECT, ALLOW or CLAMP)", policy)
	}

	return cfg, nil
}
