package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumaconta/sumaconta_backend/internal/core/domain"
	"github.com/sumaconta/sumaconta_backend/internal/platform/config"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.IsProduction)
	assert.Equal(t, "120-M", cfg.RateLimit)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, domain.NegativeStockReject, cfg.NegativeStockPolicy)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("NEGATIVE_STOCK_POLICY", "allow")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, domain.NegativeStockAllow, cfg.NegativeStockPolicy)
}

func TestLoadConfig_InvalidPolicy(t *testing.T) {
	t.Setenv("NEGATIVE_STOCK_POLICY", "EXPLODE")

	_, err := config.LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NEGATIVE_STOCK_POLICY")
}
