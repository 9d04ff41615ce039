package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "s3cret")

	cfg := Load()

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "admin@wardrobe.local", cfg.AdminEmail)
	assert.Equal(t, "admin", cfg.AdminUsername)
	assert.Equal(t, "s3cret", cfg.AdminPassword)
	assert.Equal(t, 10, cfg.SeedStockQuantity)
	assert.False(t, cfg.SeedStockRandom)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "s3cret")
	t.Setenv("APP_PORT", "9999")
	t.Setenv("ADMIN_EMAIL", "ops@example.com")
	t.Setenv("SEED_STOCK_QUANTITY", "25")
	t.Setenv("SEED_STOCK_RANDOM", "true")

	cfg := Load()

	assert.Equal(t, "9999", cfg.AppPort)
	assert.Equal(t, "ops@example.com", cfg.AdminEmail)
	assert.Equal(t, 25, cfg.SeedStockQuantity)
	assert.True(t, cfg.SeedStockRandom)
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("SOME_INT", "not a number")
	assert.Equal(t, 7, getEnvInt("SOME_INT", 7))

	t.Setenv("SOME_INT", "42")
	assert.Equal(t, 42, getEnvInt("SOME_INT", 7))
}
