package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"APP_ENV", "APP_PORT", "PORT", "DATABASE_URL", "DB_HOST", "DB_PORT", "DB_USER",
		"DB_PASSWORD", "DB_NAME", "DB_SSLMODE", "REDIS_URL", "CART_STORAGE_KEY",
		"CART_SLOT_BACKEND", "CART_IDLE_TTL", "CATALOG_URL", "CATALOG_CACHE_TTL", "JWT_SECRET",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg := LoadConfig()

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "8082", cfg.Port)
	assert.Equal(t, "restaurant-cart", cfg.CartStorageKey)
	assert.Equal(t, "redis", cfg.CartSlotBackend)
	assert.Equal(t, 5*time.Minute, cfg.CatalogCacheTTL)
	assert.Equal(t, 30*time.Minute, cfg.CartIdleTTL)
	assert.Empty(t, cfg.CatalogURL)
	assert.False(t, cfg.IsProduction())
	assert.Same(t, cfg, AppConfig)
}

func TestLoadConfigOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", "9000")
	t.Setenv("CART_STORAGE_KEY", "cart")
	t.Setenv("CART_SLOT_BACKEND", "postgres")
	t.Setenv("CATALOG_URL", "http://catalog.local")
	t.Setenv("CATALOG_CACHE_TTL", "30s")
	t.Setenv("CART_IDLE_TTL", "0s")

	cfg := LoadConfig()

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "cart", cfg.CartStorageKey)
	assert.Equal(t, "postgres", cfg.CartSlotBackend)
	assert.Equal(t, "http://catalog.local", cfg.CatalogURL)
	assert.Equal(t, 30*time.Second, cfg.CatalogCacheTTL)
	assert.Zero(t, cfg.CartIdleTTL)
}

func TestLoadConfigInvalidCacheTTLFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("CATALOG_CACHE_TTL", "soon")
	t.Setenv("CART_IDLE_TTL", "forever")

	cfg := LoadConfig()

	assert.Equal(t, 5*time.Minute, cfg.CatalogCacheTTL)
	assert.Equal(t, 30*time.Minute, cfg.CartIdleTTL)
}

func TestDSN(t *testing.T) {
	cfg := &Config{DBUser: "u", DBPassword: "p", DBHost: "h", DBPort: "5432", DBName: "n", DBSSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@h:5432/n?sslmode=disable", cfg.DSN())

	cfg.DatabaseURL = "postgres://override"
	assert.Equal(t, "postgres://override", cfg.DSN())
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("DB_MAX_CONNS", "7")
	assert.Equal(t, 7, getEnvInt("DB_MAX_CONNS", 25))

	t.Setenv("DB_MAX_CONNS", "many")
	assert.Equal(t, 25, getEnvInt("DB_MAX_CONNS", 25))
}
