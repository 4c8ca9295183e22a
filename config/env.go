package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv          string
	Port            string
	LogLevel        string
	DatabaseURL     string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBSSLMode       string
	MigrationDir    string
	RedisURL        string
	RedisAddr       string
	RedisPassword   string
	CartStorageKey  string
	CartSlotBackend string
	CartIdleTTL     time.Duration
	CatalogURL      string
	CatalogCacheTTL time.Duration
	JWTSecret       string
	OriginURL       string
	// EnvFileLoaded reports whether a .env file was found.
	EnvFileLoaded bool
}

var AppConfig *Config

func LoadConfig() *Config {
	envErr := godotenv.Load()

	AppConfig = &Config{
		AppEnv:          getEnv("APP_ENV", "development"),
		Port:            getEnv("APP_PORT", getEnv("PORT", "8082")),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnv("DB_PORT", "5454"),
		DBUser:          getEnv("DB_USER", "postgres"),
		DBPassword:      getEnv("DB_PASSWORD", "postgres"),
		DBName:          getEnv("DB_NAME", "restaurant"),
		DBSSLMode:       getEnv("DB_SSLMODE", "disable"),
		MigrationDir:    getEnv("MIGRATION_DIR", "database/migration"),
		RedisURL:        os.Getenv("REDIS_URL"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		CartStorageKey:  getEnv("CART_STORAGE_KEY", "restaurant-cart"),
		CartSlotBackend: getEnv("CART_SLOT_BACKEND", "redis"),
		CartIdleTTL:     getEnvDuration("CART_IDLE_TTL", 30*time.Minute),
		CatalogURL:      os.Getenv("CATALOG_URL"),
		CatalogCacheTTL: getEnvDuration("CATALOG_CACHE_TTL", 5*time.Minute),
		JWTSecret:       getEnv("JWT_SECRET", "secret"),
		OriginURL:       os.Getenv("ORIGIN_URL"),
		EnvFileLoaded:   envErr == nil,
	}
	return AppConfig
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}
