package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port string

	// Key-value store backend: memory, database, redis
	StoreType string

	// Database configuration, used when StoreType is database
	DBType            string // mysql, mariadb, postgres, sqlite, sqlite-pure, sqlserver
	DBHost            string
	DBPort            string
	DBDatabase        string
	DBUser            string
	DBPassword        string
	DBConnectionLimit int

	// Redis configuration, used by the redis store and the event relay
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	EventsRedis   bool

	// Generative model configuration
	APIKey      string
	GeminiModel string
	AITimeout   time.Duration

	// Auth configuration
	AdminIdentifiers   []string
	AdminPasswordHash  string
	AuthDelay          time.Duration
	ResetPasswordDelay time.Duration

	// Decision engines
	SpinDuration time.Duration

	// Profile session cache
	SessionCacheSize int
	SessionTTL       time.Duration
}

// Load loads configuration from environment variables, after an optional ENV_FILE
func Load() (*Config, error) {
	if envFile := os.Getenv("ENV_FILE"); envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	cfg := &Config{
		Port:               getEnv("PORT", "3000"),
		StoreType:          getEnv("STORE_TYPE", "memory"),
		DBType:             getEnv("DB_TYPE", "sqlite"),
		DBHost:             getEnv("DB_HOST", "localhost"),
		DBPort:             getEnv("DB_PORT", "3306"),
		DBDatabase:         getEnv("DB_DATABASE", ""),
		DBUser:             getEnv("DB_USER", ""),
		DBPassword:         getEnv("DB_PASSWORD", ""),
		DBConnectionLimit:  getEnvAsInt("DB_CONNECTION_LIMIT", 5),
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),
		RedisDB:            getEnvAsInt("REDIS_DB", 0),
		EventsRedis:        getEnvAsBool("EVENTS_REDIS", false),
		APIKey:             getEnv("API_KEY", ""),
		GeminiModel:        getEnv("GEMINI_MODEL", "gemini-3-flash-preview"),
		AITimeout:          getEnvAsDuration("AI_TIMEOUT", 30*time.Second),
		AdminIdentifiers:   getEnvAsList("ADMIN_IDENTIFIERS", []string{"admin", "admin@decideforme.app"}),
		AdminPasswordHash:  getEnv("ADMIN_PASSWORD_HASH", "a63f45da"),
		AuthDelay:          getEnvAsDuration("AUTH_DELAY", 0),
		ResetPasswordDelay: getEnvAsDuration("RESET_PASSWORD_DELAY", 1500*time.Millisecond),
		SpinDuration:       getEnvAsDuration("SPIN_DURATION", 4*time.Second),
		SessionCacheSize:   getEnvAsInt("SESSION_CACHE_SIZE", 10000),
		SessionTTL:         getEnvAsDuration("SESSION_TTL", 30*time.Minute),
	}

	// Validate required fields
	switch cfg.StoreType {
	case "memory", "redis":
	case "database":
		if cfg.DBDatabase == "" {
			return nil, fmt.Errorf("DB_DATABASE is required")
		}
		if cfg.DBUser == "" && !cfg.IsSQLite() {
			return nil, fmt.Errorf("DB_USER is required")
		}
	default:
		return nil, fmt.Errorf("unsupported STORE_TYPE: %s", cfg.StoreType)
	}
	if cfg.AdminPasswordHash == "" {
		return nil, fmt.Errorf("ADMIN_PASSWORD_HASH is required")
	}

	return cfg, nil
}

// IsSQLite reports whether the database is a local sqlite file
func (c *Config) IsSQLite() bool {
	return c.DBType == "sqlite" || c.DBType == "sqlite-pure"
}

// NeedsRedis reports whether a redis connection must be established
func (c *Config) NeedsRedis() bool {
	return c.StoreType == "redis" || c.EventsRedis
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsBool accepts anything strconv.ParseBool does
func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration accepts a Go duration ("1.5s") or a plain number of milliseconds
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	if ms, err := strconv.Atoi(valueStr); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma separated variable
func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(valueStr, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
