package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Storage drivers understood by the database package
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds everything the server reads from the environment
type Config struct {
	Port              string
	DBDriver          string
	DatabaseURL       string
	DBMaxOpenConns    int
	DBConnMaxLifetime time.Duration
	JWTSecret         string
	TokenTTL          time.Duration
	CommentsPageSize  int
	RateLimitRPS      float64
	RateLimitBurst    int
	RequestTimeout    time.Duration
	LogLevel          string
	SeedDemoData      bool
}

// Load reads .env when present and then the process environment
func Load() (Config, error) {
	_ = godotenv.Load() // ok if missing

	cfg := Config{
		Port:              ":" + strings.TrimPrefix(GetEnvAsString("PORT", "8080"), ":"),
		DBDriver:          strings.ToLower(GetEnvAsString("DB_DRIVER", DriverMemory)),
		DatabaseURL:       GetEnvAsString("DATABASE_URL", ""),
		DBMaxOpenConns:    GetEnvAsInt("DB_MAX_OPEN_CONNS", 10),
		DBConnMaxLifetime: GetEnvAsDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute),
		JWTSecret:         GetEnvAsString("JWT_SECRET", ""),
		TokenTTL:          GetEnvAsDuration("TOKEN_TTL", 24*time.Hour),
		CommentsPageSize:  GetEnvAsInt("COMMENTS_PAGE_SIZE", 10),
		RateLimitRPS:      GetEnvAsFloat("RATE_LIMIT_RPS", 50),
		RateLimitBurst:    GetEnvAsInt("RATE_LIMIT_BURST", 100),
		RequestTimeout:    GetEnvAsDuration("REQUEST_TIMEOUT", 5*time.Second),
		LogLevel:          GetEnvAsString("LOG_LEVEL", "info"),
		SeedDemoData:      GetEnvAsBool("SEED_DEMO_DATA", false),
	}

	return cfg, cfg.Validate()
}

// Validate rejects combinations the server cannot start with
func (c Config) Validate() error {
	switch c.DBDriver {
	case DriverMemory:
	case DriverSQLite, DriverPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("config: DATABASE_URL is required for driver %q", c.DBDriver)
		}
	default:
		return fmt.Errorf("config: unknown DB_DRIVER %q", c.DBDriver)
	}

	// the memory driver is for local runs; anything persistent needs a real secret
	if c.JWTSecret == "" && c.DBDriver != DriverMemory {
		return errors.New("config: JWT_SECRET is required")
	}
	if c.CommentsPageSize < 1 {
		return errors.New("config: COMMENTS_PAGE_SIZE must be positive")
	}
	return nil
}

// GetEnvAsString gets environment variable as string with default value
func GetEnvAsString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvAsInt gets environment variable as int with default value
func GetEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// GetEnvAsFloat gets environment variable as float64 with default value
func GetEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

// GetEnvAsBool gets environment variable as bool with default value
func GetEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// GetEnvAsDuration gets environment variable as duration with default value
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
