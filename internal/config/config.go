package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
)

// App holds the runtime configuration loaded from environment variables.
type App struct {
	Env             string
	HTTPPort        string
	JWTSecret       string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBPoolSize      int
	RedisAddr       string
	QueueBackend    string
	RateLimitPerMin int
	Seed            bool
}

// Load returns application config populated from environment variables with
// sensible defaults. The JWT secret default is a known weakness kept for
// compatibility with existing deployments; set JWT_SECRET in production.
func Load() App {
	return App{
		Env:             getEnv("APP_ENV", "dev"),
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		JWTSecret:       getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnv("DB_PORT", "5432"),
		DBUser:          getEnv("DB_USER", "postgres"),
		DBPassword:      getEnv("DB_PASSWORD", ""),
		DBName:          getEnv("DB_NAME", "school_system"),
		DBPoolSize:      intEnv("DB_POOL_SIZE", 10),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		QueueBackend:    getEnv("QUEUE_BACKEND", "redis"),
		RateLimitPerMin: intEnv("RATE_LIMIT_PER_MIN", 120),
		Seed:            boolEnv("SEED", false),
	}
}

// DatabaseURL assembles the Postgres connection string from the discrete
// DB_* settings.
func (a App) DatabaseURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(a.DBUser, a.DBPassword),
		Host:     a.DBHost + ":" + a.DBPort,
		Path:     "/" + a.DBName,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func intEnv(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		var parsed int
		if _, err := fmt.Sscanf(val, "%d", &parsed); err == nil {
			return parsed
		}
		log.Printf("invalid int for %s, using fallback %d", key, fallback)
	}
	return fallback
}

func boolEnv(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if val == "1" || val == "true" || val == "TRUE" {
			return true
		}
		if val == "0" || val == "false" || val == "FALSE" {
			return false
		}
		log.Printf("invalid bool for %s, using fallback %v", key, fallback)
	}
	return fallback
}
