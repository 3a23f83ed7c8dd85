package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	RestoreModeFetch  = "fetch"
	RestoreModeLegacy = "legacy"
)

// Config holds everything the console needs at startup.
type Config struct {
	Env         string
	Development bool
	Port        string

	// Upstream CHARGILI API
	APIBaseURL string
	APITimeout time.Duration

	// Redis token store
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	SessionTTL         time.Duration
	SessionRestoreMode string

	CORSAllowOrigins string
	LoginRateLimit   int

	// Audit trail (Postgres)
	AuditEnabled bool
	DBHost       string
	DBPort       int
	DBUser       string
	DBPassword   string
	DBName       string

	StripeSecretKey string
}

// LoadEnv loads variables from a .env file if present.
func LoadEnv() error {
	return godotenv.Load()
}

// Load reads the configuration from environment variables.
func Load() *Config {
	env := GetEnv("ENV", "development")
	return &Config{
		Env:                env,
		Development:        env != "production",
		Port:               GetEnv("PORT", "3000"),
		APIBaseURL:         strings.TrimRight(GetEnv("API_BASE_URL", "http://localhost:8080"), "/"),
		APITimeout:         GetDurationEnv("API_TIMEOUT", 0),
		RedisHost:          GetEnv("REDIS_HOST", "localhost"),
		RedisPort:          GetEnv("REDIS_PORT", "6379"),
		RedisPassword:      GetEnv("REDIS_PASSWORD", ""),
		RedisDB:            GetIntEnv("REDIS_DB", 0),
		SessionTTL:         GetDurationEnv("SESSION_TTL", 0),
		SessionRestoreMode: GetEnv("SESSION_RESTORE_MODE", RestoreModeFetch),
		CORSAllowOrigins:   GetEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173"),
		LoginRateLimit:     GetIntEnv("LOGIN_RATE_LIMIT", 5),
		AuditEnabled:       GetBoolEnv("AUDIT_ENABLED", false),
		DBHost:             GetEnv("DB_HOST", "localhost"),
		DBPort:             GetIntEnv("DB_PORT", 5432),
		DBUser:             GetEnv("DB_USER", "postgres"),
		DBPassword:         GetEnv("DB_PASSWORD", "postgres"),
		DBName:             GetEnv("DB_NAME", "chargili"),
		StripeSecretKey:    GetEnv("STRIPE_SECRET_KEY", ""),
	}
}

// Validate checks the values that cannot be defaulted safely.
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("API_BASE_URL is required")
	}
	if !strings.HasPrefix(c.APIBaseURL, "http://") && !strings.HasPrefix(c.APIBaseURL, "https://") {
		return fmt.Errorf("API_BASE_URL must be an http(s) URL, got %q", c.APIBaseURL)
	}
	if c.SessionRestoreMode != RestoreModeFetch && c.SessionRestoreMode != RestoreModeLegacy {
		return fmt.Errorf("SESSION_RESTORE_MODE must be %q or %q", RestoreModeFetch, RestoreModeLegacy)
	}
	if c.LoginRateLimit <= 0 {
		return fmt.Errorf("LOGIN_RATE_LIMIT must be positive")
	}
	if c.APITimeout < 0 || c.SessionTTL < 0 {
		return fmt.Errorf("durations must not be negative")
	}
	return nil
}

// IsProduction checks if the app runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) RedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

// PostgresDSN builds the audit database DSN.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}

// GetEnv returns an environment variable or a default value.
func GetEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}

// GetIntEnv returns an int environment variable or a default value.
func GetIntEnv(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func GetBoolEnv(key string, defaultVal bool) bool {
	if val, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}

func GetDurationEnv(key string, defaultVal time.Duration) time.Duration {
	if val, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
