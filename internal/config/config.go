package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Database
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string

	// Session cookie
	SessionSecret string
	SessionName   string
	SessionMaxAge time.Duration
	CookieSecure  bool

	// Password hashing
	BcryptCost int

	// Server
	Port       string
	CORSOrigin string

	// Rate limits (requests per minute per IP)
	RateLimit     int
	AuthRateLimit int

	// Observability
	SentryDSN        string
	AppEnv           string
	LogRetentionDays int
	DBConnectTimeout time.Duration
}

func Load() *Config {
	return &Config{
		DatabaseURL: getEnv("DATABASE_URL", ""),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", ""),
		DBName:      getEnv("DB_NAME", "meals_app"),
		DBSSLMode:   getEnv("DB_SSLMODE", "disable"),

		SessionSecret: getEnv("SESSION_SECRET", ""),
		SessionName:   getEnv("SESSION_NAME", "meals-app-session"),
		SessionMaxAge: parseDuration(getEnv("SESSION_MAX_AGE", "24h"), 24*time.Hour),
		CookieSecure:  getEnv("COOKIE_SECURE", "false") == "true",

		BcryptCost: parseInt(getEnv("BCRYPT_COST", "10"), 10),

		Port:       getEnv("PORT", "8000"),
		CORSOrigin: getEnv("CORS_ORIGIN", "http://localhost:3000"),

		RateLimit:     parseInt(getEnv("RATE_LIMIT", "120"), 120),
		AuthRateLimit: parseInt(getEnv("AUTH_RATE_LIMIT", "10"), 10),

		SentryDSN:        getEnv("SENTRY_DSN", ""),
		AppEnv:           getEnv("APP_ENV", "development"),
		LogRetentionDays: parseInt(getEnv("LOG_RETENTION_DAYS", "30"), 30),
		DBConnectTimeout: parseDuration(getEnv("DB_CONNECT_TIMEOUT", "30s"), 30*time.Second),
	}
}

// DSN prefers DATABASE_URL and falls back to the individual DB_* settings.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

// HasDatabaseCredentials reports whether a connection can be attempted at all.
func (c *Config) HasDatabaseCredentials() bool {
	return c.DatabaseURL != "" || c.DBPassword != ""
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}

func parseInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}
