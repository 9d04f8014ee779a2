package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	ServerPort string
	GinMode    string

	MongoURI          string
	MongoDatabase     string
	MongoTransactions bool

	RedisURI string

	JWTSecret        string
	JWTExpiry        time.Duration
	ResetTokenExpiry time.Duration
	FrontendURL      string

	S3Endpoint      string
	S3AccessKey     string
	S3SecretKey     string
	S3Bucket        string
	S3UseSSL        bool
	S3PublicBaseURL string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string

	MailWorkers   int
	MailQueueSize int

	MidtransServerKey  string
	MidtransProduction bool

	GeminiAPIKey string
	GeminiModel  string

	RateLimitPerSecond float64
	CORSOrigins        []string
}

// Load reads configuration from .env file and environment variables
func Load() *Config {
	// Missing .env is fine, variables may come from the environment
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		GinMode:    getEnv("GIN_MODE", "debug"),

		MongoURI:          getEnvRequired("MONGO_URI"),
		MongoDatabase:     getEnvRequired("MONGO_DATABASE"),
		MongoTransactions: parseBool(getEnv("MONGO_TRANSACTIONS", "false")),

		RedisURI: getEnv("REDIS_URI", "localhost:6379"),

		JWTSecret:        getEnvRequired("JWT_SECRET"),
		JWTExpiry:        parseDuration(getEnv("JWT_EXPIRY", "24h")),
		ResetTokenExpiry: parseDuration(getEnv("RESET_TOKEN_EXPIRY", "15m")),
		FrontendURL:      getEnv("FRONTEND_URL", "http://localhost:3000"),

		S3Endpoint:      getEnv("S3_ENDPOINT", "localhost:9000"),
		S3AccessKey:     getEnv("S3_ACCESS_KEY", "minioadmin"),
		S3SecretKey:     getEnv("S3_SECRET_KEY", "minioadmin"),
		S3Bucket:        getEnv("S3_BUCKET", "coursehub"),
		S3UseSSL:        parseBool(getEnv("S3_USE_SSL", "false")),
		S3PublicBaseURL: getEnv("S3_PUBLIC_BASE_URL", ""),

		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     parseInt(getEnv("SMTP_PORT", "1025")),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		SMTPFrom:     getEnv("SMTP_FROM", "no-reply@coursehub.local"),

		MailWorkers:   parseInt(getEnv("MAIL_WORKERS", "2")),
		MailQueueSize: parseInt(getEnv("MAIL_QUEUE_SIZE", "100")),

		MidtransServerKey:  getEnv("MIDTRANS_SERVER_KEY", ""),
		MidtransProduction: parseBool(getEnv("MIDTRANS_PRODUCTION", "false")),

		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.0-flash"),

		RateLimitPerSecond: parseFloat(getEnv("RATE_LIMIT_PER_SECOND", "5")),
		CORSOrigins:        parseList(getEnv("CORS_ORIGINS", "*")),
	}

	if cfg.S3PublicBaseURL == "" {
		scheme := "http"
		if cfg.S3UseSSL {
			scheme = "https"
		}
		cfg.S3PublicBaseURL = scheme + "://" + cfg.S3Endpoint + "/" + cfg.S3Bucket
	}

	return cfg
}

// getEnv reads an environment variable with a fallback default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvRequired reads an environment variable and exits if not set
func getEnvRequired(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("Required environment variable %s is not set", key)
	}
	return value
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		log.Fatalf("Invalid duration format: %s", s)
	}
	return d
}

func parseBool(s string) bool {
	b, err := strconv.ParseBool(s)
	if err != nil {
		log.Fatalf("Invalid boolean value: %s", s)
	}
	return b
}

func parseInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("Invalid integer value: %s", s)
	}
	return n
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Fatalf("Invalid number value: %s", s)
	}
	return f
}

// parseList splits a comma-separated value, dropping empty entries.
func parseList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
