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
	Environment string
	Port        string

	AdminUsername string
	AdminPassword string

	JWTSecret     string
	SessionExpiry time.Duration

	NotificationTTL time.Duration

	CORSAllowedOrigins []string

	MailProvider    string
	MailFromAddress string
	MailFromName    string
	SESRegion       string
	SESAccessKeyID  string
	SESSecretKey    string
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// In production we rely on system environment variables; a missing
	// .env file is fine elsewhere too.
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:     env,
		Port:            os.Getenv("PORT"),
		AdminUsername:   os.Getenv("ADMIN_USERNAME"),
		AdminPassword:   os.Getenv("ADMIN_PASSWORD"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		SessionExpiry:   durationEnv("SESSION_EXPIRY", 12*time.Hour),
		NotificationTTL: millisEnv("NOTIFICATION_TTL_MS", 4000*time.Millisecond),
		MailProvider:    os.Getenv("MAIL_PROVIDER"),
		MailFromAddress: os.Getenv("MAIL_FROM_ADDRESS"),
		MailFromName:    os.Getenv("MAIL_FROM_NAME"),
		SESRegion:       os.Getenv("AWS_SES_REGION"),
		SESAccessKeyID:  os.Getenv("AWS_ACCESS_KEY_ID"),
		SESSecretKey:    os.Getenv("AWS_SECRET_ACCESS_KEY"),
	}

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.CORSAllowedOrigins = strings.Split(origins, ",")
	}

	// Set defaults
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	// Demo credentials from the original site; override in any real deployment.
	if cfg.AdminUsername == "" {
		cfg.AdminUsername = "admin"
	}
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = "ciso2026"
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "dev-secret-change-me"
	}
	if cfg.MailProvider == "" {
		cfg.MailProvider = "noop"
	}
	if cfg.MailFromAddress == "" {
		cfg.MailFromAddress = "hello@cisoevents.example"
	}

	return cfg, nil
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	s := os.Getenv(key)
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		log.Printf("Warning: invalid %s %q, using default %s", key, s, fallback)
		return fallback
	}
	return d
}

func millisEnv(key string, fallback time.Duration) time.Duration {
	s := os.Getenv(key)
	if s == "" {
		return fallback
	}
	ms, err := strconv.Atoi(s)
	if err != nil || ms <= 0 {
		log.Printf("Warning: invalid %s %q, using default %s", key, s, fallback)
		return fallback
	}
	return time.Duration(ms) * time.Millisecond
}
