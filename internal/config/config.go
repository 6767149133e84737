package config

import (
	"os"
	"strconv"
)

// Config carries everything the server wires at startup. Values come from the
// environment (godotenv autoload in the server package picks up a local .env).
type Config struct {
	Port int
	Env  string // "development" or "production"

	// BaseURL is the public site root used when building profile links for
	// approval emails.
	BaseURL string

	// AdminPassword gates the moderation endpoints. The product has no user
	// accounts; admin access is a single shared password.
	AdminPassword string

	SMTP SMTPConfig
}

// SMTPConfig configures the notification sender. When Host is empty the
// server falls back to a log-only sender so local development works without
// a mail account.
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

func Load() Config {
	port, _ := strconv.Atoi(os.Getenv("PORT"))
	if port == 0 {
		port = 8080
	}

	smtpPort, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if smtpPort == 0 {
		smtpPort = 587
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:3000"
	}

	return Config{
		Port:          port,
		Env:           env,
		BaseURL:       baseURL,
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		SMTP: SMTPConfig{
			Host:      os.Getenv("SMTP_HOST"),
			Port:      smtpPort,
			Username:  os.Getenv("SMTP_USERNAME"),
			Password:  os.Getenv("SMTP_PASSWORD"),
			FromEmail: getenvDefault("SMTP_FROM_EMAIL", "hello@cofounderbase.com"),
			FromName:  getenvDefault("SMTP_FROM_NAME", "CoFounder Base"),
		},
	}
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
