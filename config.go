package main

import (
	"log"
	"os"
	"strconv"
	"time"

	_ "github.com/joho/godotenv/autoload"
)

// Config is read once from the environment (and .env, via godotenv).
type Config struct {
	Port   string
	DBPath string

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	ToEmail  string

	AdminUsername string
	AdminPassword string

	ViewerSessionTTL time.Duration
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func loadConfig() Config {
	cfg := Config{
		Port:          getenv("PORT", "8080"),
		DBPath:        getenv("DB_PATH", "portfolio.db"),
		SMTPHost:      getenv("SMTP_HOST", "smtp.gmail.com"),
		SMTPUser:      os.Getenv("SMTP_USER"),
		SMTPPass:      os.Getenv("SMTP_PASS"),
		ToEmail:       getenv("TO_EMAIL", "hello@example.com"),
		AdminUsername: os.Getenv("ADMIN_USERNAME"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}

	port, err := strconv.Atoi(getenv("SMTP_PORT", "587"))
	if err != nil {
		log.Printf("Invalid SMTP_PORT, using 587: %v", err)
		port = 587
	}
	cfg.SMTPPort = port

	cfg.ViewerSessionTTL = 30 * time.Minute
	if raw := os.Getenv("VIEWER_SESSION_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			log.Printf("Invalid VIEWER_SESSION_TTL %q, using %s: %v", raw, cfg.ViewerSessionTTL, err)
		} else {
			cfg.ViewerSessionTTL = ttl
		}
	}
	return cfg
}
