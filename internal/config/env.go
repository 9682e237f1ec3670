package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"tour-packages-backend/internal/utils"
)

type Env struct {
	AppAddr string
	GinMode string

	DBUser string
	DBPass string
	DBHost string
	DBName string

	SMTPHost  string
	SMTPPort  int
	SMTPUser  string
	SMTPPass  string
	EmailFrom string

	TwilioAccountSID     string
	TwilioAuthToken      string
	TwilioWhatsAppNumber string

	OwnerEmail  string
	OwnerPhone  string
	CountryCode string

	RedisAddr string
	JWTSecret string
}

// LoadEnv reads configuration from the environment. A local .env file is
// loaded first when present so development setups match production.
func LoadEnv() Env {
	_ = godotenv.Load()

	smtpPort := 587
	if v := strings.TrimSpace(os.Getenv("SMTP_PORT")); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			smtpPort = p
		}
	}

	return Env{
		AppAddr: envOr("APP_ADDR", ":8080"),
		GinMode: strings.TrimSpace(os.Getenv("GIN_MODE")),

		DBUser: envOr("DB_USER", "root"),
		DBPass: strings.TrimSpace(os.Getenv("DB_PASS")),
		DBHost: envOr("DB_HOST", "127.0.0.1:3306"),
		DBName: envOr("DB_NAME", "tour_packages"),

		SMTPHost:  strings.TrimSpace(os.Getenv("SMTP_HOST")),
		SMTPPort:  smtpPort,
		SMTPUser:  strings.TrimSpace(os.Getenv("SMTP_USER")),
		SMTPPass:  strings.TrimSpace(os.Getenv("SMTP_PASS")),
		EmailFrom: envOr("EMAIL_FROM", "noreply@tourpackages.com"),

		TwilioAccountSID:     strings.TrimSpace(os.Getenv("TWILIO_ACCOUNT_SID")),
		TwilioAuthToken:      strings.TrimSpace(os.Getenv("TWILIO_AUTH_TOKEN")),
		TwilioWhatsAppNumber: strings.TrimSpace(os.Getenv("TWILIO_WHATSAPP_NUMBER")),

		OwnerEmail:  strings.TrimSpace(os.Getenv("OWNER_EMAIL")),
		OwnerPhone:  strings.TrimSpace(os.Getenv("OWNER_PHONE")),
		CountryCode: envOr("PHONE_COUNTRY_CODE", "+91"),

		RedisAddr: strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		JWTSecret: envOr("JWT_SECRET", "super-secret-key-change-me"),
	}
}

func envOr(key, fallback string) string {
	return utils.FirstNonEmpty(os.Getenv(key), fallback)
}
