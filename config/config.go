package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	LogLevel    string

	SheetCSVURL     string
	RosterCSVURL    string
	EventCapacity   int
	EventLocation   *time.Location
	PhoneRegion     string
	AllowedOrigins  []string
	RequestTimeout  time.Duration
	SendConcurrency int

	SMS   SMSConfig
	Email EmailConfig
}

// SMSConfig selects and configures the outbound text message provider.
type SMSConfig struct {
	Provider            string
	AccountSID          string
	AuthToken           string
	MessagingServiceSID string
	FromNumber          string
}

// EmailConfig configures organizer notifications sent through SES.
type EmailConfig struct {
	Provider           string
	FromAddress        string
	FromName           string
	OrganizerAddress   string
	Region             string
	AccessKeyID        string
	SecretAccessKey    string
	InsecureSkipVerify bool
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// In production the process environment is authoritative and .env may not exist.
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:    env,
		Port:           getenv("PORT", "8080"),
		LogLevel:       getenv("LOG_LEVEL", "info"),
		SheetCSVURL:    os.Getenv("SHEET_CSV_URL"),
		RosterCSVURL:   os.Getenv("ROSTER_CSV_URL"),
		PhoneRegion:    getenv("PHONE_REGION", "US"),
		AllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		SMS: SMSConfig{
			Provider:            getenv("SMS_PROVIDER", "noop"),
			AccountSID:          os.Getenv("TWILIO_ACCOUNT_SID"),
			AuthToken:           os.Getenv("TWILIO_AUTH_TOKEN"),
			MessagingServiceSID: os.Getenv("TWILIO_MESSAGING_SERVICE_SID"),
			FromNumber:          os.Getenv("TWILIO_FROM_NUMBER"),
		},
		Email: EmailConfig{
			Provider:         getenv("EMAIL_PROVIDER", "noop"),
			FromAddress:      os.Getenv("EMAIL_FROM_ADDRESS"),
			FromName:         os.Getenv("EMAIL_FROM_NAME"),
			OrganizerAddress: os.Getenv("ORGANIZER_EMAIL"),
			Region:           getenv("AWS_REGION", "us-east-1"),
			AccessKeyID:      os.Getenv("AWS_ACCESS_KEY_ID"),
			SecretAccessKey:  os.Getenv("AWS_SECRET_ACCESS_KEY"),
		},
	}

	var err error
	if cfg.EventCapacity, err = getInt("EVENT_CAPACITY", 0); err != nil {
		return nil, err
	}
	if cfg.SendConcurrency, err = getInt("SEND_CONCURRENCY", 8); err != nil {
		return nil, err
	}
	if cfg.SendConcurrency < 1 {
		return nil, fmt.Errorf("SEND_CONCURRENCY must be at least 1, got %d", cfg.SendConcurrency)
	}
	if cfg.RequestTimeout, err = getDuration("REQUEST_TIMEOUT", 30*time.Second); err != nil {
		return nil, err
	}
	if s := os.Getenv("SES_INSECURE_SKIP_VERIFY"); s != "" {
		if cfg.Email.InsecureSkipVerify, err = strconv.ParseBool(s); err != nil {
			return nil, fmt.Errorf("invalid SES_INSECURE_SKIP_VERIFY %q: %w", s, err)
		}
	}

	tz := getenv("EVENT_TIMEZONE", "America/New_York")
	if cfg.EventLocation, err = time.LoadLocation(tz); err != nil {
		return nil, fmt.Errorf("invalid EVENT_TIMEZONE %q: %w", tz, err)
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	s := strings.TrimSpace(os.Getenv(key))
	if s == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, s, err)
	}
	return v, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	s := strings.TrimSpace(os.Getenv(key))
	if s == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, s, err)
	}
	return d, nil
}

// splitList splits a comma-separated value, dropping empty entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
