package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	AppName    = "Consigna"
	AppVersion = "1.0.0"
)

type Config struct {
	Addr       string
	CORSOrigin string
	LogLevel   string

	// Object store. StoreURL, when set, overrides the S3 settings with a
	// gocloud bucket URL (file:///path, mem://bucket) for local runs.
	StoreURL    string
	S3Endpoint  string
	S3Region    string
	S3KeyID     string
	S3KeySecret string
	S3Bucket    string

	// Mail transport
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string

	// Identity directory service
	DirectoryURL   string
	DirectoryToken string

	// Event reminder poller. EventsDBPath empty disables the poller.
	EventsDBPath     string
	ReminderInterval time.Duration
	ReminderWindow   time.Duration
}

func Load() Config {
	// A missing .env file is fine; the environment wins either way.
	_ = godotenv.Load()

	return Config{
		Addr:       getenv("CONSIGNA_ADDR", ":3000"),
		CORSOrigin: getenv("CONSIGNA_CORS_ORIGIN", "*"),
		LogLevel:   getenv("CONSIGNA_LOG_LEVEL", "info"),

		StoreURL:    os.Getenv("CONSIGNA_STORE_URL"),
		S3Endpoint:  os.Getenv("S3_ENDPOINT"),
		S3Region:    getenv("S3_REGION", "us-east-1"),
		S3KeyID:     os.Getenv("S3_ACCESS_KEY_ID"),
		S3KeySecret: os.Getenv("S3_SECRET_ACCESS_KEY"),
		S3Bucket:    os.Getenv("S3_BUCKET"),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     getenvInt("SMTP_PORT", 587),
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:     os.Getenv("SMTP_FROM"),

		DirectoryURL:   os.Getenv("DIRECTORY_URL"),
		DirectoryToken: os.Getenv("DIRECTORY_TOKEN"),

		EventsDBPath:     os.Getenv("CONSIGNA_EVENTS_DB"),
		ReminderInterval: getenvDuration("CONSIGNA_REMINDER_INTERVAL", time.Minute),
		ReminderWindow:   getenvDuration("CONSIGNA_REMINDER_WINDOW", 5*time.Minute),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}
