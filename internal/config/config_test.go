package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"consigna/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := config.Load()

	require.Equal(t, ":3000", cfg.Addr)
	require.Equal(t, "*", cfg.CORSOrigin)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, 587, cfg.SMTPPort)
	require.Equal(t, time.Minute, cfg.ReminderInterval)
	require.Equal(t, 5*time.Minute, cfg.ReminderWindow)
	require.Empty(t, cfg.EventsDBPath)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("CONSIGNA_ADDR", ":8081")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("CONSIGNA_REMINDER_INTERVAL", "30s")
	t.Setenv("CONSIGNA_REMINDER_WINDOW", "10m")
	t.Setenv("S3_BUCKET", "files")

	cfg := config.Load()
	require.Equal(t, ":8081", cfg.Addr)
	require.Equal(t, 2525, cfg.SMTPPort)
	require.Equal(t, 30*time.Second, cfg.ReminderInterval)
	require.Equal(t, 10*time.Minute, cfg.ReminderWindow)
	require.Equal(t, "files", cfg.S3Bucket)
}

func TestLoad_BadDurationFallsBack(t *testing.T) {
	t.Setenv("CONSIGNA_REMINDER_INTERVAL", "often")

	cfg := config.Load()
	require.Equal(t, time.Minute, cfg.ReminderInterval)
}
