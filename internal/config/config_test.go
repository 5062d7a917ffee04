package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "por", cfg.OCR.Language)
	assert.Equal(t, 2, cfg.OCR.MaxConcurrent)
	assert.Equal(t, 30, cfg.Telegram.PollTimeout)
	assert.False(t, cfg.History.Enabled)
	assert.Equal(t, "json", cfg.Logger.Format)
}

func TestLoad_MissingTokenFails(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_TelegramDisabledWithoutToken(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")
	t.Setenv("TELEGRAM_ENABLED", "false")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.False(t, cfg.Telegram.Enabled)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("OCR_LANGUAGE", "eng")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("HISTORY_ENABLED", "true")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "eng", cfg.OCR.Language)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.True(t, cfg.History.Enabled)
}

func TestDatabaseConfigDSN(t *testing.T) {
	d := DatabaseConfig{
		Host: "db", Port: 5432, User: "bot", Password: "secret",
		Name: "coordbot", SSLMode: "disable",
	}
	assert.Equal(t, "postgres://bot:secret@db:5432/coordbot?sslmode=disable", d.DSN())
}
