package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Telegram TelegramConfig
	OCR      OCRConfig
	Database DatabaseConfig
	History  HistoryConfig
	Logger   LoggerConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type TelegramConfig struct {
	Enabled     bool
	Token       string
	PollTimeout int // long-poll timeout in seconds
	Debug       bool
}

type OCRConfig struct {
	Language      string
	PageSegMode   int
	MaxConcurrent int
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type HistoryConfig struct {
	Enabled bool
}

type LoggerConfig struct {
	Level  string
	Format string
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("TELEGRAM_ENABLED", true)
	v.SetDefault("BOT_TOKEN", "")
	v.SetDefault("TELEGRAM_POLL_TIMEOUT", 30)
	v.SetDefault("TELEGRAM_DEBUG", false)
	v.SetDefault("OCR_LANGUAGE", "por")
	v.SetDefault("OCR_PAGE_SEG_MODE", 3) // fully automatic segmentation
	v.SetDefault("OCR_MAX_CONCURRENT", 2)
	v.SetDefault("DATABASE_HOST", "localhost")
	v.SetDefault("DATABASE_PORT", 5432)
	v.SetDefault("DATABASE_USER", "postgres")
	v.SetDefault("DATABASE_PASSWORD", "postgres")
	v.SetDefault("DATABASE_NAME", "coordbot")
	v.SetDefault("DATABASE_SSL_MODE", "disable")
	v.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	v.SetDefault("DATABASE_MAX_IDLE_CONNS", 2)
	v.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")
	v.SetDefault("HISTORY_ENABLED", false)
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")

	// Env
	v.AutomaticEnv()

	lifetime, err := time.ParseDuration(v.GetString("DATABASE_CONN_MAX_LIFETIME"))
	if err != nil {
		lifetime = 30 * time.Minute
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("SERVER_HOST"),
			Port: v.GetInt("SERVER_PORT"),
		},
		Telegram: TelegramConfig{
			Enabled:     v.GetBool("TELEGRAM_ENABLED"),
			Token:       v.GetString("BOT_TOKEN"),
			PollTimeout: v.GetInt("TELEGRAM_POLL_TIMEOUT"),
			Debug:       v.GetBool("TELEGRAM_DEBUG"),
		},
		OCR: OCRConfig{
			Language:      v.GetString("OCR_LANGUAGE"),
			PageSegMode:   v.GetInt("OCR_PAGE_SEG_MODE"),
			MaxConcurrent: v.GetInt("OCR_MAX_CONCURRENT"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DATABASE_HOST"),
			Port:            v.GetInt("DATABASE_PORT"),
			User:            v.GetString("DATABASE_USER"),
			Password:        v.GetString("DATABASE_PASSWORD"),
			Name:            v.GetString("DATABASE_NAME"),
			SSLMode:         v.GetString("DATABASE_SSL_MODE"),
			MaxOpenConns:    v.GetInt("DATABASE_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DATABASE_MAX_IDLE_CONNS"),
			ConnMaxLifetime: lifetime,
		},
		History: HistoryConfig{
			Enabled: v.GetBool("HISTORY_ENABLED"),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
	}

	if cfg.Telegram.Enabled && cfg.Telegram.Token == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required when the telegram adapter is enabled")
	}

	return cfg, nil
}
