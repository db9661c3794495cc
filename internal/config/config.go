package config

import (
	"errors"
	"io/fs"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	API       APIConfig
	Cookie    CookieConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Port     string
	LogLevel string
}

type APIConfig struct {
	// BaseURL адрес бэкенда сокращателя (auth + urls API)
	BaseURL string
}

type CookieConfig struct {
	Name   string
	Secure bool
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	BurstSize         int
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// .env опционален: конфиг может прийти целиком из окружения
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	var cfg Config
	cfg.App.Port = viper.GetString("APP_PORT")
	if cfg.App.Port == "" {
		cfg.App.Port = "8080"
	}
	cfg.App.LogLevel = viper.GetString("LOG_LEVEL")
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = "info"
	}

	cfg.API.BaseURL = viper.GetString("API_BASE_URL")
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = "http://localhost:8000"
	}

	cfg.Cookie.Name = viper.GetString("COOKIE_NAME")
	if cfg.Cookie.Name == "" {
		cfg.Cookie.Name = "AT"
	}
	cfg.Cookie.Secure = viper.GetBool("COOKIE_SECURE")

	// Rate limit для форм логина и регистрации
	cfg.RateLimit.RequestsPerSecond = viper.GetFloat64("RATE_LIMIT_RPS")
	if cfg.RateLimit.RequestsPerSecond == 0 {
		cfg.RateLimit.RequestsPerSecond = 5
	}
	cfg.RateLimit.BurstSize = viper.GetInt("RATE_LIMIT_BURST")
	if cfg.RateLimit.BurstSize == 0 {
		cfg.RateLimit.BurstSize = 10
	}

	return &cfg, nil
}
