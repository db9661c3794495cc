package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/CDavidSV/URL-shortener-api/internal/apiclient"
	"github.com/CDavidSV/URL-shortener-api/internal/config"
	"github.com/CDavidSV/URL-shortener-api/internal/handler"
	"github.com/CDavidSV/URL-shortener-api/internal/middleware"
	"github.com/CDavidSV/URL-shortener-api/internal/service"
	"github.com/CDavidSV/URL-shortener-api/internal/session"
	"go.uber.org/zap"
)

func main() {
	// Загрузка конфига
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	logCfg := zap.NewProductionConfig()
	if lvl, err := zap.ParseAtomicLevel(cfg.App.LogLevel); err == nil {
		logCfg.Level = lvl
	}
	logger, err := logCfg.Build()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	// Клиент к API сокращателя
	api := apiclient.New(cfg.API.BaseURL, logger)
	logger.Info("API client configured", zap.String("base_url", cfg.API.BaseURL))

	// Хранилище токена сессии (cookie)
	store := session.NewStore(cfg.Cookie.Name, cfg.Cookie.Secure)

	// Инициализация сервисов
	authService := service.NewAuthService(api, logger)
	urlService := service.NewURLService(api, logger)

	// Rate limiter для форм
	rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
		BurstSize:         cfg.RateLimit.BurstSize,
		CleanupInterval:   time.Minute,
	})

	// Настройка роутера
	router := handler.NewRouter(authService, urlService, store, rateLimiter, cfg.API.BaseURL, logger)

	// Запуск сервера
	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Запуск в горутине
	go func() {
		logger.Info("Server starting", zap.String("port", cfg.App.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
