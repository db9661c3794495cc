package service

import (
	"context"
	"errors"

	"github.com/CDavidSV/URL-shortener-api/internal/apiclient"
	"github.com/CDavidSV/URL-shortener-api/internal/models"
	"github.com/CDavidSV/URL-shortener-api/internal/validation"
	"go.uber.org/zap"
)

// Ошибки сервиса аутентификации
var (
	// ErrInvalidEmail регистрация отклонена до обращения к API:
	// email не проходит синтаксическую проверку.
	ErrInvalidEmail = errors.New("invalid email address")
)

// AuthService управляет логином и регистрацией.
type AuthService interface {
	// Login проверяет учётные данные и возвращает токен сессии.
	Login(ctx context.Context, creds models.Credentials) (string, error)
	// SignUp создаёт аккаунт и возвращает токен сессии.
	// Невалидный email блокирует отправку: сетевой запрос не делается.
	SignUp(ctx context.Context, signup models.SignupRequest) (string, error)
}

// authService реализация AuthService поверх API клиента.
type authService struct {
	api    apiclient.Client
	logger *zap.Logger
}

// NewAuthService создаёт новый экземпляр сервиса.
func NewAuthService(api apiclient.Client, logger *zap.Logger) AuthService {
	return &authService{
		api:    api,
		logger: logger,
	}
}

// Login выполняет форму логина целиком: токен либо ошибка, без ретраев.
func (s *authService) Login(ctx context.Context, creds models.Credentials) (string, error) {
	token, err := s.api.Login(ctx, creds)
	if err != nil {
		s.logger.Warn("login failed", zap.String("username", creds.Username), zap.Error(err))
		return "", err
	}

	s.logger.Info("user logged in", zap.String("username", creds.Username))
	return token, nil
}

func (s *authService) SignUp(ctx context.Context, signup models.SignupRequest) (string, error) {
	if !validation.IsValidEmail(signup.Email) {
		return "", ErrInvalidEmail
	}

	token, err := s.api.CreateAccount(ctx, signup)
	if err != nil {
		s.logger.Warn("signup failed", zap.String("username", signup.Username), zap.Error(err))
		return "", err
	}

	s.logger.Info("user registered", zap.String("username", signup.Username))
	return token, nil
}
