package service

import (
	"context"
	"errors"

	"github.com/CDavidSV/URL-shortener-api/internal/apiclient"
	"github.com/CDavidSV/URL-shortener-api/internal/models"
	"github.com/CDavidSV/URL-shortener-api/internal/validation"
	"go.uber.org/zap"
)

// Ошибки сервиса ссылок
var (
	ErrURLNotFound     = errors.New("short url not found")
	ErrInvalidBackHalf = errors.New("back half must be alphanumeric between 1 and 255 characters")
)

// URLService управляет коллекцией коротких ссылок пользователя.
// Коллекция всегда запрашивается у бэкенда целиком, локально не хранится.
type URLService interface {
	// ListURLs возвращает коллекцию в порядке, заданном бэкендом.
	ListURLs(ctx context.Context, token string) ([]models.ShortURLRecord, error)
	// ResolveURL находит запись по back half в живой коллекции.
	// Действия edit/delete адресуются этим ключом, а не позицией,
	// поэтому параллельный refetch не может подменить цель действия.
	ResolveURL(ctx context.Context, token, backHalf string) (*models.ShortURLRecord, error)
	// CreateURL создаёт короткую ссылку. Пустой back half означает,
	// что идентификатор сгенерирует бэкенд.
	CreateURL(ctx context.Context, token string, input models.CreateURLInput) error
	// DeleteURL удаляет ссылку по back half.
	DeleteURL(ctx context.Context, token, backHalf string) error
	// ReplaceURL заменяет запись: у бэкенда нет update, поэтому
	// старая ссылка удаляется и создаётся новая.
	ReplaceURL(ctx context.Context, token, backHalf string, input models.CreateURLInput) error
}

// urlService реализация URLService поверх API клиента.
type urlService struct {
	api    apiclient.Client
	logger *zap.Logger
}

// NewURLService создаёт новый экземпляр сервиса.
func NewURLService(api apiclient.Client, logger *zap.Logger) URLService {
	return &urlService{
		api:    api,
		logger: logger,
	}
}

func (s *urlService) ListURLs(ctx context.Context, token string) ([]models.ShortURLRecord, error) {
	urls, err := s.api.FetchURLs(ctx, token)
	if err != nil {
		s.logger.Warn("failed to fetch urls", zap.Error(err))
		return nil, err
	}
	return urls, nil
}

func (s *urlService) ResolveURL(ctx context.Context, token, backHalf string) (*models.ShortURLRecord, error) {
	urls, err := s.api.FetchURLs(ctx, token)
	if err != nil {
		return nil, err
	}

	for i := range urls {
		if urls[i].BackHalf == backHalf {
			return &urls[i], nil
		}
	}

	return nil, ErrURLNotFound
}

func (s *urlService) CreateURL(ctx context.Context, token string, input models.CreateURLInput) error {
	// Пустой back half отдаём бэкенду, он сгенерирует случайный
	if input.BackHalf != "" && !validation.IsValidBackHalf(input.BackHalf) {
		return ErrInvalidBackHalf
	}

	if err := s.api.CreateURL(ctx, token, input); err != nil {
		s.logger.Warn("failed to create url", zap.String("back_half", input.BackHalf), zap.Error(err))
		return err
	}

	s.logger.Info("short url created", zap.String("back_half", input.BackHalf))
	return nil
}

func (s *urlService) DeleteURL(ctx context.Context, token, backHalf string) error {
	if err := s.api.DeleteURL(ctx, token, backHalf); err != nil {
		s.logger.Warn("failed to delete url", zap.String("back_half", backHalf), zap.Error(err))
		return err
	}

	s.logger.Info("short url deleted", zap.String("back_half", backHalf))
	return nil
}

func (s *urlService) ReplaceURL(ctx context.Context, token, backHalf string, input models.CreateURLInput) error {
	if input.BackHalf != "" && !validation.IsValidBackHalf(input.BackHalf) {
		return ErrInvalidBackHalf
	}

	// Проверяем, что цель ещё существует, прежде чем удалять
	if _, err := s.ResolveURL(ctx, token, backHalf); err != nil {
		return err
	}

	if err := s.api.DeleteURL(ctx, token, backHalf); err != nil {
		return err
	}

	if err := s.api.CreateURL(ctx, token, input); err != nil {
		// Старая запись уже удалена, восстановить её не можем
		s.logger.Error("url replace lost the original record",
			zap.String("back_half", backHalf),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("short url replaced",
		zap.String("old_back_half", backHalf),
		zap.String("new_back_half", input.BackHalf),
	)
	return nil
}
