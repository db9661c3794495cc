package handler

import (
	"errors"
	"net/http"

	"github.com/CDavidSV/URL-shortener-api/internal/apiclient"
	"github.com/CDavidSV/URL-shortener-api/internal/models"
	"github.com/CDavidSV/URL-shortener-api/internal/service"
)

// Данные страниц. Поле FormError всегда типизировано, чтобы шаблоны
// могли звать .FormError.Invalid без проверок на nil.
type loginPage struct {
	FormError *models.FormError
	Username  string
}

type signupPage struct {
	FormError *models.FormError
	Form      models.SignupRequest
}

type dashboardPage struct {
	FormError *models.FormError
	URLs      []urlCard
}

type editPage struct {
	FormError *models.FormError
	URL       urlCard
}

type errorPage struct {
	Message string
}

// urlCard карточка одной короткой ссылки на дашборде.
type urlCard struct {
	Title        string
	OriginalURL  string
	BackHalf     string
	ShortURL     string
	TimesVisited int
}

// buildCards собирает карточки в порядке коллекции. Позиция карточки
// попадает в разметку как data-index, но действия адресуются по back half.
func buildCards(urls []models.ShortURLRecord, shortBase string) []urlCard {
	cards := make([]urlCard, 0, len(urls))
	for _, u := range urls {
		cards = append(cards, urlCard{
			Title:        u.Title,
			OriginalURL:  u.OriginalURL,
			BackHalf:     u.BackHalf,
			ShortURL:     shortBase + "/" + u.BackHalf,
			TimesVisited: u.TimesVisited,
		})
	}
	return cards
}

// errorStatus подбирает HTTP статус для страницы с ошибкой.
func errorStatus(err error) int {
	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	switch {
	case errors.Is(err, service.ErrInvalidEmail), errors.Is(err, service.ErrInvalidBackHalf):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrURLNotFound):
		return http.StatusNotFound
	}
	return http.StatusBadGateway
}
