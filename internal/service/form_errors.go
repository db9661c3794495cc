package service

import (
	"errors"
	"strings"

	"github.com/CDavidSV/URL-shortener-api/internal/apiclient"
	"github.com/CDavidSV/URL-shortener-api/internal/models"
)

// Сообщение для регистрации с синтаксически неверным email.
const invalidEmailMessage = "Invalid Email Address"

// LoginFormError строит состояние формы логина после неудачной отправки.
// Любая ошибка (отказ бэкенда, транспорт, парсинг) подсвечивает оба поля,
// текст ошибки показывается как есть.
func LoginFormError(err error) *models.FormError {
	return models.NewFormError(err.Error(), models.FieldUsername, models.FieldPassword)
}

// SignupFormError строит состояние формы регистрации после неудачной отправки.
// Поле выбирается по структурному code, если бэкенд его прислал, иначе
// по подстроке в detail. Ошибка, не указывающая на конкретное поле,
// всё равно показывается пользователю, но без подсветки.
func SignupFormError(err error) *models.FormError {
	if errors.Is(err, ErrInvalidEmail) {
		return models.NewFormError(invalidEmailMessage, models.FieldEmail)
	}

	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case apiclient.CodeEmailTaken:
			return models.NewFormError(apiErr.Detail, models.FieldEmail)
		case apiclient.CodeUsernameTaken:
			return models.NewFormError(apiErr.Detail, models.FieldUsername)
		}

		// Старый контракт: только свободный текст в detail
		detail := strings.ToLower(apiErr.Detail)
		switch {
		case strings.Contains(detail, "email"):
			return models.NewFormError(apiErr.Detail, models.FieldEmail)
		case strings.Contains(detail, "username"):
			return models.NewFormError(apiErr.Detail, models.FieldUsername)
		}

		return models.NewFormError(apiErr.Detail)
	}

	// Транспорт или парсинг: подсвечиваем оба значимых поля формы
	return models.NewFormError(err.Error(), models.FieldUsername, models.FieldEmail)
}
