// Package validation содержит чистые предикаты для проверки полей форм.
package validation

import "regexp"

// Паттерны совпадают с тем, что проверяет бэкенд.
var (
	emailPattern    = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9-]+(?:\\.[a-zA-Z0-9-]+)*$")
	backHalfPattern = regexp.MustCompile(`^[a-zA-Z0-9_]{1,255}$`)
)

// IsValidEmail проверяет синтаксис email адреса.
func IsValidEmail(value string) bool {
	return emailPattern.MatchString(value)
}

// IsValidBackHalf проверяет короткий идентификатор ссылки:
// буквы, цифры и подчёркивание, от 1 до 255 символов.
func IsValidBackHalf(value string) bool {
	return backHalfPattern.MatchString(value)
}
