package models

// Идентификаторы полей форм, используются для подсветки ошибок.
const (
	FieldUsername = "username"
	FieldPassword = "password"
	FieldEmail    = "email"
)

// FormError состояние последней неудачной отправки формы.
// Полностью перезаписывается при каждой новой попытке, не мержится.
type FormError struct {
	Message       string
	InvalidFields map[string]bool
}

// NewFormError создаёт FormError с отмеченными полями.
func NewFormError(message string, fields ...string) *FormError {
	fe := &FormError{
		Message:       message,
		InvalidFields: make(map[string]bool, len(fields)),
	}
	for _, f := range fields {
		fe.InvalidFields[f] = true
	}
	return fe
}

// Invalid сообщает, помечено ли поле как невалидное.
// Безопасен для nil, чтобы шаблоны могли вызывать его без проверок.
func (fe *FormError) Invalid(field string) bool {
	if fe == nil {
		return false
	}
	return fe.InvalidFields[field]
}
