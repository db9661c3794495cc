package apiclient

// Коды ошибок, которые бэкенд может отдавать вместе с detail.
// Новый контракт: поле code, по которому фронтенд выбирает подсвечиваемое
// поле формы. Старые ответы содержат только detail.
const (
	CodeEmailTaken    = "email_taken"
	CodeUsernameTaken = "username_taken"
)

// APIError ошибка бэкенда с конвертом {detail, code}.
// Detail это свободный текст для пользователя, показывается как есть.
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Detail     string `json:"detail"`
}

func (e *APIError) Error() string {
	return e.Detail
}
