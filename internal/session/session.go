// Package session хранит токен аутентификации в сессионной cookie браузера.
package session

import "net/http"

// DefaultCookieName имя cookie по умолчанию.
const DefaultCookieName = "AT"

// Store обёртка над сессионной cookie с токеном. Токен непрозрачный:
// store его не разбирает и не валидирует, только сохраняет и удаляет.
type Store struct {
	cookieName string
	secure     bool
}

// NewStore создаёт store. При пустом имени используется DefaultCookieName.
func NewStore(cookieName string, secure bool) *Store {
	if cookieName == "" {
		cookieName = DefaultCookieName
	}
	return &Store{cookieName: cookieName, secure: secure}
}

// Save записывает токен в сессионную cookie. MaxAge не задаётся,
// поэтому cookie переживает навигацию, но не закрытие браузера.
func (s *Store) Save(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.cookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear удаляет cookie с токеном.
func (s *Store) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Token возвращает токен из запроса. Второе значение false,
// если cookie нет или она пустая.
func (s *Store) Token(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(s.cookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}
