package middleware

import (
	"net/http"

	"github.com/CDavidSV/URL-shortener-api/internal/session"
	"github.com/gin-gonic/gin"
)

// TokenKey ключ токена сессии в контексте gin
const TokenKey = "session_token"

// RequireSession пускает дальше только запросы с cookie сессии.
// Без неё пользователь отправляется на страницу логина, как это делал
// обработчик NotAuthenticated в исходном приложении.
func RequireSession(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := store.Token(c.Request)
		if !ok {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		c.Set(TokenKey, token)
		c.Next()
	}
}

// SessionToken извлекает токен, положенный RequireSession в контекст.
func SessionToken(c *gin.Context) string {
	token, _ := c.Get(TokenKey)
	s, _ := token.(string)
	return s
}
