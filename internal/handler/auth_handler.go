package handler

import (
	"net/http"

	"github.com/CDavidSV/URL-shortener-api/internal/models"
	"github.com/CDavidSV/URL-shortener-api/internal/service"
	"github.com/CDavidSV/URL-shortener-api/internal/session"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler обслуживает формы логина и регистрации.
type AuthHandler struct {
	authService service.AuthService
	store       *session.Store
	logger      *zap.Logger
}

// NewAuthHandler создаёт новый обработчик аутентификации.
func NewAuthHandler(authService service.AuthService, store *session.Store, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		store:       store,
		logger:      logger,
	}
}

// ShowLogin отдаёт пустую форму логина.
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", loginPage{})
}

// ShowSignup отдаёт пустую форму регистрации.
func (h *AuthHandler) ShowSignup(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.html", signupPage{})
}

// Login обрабатывает отправку формы логина. Успех: токен в сессионной
// cookie и редирект на корень. Неудача: та же форма с текстом ошибки и
// подсвеченными полями, состояние прошлой попытки полностью затирается.
func (h *AuthHandler) Login(c *gin.Context) {
	var creds models.Credentials
	if err := c.ShouldBind(&creds); err != nil {
		c.HTML(http.StatusBadRequest, "login.html", loginPage{
			FormError: service.LoginFormError(err),
		})
		return
	}

	token, err := h.authService.Login(c.Request.Context(), creds)
	if err != nil {
		c.HTML(errorStatus(err), "login.html", loginPage{
			FormError: service.LoginFormError(err),
			Username:  creds.Username,
		})
		return
	}

	h.store.Save(c.Writer, token)
	c.Redirect(http.StatusSeeOther, "/")
}

// Signup обрабатывает отправку формы регистрации.
func (h *AuthHandler) Signup(c *gin.Context) {
	var signup models.SignupRequest
	if err := c.ShouldBind(&signup); err != nil {
		c.HTML(http.StatusBadRequest, "signup.html", signupPage{
			FormError: service.SignupFormError(err),
		})
		return
	}

	token, err := h.authService.SignUp(c.Request.Context(), signup)
	if err != nil {
		c.HTML(errorStatus(err), "signup.html", signupPage{
			FormError: service.SignupFormError(err),
			Form:      signup,
		})
		return
	}

	h.store.Save(c.Writer, token)
	c.Redirect(http.StatusSeeOther, "/")
}

// Logout стирает cookie сессии и возвращает на форму логина.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.store.Clear(c.Writer)
	c.Redirect(http.StatusSeeOther, "/login")
}
