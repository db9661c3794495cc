package handler

import (
	"html/template"

	"github.com/CDavidSV/URL-shortener-api/internal/middleware"
	"github.com/CDavidSV/URL-shortener-api/internal/service"
	"github.com/CDavidSV/URL-shortener-api/internal/session"
	"github.com/CDavidSV/URL-shortener-api/web"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func NewRouter(
	authService service.AuthService,
	urlService service.URLService,
	store *session.Store,
	rateLimiter *middleware.RateLimiter,
	shortBase string,
	logger *zap.Logger,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	// Middleware для логгирования с request id
	router.Use(middleware.RequestLogger(logger))

	// Встроенные шаблоны страниц
	tmpl := template.Must(template.ParseFS(web.Templates, "templates/*.html"))
	router.SetHTMLTemplate(tmpl)

	authHandler := NewAuthHandler(authService, store, logger)
	urlHandler := NewURLHandler(urlService, store, shortBase, logger)

	// Формы аутентификации. Rate limiter только на отправку:
	// он закрывает повторные сабмиты, пока первый запрос в полёте.
	router.GET("/login", authHandler.ShowLogin)
	router.GET("/signup", authHandler.ShowSignup)
	router.POST("/login", rateLimiter.Middleware(), authHandler.Login)
	router.POST("/signup", rateLimiter.Middleware(), authHandler.Signup)
	router.GET("/logout", authHandler.Logout)

	// Всё остальное требует cookie сессии
	authed := router.Group("/", middleware.RequireSession(store))
	{
		authed.GET("", urlHandler.Dashboard)
		authed.POST("urls", urlHandler.Create)
		authed.GET("urls/:backHalf/edit", urlHandler.EditForm)
		authed.POST("urls/:backHalf/edit", urlHandler.Update)
		authed.POST("urls/:backHalf/delete", urlHandler.Delete)
	}

	return router
}
