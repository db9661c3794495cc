package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/CDavidSV/URL-shortener-api/internal/middleware"
	"github.com/CDavidSV/URL-shortener-api/internal/session"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// TestRateLimiter_Middleware проверяет ограничение повторных отправок
func TestRateLimiter_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rl := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: 5,
		BurstSize:         5,
		CleanupInterval:   time.Minute,
	})

	router := gin.New()
	router.Use(rl.Middleware())
	router.POST("/login", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	// Первые 5 отправок проходят в пределах burst
	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/login", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	// Следующая отправка ограничивается
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/login", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

// TestRequireSession_NoCookie проверяет редирект на логин без cookie
func TestRequireSession_NoCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := session.NewStore("AT", false)

	router := gin.New()
	router.Use(middleware.RequireSession(store))
	router.GET("/", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

// TestRequireSession_WithCookie проверяет проброс токена в контекст
func TestRequireSession_WithCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := session.NewStore("AT", false)

	var gotToken string
	router := gin.New()
	router.Use(middleware.RequireSession(store))
	router.GET("/", func(c *gin.Context) {
		gotToken = middleware.SessionToken(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "AT", Value: "abc"})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "abc", gotToken)
}

// TestRequestLogger проверяет выставление request id
func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(middleware.RequestLogger(zap.NewNop()))
	router.GET("/", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	router.ServeHTTP(w, req)

	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
