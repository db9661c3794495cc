package handler

import (
	"errors"
	"net/http"

	"github.com/CDavidSV/URL-shortener-api/internal/apiclient"
	"github.com/CDavidSV/URL-shortener-api/internal/middleware"
	"github.com/CDavidSV/URL-shortener-api/internal/models"
	"github.com/CDavidSV/URL-shortener-api/internal/service"
	"github.com/CDavidSV/URL-shortener-api/internal/session"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// URLHandler рендерит дашборд и обслуживает действия над ссылками.
type URLHandler struct {
	urlService service.URLService
	store      *session.Store
	shortBase  string
	logger     *zap.Logger
}

// NewURLHandler создаёт новый обработчик ссылок. shortBase это адрес
// бэкенда, на котором живут короткие ссылки.
func NewURLHandler(urlService service.URLService, store *session.Store, shortBase string, logger *zap.Logger) *URLHandler {
	return &URLHandler{
		urlService: urlService,
		store:      store,
		shortBase:  shortBase,
		logger:     logger,
	}
}

// Dashboard полный рендер списка ссылок: коллекция запрашивается заново
// целиком, страница строится с нуля. Никакое состояние прошлого рендера
// не переживает этот вызов.
func (h *URLHandler) Dashboard(c *gin.Context) {
	h.renderDashboard(c, nil)
}

// renderDashboard строит страницу дашборда, опционально с ошибкой
// последнего действия в .form-error.
func (h *URLHandler) renderDashboard(c *gin.Context, fe *models.FormError) {
	token := middleware.SessionToken(c)

	urls, err := h.urlService.ListURLs(c.Request.Context(), token)
	if err != nil {
		// Протухший токен: чистим сессию и отправляем на логин
		var apiErr *apiclient.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
			h.store.Clear(c.Writer)
			c.Redirect(http.StatusSeeOther, "/login")
			return
		}

		c.HTML(errorStatus(err), "error.html", errorPage{Message: err.Error()})
		return
	}

	status := http.StatusOK
	if fe != nil {
		status = http.StatusBadRequest
	}
	c.HTML(status, "dashboard.html", dashboardPage{
		FormError: fe,
		URLs:      buildCards(urls, h.shortBase),
	})
}

// Create обрабатывает форму создания короткой ссылки.
func (h *URLHandler) Create(c *gin.Context) {
	token := middleware.SessionToken(c)
	input := models.CreateURLInput{
		Title:       c.PostForm("title"),
		BackHalf:    c.PostForm("back_half"),
		OriginalURL: c.PostForm("original_url"),
	}

	if err := h.urlService.CreateURL(c.Request.Context(), token, input); err != nil {
		h.renderDashboard(c, models.NewFormError(err.Error()))
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

// Delete обрабатывает кнопку удаления. Цель действия задаётся ключом
// back half из разметки, а не позицией в списке.
func (h *URLHandler) Delete(c *gin.Context) {
	token := middleware.SessionToken(c)
	backHalf := c.Param("backHalf")

	if err := h.urlService.DeleteURL(c.Request.Context(), token, backHalf); err != nil {
		h.renderDashboard(c, models.NewFormError(err.Error()))
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

// EditForm отдаёт форму редактирования, находя запись в живой коллекции.
// Если запись уже исчезла, пользователь возвращается к списку.
func (h *URLHandler) EditForm(c *gin.Context) {
	token := middleware.SessionToken(c)
	backHalf := c.Param("backHalf")

	record, err := h.urlService.ResolveURL(c.Request.Context(), token, backHalf)
	if err != nil {
		if errors.Is(err, service.ErrURLNotFound) {
			c.Redirect(http.StatusSeeOther, "/")
			return
		}
		c.HTML(errorStatus(err), "error.html", errorPage{Message: err.Error()})
		return
	}

	cards := buildCards([]models.ShortURLRecord{*record}, h.shortBase)
	c.HTML(http.StatusOK, "edit.html", editPage{URL: cards[0]})
}

// Update сохраняет изменения записи.
func (h *URLHandler) Update(c *gin.Context) {
	token := middleware.SessionToken(c)
	backHalf := c.Param("backHalf")
	input := models.CreateURLInput{
		Title:       c.PostForm("title"),
		BackHalf:    c.PostForm("back_half"),
		OriginalURL: c.PostForm("original_url"),
	}

	if err := h.urlService.ReplaceURL(c.Request.Context(), token, backHalf, input); err != nil {
		if errors.Is(err, service.ErrURLNotFound) {
			c.Redirect(http.StatusSeeOther, "/")
			return
		}

		record, resolveErr := h.urlService.ResolveURL(c.Request.Context(), token, backHalf)
		if resolveErr != nil {
			c.HTML(errorStatus(err), "error.html", errorPage{Message: err.Error()})
			return
		}

		cards := buildCards([]models.ShortURLRecord{*record}, h.shortBase)
		c.HTML(errorStatus(err), "edit.html", editPage{
			FormError: models.NewFormError(err.Error()),
			URL:       cards[0],
		})
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}
