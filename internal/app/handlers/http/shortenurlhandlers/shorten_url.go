// Package shortenurlhandlers содержит HTTP-хендлеры для операций с короткими URL.
package shortenurlhandlers

import (
	"context"
	"net/http"

	"github.com/aseptimu/tinylink/internal/app/handlers/http/templates"
	"github.com/aseptimu/tinylink/internal/app/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// URLShortener сокращает URL и возвращает полную короткую ссылку для host.
type URLShortener interface {
	Shorten(ctx context.Context, originalURL, host string) (string, error)
	ShortenURLs(ctx context.Context, originalURLs []string, host string) ([]string, error)
}

// ShortenHandler обрабатывает создание коротких ссылок из HTML-формы и JSON.
type ShortenHandler struct {
	Service URLShortener
	logger  *zap.SugaredLogger
}

// NewShortenHandler создаёт новый ShortenHandler.
func NewShortenHandler(service URLShortener, logger *zap.SugaredLogger) *ShortenHandler {
	return &ShortenHandler{Service: service, logger: logger}
}

type shortenForm struct {
	URL string `form:"url" binding:"required"`
}

// HomePage обрабатывает GET / и отдаёт страницу с формой.
func (h *ShortenHandler) HomePage(c *gin.Context) {
	utils.LogRequest(c, h.logger)
	c.HTML(http.StatusOK, templates.Home, templates.HomeData{})
}

// URLCreatorForm обрабатывает POST / из формы с полем url
// и отдаёт страницу с короткой ссылкой, собранной из Host запроса.
func (h *ShortenHandler) URLCreatorForm(c *gin.Context) {
	utils.LogRequest(c, h.logger)

	var form shortenForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, templates.Home, templates.HomeData{Error: "Enter a URL to shorten"})
		return
	}

	shortURL, err := h.Service.Shorten(c.Request.Context(), form.URL, c.Request.Host)
	if err != nil {
		h.logger.Errorw("Failed to shorten URL", "url", form.URL, "error", err)
		c.String(http.StatusInternalServerError, "Failed to shorten URL")
		return
	}

	c.HTML(http.StatusOK, templates.KeyFilled, templates.KeyFilledData{
		BaseURL:      form.URL,
		ShortenedURL: shortURL,
	})
}

// URLCreatorJSON обрабатывает POST /api/shorten
// Принимает JSON {"url": "..."} и возвращает JSON {"result": "..."}.
func (h *ShortenHandler) URLCreatorJSON(c *gin.Context) {
	utils.LogRequest(c, h.logger)

	var req struct {
		URL string `json:"url" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format"})
		return
	}

	shortURL, err := h.Service.Shorten(c.Request.Context(), req.URL, c.Request.Host)
	if err != nil {
		h.logger.Errorw("Failed to shorten URL", "url", req.URL, "error", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"result": shortURL})
}

// URLRequest описывает элемент входного массива для batch-сокращения.
type URLRequest struct {
	CorrelationID string `json:"correlation_id"`
	OriginalURL   string `json:"original_url"`
}

// URLResponse описывает результат batch-сокращения для одного URL.
type URLResponse struct {
	CorrelationID string `json:"correlation_id"`
	ShortURL      string `json:"short_url"`
}

// URLCreatorBatch обрабатывает POST /api/shorten/batch
// Принимает JSON-массив URLRequest и возвращает JSON-массив URLResponse в том же порядке.
func (h *ShortenHandler) URLCreatorBatch(c *gin.Context) {
	utils.LogRequest(c, h.logger)

	var batch []URLRequest
	if err := c.ShouldBindJSON(&batch); err != nil || len(batch) == 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format"})
		return
	}

	originalURLs := make([]string, len(batch))
	for i, item := range batch {
		if item.OriginalURL == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "original_url is required"})
			return
		}
		originalURLs[i] = item.OriginalURL
	}

	shortURLs, err := h.Service.ShortenURLs(c.Request.Context(), originalURLs, c.Request.Host)
	if err != nil {
		h.logger.Errorw("Failed to shorten batch", "size", len(batch), "error", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to shorten URLs"})
		return
	}

	resp := make([]URLResponse, len(batch))
	for i, item := range batch {
		resp[i] = URLResponse{CorrelationID: item.CorrelationID, ShortURL: shortURLs[i]}
	}
	c.JSON(http.StatusCreated, resp)
}
