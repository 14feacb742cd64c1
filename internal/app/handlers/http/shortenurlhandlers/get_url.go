package shortenurlhandlers

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/aseptimu/tinylink/internal/app/service"
	"github.com/aseptimu/tinylink/internal/app/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// URLGetter предоставляет методы получения URL для клиентского кода.
type URLGetter interface {
	Resolve(ctx context.Context, segment string) (string, error)
	Expand(ctx context.Context, shortURL string) (string, error)
	GetStats(ctx context.Context) (service.StatsDTO, error)
}

// RedirectRecorder учитывает исходы переходов по коротким ссылкам.
type RedirectRecorder interface {
	RecordRedirect(outcome string)
}

// Stats хранит данные о количестве сохраненных url
type Stats struct {
	Urls int `json:"urls"`
}

// GetURLHandler обрабатывает перенаправление на оригинальный URL и служебные запросы чтения.
type GetURLHandler struct {
	trustedSubnet string
	service       URLGetter
	recorder      RedirectRecorder
	logger        *zap.SugaredLogger
}

// NewGetURLHandler создаёт новый экземпляр GetURLHandler. recorder может быть nil.
func NewGetURLHandler(trustedSubnet string, service URLGetter, recorder RedirectRecorder, logger *zap.SugaredLogger) *GetURLHandler {
	return &GetURLHandler{trustedSubnet: trustedSubnet, service: service, recorder: recorder, logger: logger}
}

func (h *GetURLHandler) record(outcome string) {
	if h.recorder != nil {
		h.recorder.RecordRedirect(outcome)
	}
}

// GetURL перенаправляет клиента на оригинальный URL (307), либо отвечает 404.
func (h *GetURLHandler) GetURL(c *gin.Context) {
	utils.LogRequest(c, h.logger)

	key := c.Param("key")
	originalURL, err := h.service.Resolve(c.Request.Context(), key)
	switch {
	case errors.Is(err, service.ErrURLNotFound):
		h.record("not_found")
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	case err != nil:
		h.logger.Errorw("Failed to resolve key", "key", key, "error", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.record("found")
	c.Redirect(http.StatusTemporaryRedirect, originalURL)
}

// ExpandJSON обрабатывает POST /api/expand
// Принимает JSON {"short_url": "..."} и возвращает JSON {"url": "..."}.
func (h *GetURLHandler) ExpandJSON(c *gin.Context) {
	utils.LogRequest(c, h.logger)

	var req struct {
		ShortURL string `json:"short_url" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format"})
		return
	}

	originalURL, err := h.service.Expand(c.Request.Context(), req.ShortURL)
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case errors.Is(err, service.ErrURLNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	case err != nil:
		h.logger.Errorw("Failed to expand short URL", "shortURL", req.ShortURL, "error", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": originalURL})
}

// GetStats возвращает кол-во url. Доступен только из доверенной подсети.
func (h *GetURLHandler) GetStats(c *gin.Context) {
	utils.LogRequest(c, h.logger)

	if h.trustedSubnet == "" {
		c.AbortWithStatus(http.StatusForbidden)
		return
	}

	clientIP := net.ParseIP(c.GetHeader("X-Real-IP"))
	_, trustedNet, err := net.ParseCIDR(h.trustedSubnet)
	if err != nil {
		h.logger.Errorw("Invalid CIDR in config.TrustedSubnet", "value", h.trustedSubnet, "error", err)
		c.AbortWithStatus(http.StatusForbidden)
		return
	}

	if clientIP == nil || !trustedNet.Contains(clientIP) {
		c.AbortWithStatus(http.StatusForbidden)
		return
	}

	stats, err := h.service.GetStats(c.Request.Context())
	if err != nil {
		h.logger.Errorw("Failed to get stats", "error", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, Stats{Urls: stats.Urls})
}
