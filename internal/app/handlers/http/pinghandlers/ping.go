// Package pinghandlers содержит HTTP-хендлер проверки доступности хранилища.
package pinghandlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pinger описывает ресурс, который умеет отвечать на «пинг» (например, хранилище ссылок).
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingHandler обрабатывает HTTP-запросы /ping, проверяя Pinger.
type PingHandler struct {
	store Pinger
}

// NewPingHandler создаёт новый PingHandler с переданным Pinger.
func NewPingHandler(store Pinger) *PingHandler {
	return &PingHandler{store}
}

// Ping обрабатывает GET /ping.
// При ошибке пинга — 500, иначе 200 OK.
func (h *PingHandler) Ping(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusOK)
}
