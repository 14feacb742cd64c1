// Package utils содержит вспомогательные функции для хендлеров.
package utils

import (
	"github.com/aseptimu/tinylink/internal/app/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func LogRequest(c *gin.Context, logger *zap.SugaredLogger) {
	logger.Debugw("Endpoint called",
		"method", c.Request.Method,
		"path", c.FullPath(),
		"remote_addr", c.ClientIP(),
		"host", c.Request.Host,
		"request_id", c.GetString(middleware.RequestIDKey),
	)
}
