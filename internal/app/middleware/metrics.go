package middleware

import (
	"strconv"
	"time"

	"github.com/aseptimu/tinylink/internal/app/metrics"
	"github.com/gin-gonic/gin"
)

// MetricsMiddleware считает запросы и их длительность по шаблону маршрута.
// Запросы мимо всех маршрутов попадают под метку "unmatched".
func MetricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method

		m.RequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
		m.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
