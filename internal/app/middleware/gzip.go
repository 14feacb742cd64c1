package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// gzipWriter включает сжатие только при первой записи тела: ответ без тела
// уходит как есть, а ответ, которому хендлер уже выставил Content-Encoding, не трогается.
type gzipWriter struct {
	gin.ResponseWriter
	gz      *gzip.Writer
	decided bool
}

func (g *gzipWriter) start() {
	if g.decided {
		return
	}
	g.decided = true

	h := g.ResponseWriter.Header()
	if h.Get("Content-Encoding") != "" {
		return
	}
	h.Set("Content-Encoding", "gzip")
	h.Add("Vary", "Accept-Encoding")
	h.Del("Content-Length")
	g.gz = gzip.NewWriter(g.ResponseWriter)
}

func (g *gzipWriter) Write(data []byte) (int, error) {
	g.start()
	if g.gz == nil {
		return g.ResponseWriter.Write(data)
	}
	return g.gz.Write(data)
}

func (g *gzipWriter) WriteString(s string) (int, error) {
	return g.Write([]byte(s))
}

func (g *gzipWriter) close() error {
	if g.gz == nil {
		return nil
	}
	return g.gz.Close()
}

func acceptsGzip(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept-Encoding"), "gzip")
}

// GzipMiddleware распаковывает тело запроса с Content-Encoding: gzip
// и сжимает тело ответа, если клиент прислал Accept-Encoding: gzip.
func GzipMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Content-Encoding") == "gzip" {
			body, err := gzip.NewReader(c.Request.Body)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid Gzip content"})
				return
			}
			defer body.Close()
			c.Request.Body = io.NopCloser(body)
			c.Request.Header.Del("Content-Encoding")
			c.Request.ContentLength = -1
		}

		if !acceptsGzip(c.Request) {
			c.Next()
			return
		}

		gw := &gzipWriter{ResponseWriter: c.Writer}
		c.Writer = gw
		defer gw.close()

		c.Next()
	}
}
