package middleware

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGzipMiddleware_CompressesResponse(t *testing.T) {
	r := gin.New()
	r.Use(GzipMiddleware())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "hello world")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")

	r.ServeHTTP(w, req)
	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, "gzip", res.Header.Get("Content-Encoding"))

	gz, err := gzip.NewReader(res.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(gz)
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(body))
}

func TestGzipMiddleware_PlainWhenNotAccepted(t *testing.T) {
	r := gin.New()
	r.Use(GzipMiddleware())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "hello world")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Empty(t, w.Header().Get("Content-Encoding"))
	assert.Equal(t, "hello world", w.Body.String())
}

func TestGzipMiddleware_DecompressesRequest(t *testing.T) {
	r := gin.New()
	r.Use(GzipMiddleware())
	r.POST("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.PostForm("url"))
	})

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write([]byte("url=https%3A%2F%2Fexample.com"))
	require.NoError(t, err)
	require.NoError(t, gz.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Encoding", "gzip")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://example.com", w.Body.String())
}

func TestGzipMiddleware_InvalidRequestBody(t *testing.T) {
	r := gin.New()
	r.Use(GzipMiddleware())
	r.POST("/", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid Gzip content"}`, w.Body.String())
}

func TestGzipMiddleware_KeepsEncodedResponse(t *testing.T) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write([]byte("already compressed"))
	require.NoError(t, err)
	require.NoError(t, gz.Close())

	r := gin.New()
	r.Use(GzipMiddleware())
	r.GET("/", func(c *gin.Context) {
		c.Header("Content-Encoding", "gzip")
		c.Data(http.StatusOK, "text/plain", buf.Bytes())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	reader, err := gzip.NewReader(w.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "already compressed", string(body))
}

func TestGzipMiddleware_NoBodyNoEncoding(t *testing.T) {
	r := gin.New()
	r.Use(GzipMiddleware())
	r.GET("/", func(c *gin.Context) {
		c.AbortWithStatus(http.StatusNotFound)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, w.Header().Get("Content-Encoding"))
	assert.Zero(t, w.Body.Len())
}
