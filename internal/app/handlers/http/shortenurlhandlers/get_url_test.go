package shortenurlhandlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestHandlerGetter(svc URLGetter, subnet string, rec RedirectRecorder) *GetURLHandler {
	return NewGetURLHandler(subnet, svc, rec, zap.NewNop().Sugar())
}

func TestGetURL(t *testing.T) {
	rec := countingRecorder{}
	handler := newTestHandlerGetter(&mockService{}, "", rec)
	router := gin.New()
	router.GET("/:key", handler.GetURL)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/abcde", nil))

	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "http://example.com", w.Header().Get("Location"))
	assert.Equal(t, 1, rec["found"])
}

func TestGetURL_NotFound(t *testing.T) {
	rec := countingRecorder{}
	handler := newTestHandlerGetter(&mockService{}, "", rec)
	router := gin.New()
	router.GET("/:key", handler.GetURL)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/zzzzz", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, w.Header().Get("Location"))
	assert.Equal(t, 1, rec["not_found"])
}

func TestGetURL_InternalError(t *testing.T) {
	handler := newTestHandlerGetter(&mockService{fail: true}, "", nil)
	router := gin.New()
	router.GET("/:key", handler.GetURL)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/abcde", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestExpandJSON(t *testing.T) {
	handler := newTestHandlerGetter(&mockService{}, "", nil)
	router := gin.New()
	router.POST("/api/expand", handler.ExpandJSON)

	tests := []struct {
		name     string
		body     string
		wantCode int
		wantBody string
	}{
		{name: "known", body: `{"short_url":"short.ly/abcde"}`, wantCode: http.StatusOK, wantBody: `{"url":"http://example.com"}`},
		{name: "unknown", body: `{"short_url":"short.ly/zzzzz"}`, wantCode: http.StatusNotFound},
		{name: "no slash", body: `{"short_url":"abcde"}`, wantCode: http.StatusBadRequest},
		{name: "bad json", body: `[`, wantCode: http.StatusBadRequest, wantBody: `{"error":"Invalid JSON format"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/api/expand", strings.NewReader(tt.body))
			r.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, r)

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestGetStats(t *testing.T) {
	tests := []struct {
		name     string
		subnet   string
		realIP   string
		fail     bool
		wantCode int
	}{
		{name: "no subnet configured", subnet: "", realIP: "10.0.0.1", wantCode: http.StatusForbidden},
		{name: "bad subnet", subnet: "not-a-cidr", realIP: "10.0.0.1", wantCode: http.StatusForbidden},
		{name: "outside subnet", subnet: "10.0.0.0/8", realIP: "192.168.1.1", wantCode: http.StatusForbidden},
		{name: "missing header", subnet: "10.0.0.0/8", wantCode: http.StatusForbidden},
		{name: "trusted", subnet: "10.0.0.0/8", realIP: "10.1.2.3", wantCode: http.StatusOK},
		{name: "service error", subnet: "10.0.0.0/8", realIP: "10.1.2.3", fail: true, wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTestHandlerGetter(&mockService{fail: tt.fail}, tt.subnet, nil)
			router := gin.New()
			router.GET("/api/internal/stats", handler.GetStats)

			r := httptest.NewRequest(http.MethodGet, "/api/internal/stats", nil)
			if tt.realIP != "" {
				r.Header.Set("X-Real-IP", tt.realIP)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, r)

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode == http.StatusOK {
				assert.JSONEq(t, `{"urls":2}`, w.Body.String())
			}
		})
	}
}
