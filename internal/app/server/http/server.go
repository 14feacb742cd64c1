// Package http настраивает middleware и запускает HTTP-сервер.
package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	handlers "github.com/aseptimu/tinylink/internal/app/handlers/http"
	"github.com/aseptimu/tinylink/internal/app/metrics"
	"github.com/aseptimu/tinylink/internal/app/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	srv             *http.Server
	shutdownTimeout time.Duration
	logger          *zap.SugaredLogger
}

func NewServer(addr string, shutdownTimeout time.Duration, m *metrics.Metrics, logger *zap.SugaredLogger, h handlers.Handlers) *Server {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	logger.Debug("Setting up middleware")
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.MiddlewareLogger(logger),
		middleware.MetricsMiddleware(m),
		middleware.GzipMiddleware(),
	)
	h.RegisterRoutes(r)

	return &Server{
		srv:             &http.Server{Addr: addr, Handler: r, ReadHeaderTimeout: 10 * time.Second},
		shutdownTimeout: shutdownTimeout,
		logger:          logger,
	}
}

// Handler возвращает корневой обработчик со всеми middleware.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// Run слушает адрес сервера до отмены ctx, затем корректно завершает работу.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve обслуживает соединения из ln до отмены ctx.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.logger.Infow("Starting HTTP server", "address", ln.Addr().String())

	var (
		wg          sync.WaitGroup
		shutdownErr error
	)
	stop := make(chan struct{})
	wg.Add(1)
	go func() {
		defer wg.Done()
		select {
		case <-ctx.Done():
		case <-stop:
			return
		}
		s.logger.Infow("Shutting down server", "timeout", s.shutdownTimeout)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Errorw("Error shutting down server", "error", err)
			shutdownErr = err
		}
	}()

	err := s.srv.Serve(ln)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		close(stop)
		wg.Wait()
		return err
	}
	wg.Wait()
	return shutdownErr
}
