package http

import (
	"github.com/aseptimu/tinylink/internal/app/config"
	"github.com/aseptimu/tinylink/internal/app/handlers/http/pinghandlers"
	"github.com/aseptimu/tinylink/internal/app/handlers/http/shortenurlhandlers"
	"github.com/aseptimu/tinylink/internal/app/handlers/http/templates"
	"github.com/aseptimu/tinylink/internal/app/metrics"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// URLService объединяет операции, нужные хендлерам коротких ссылок.
type URLService interface {
	shortenurlhandlers.URLShortener
	shortenurlhandlers.URLGetter
}

type Handlers interface {
	RegisterRoutes(r *gin.Engine)
}

type handlersImpl struct {
	cfg     *config.ConfigType
	urlSvc  URLService
	pinger  pinghandlers.Pinger
	metrics *metrics.Metrics
	logger  *zap.SugaredLogger
}

func New(
	cfg *config.ConfigType,
	urlSvc URLService,
	pinger pinghandlers.Pinger,
	m *metrics.Metrics,
	logger *zap.SugaredLogger,
) Handlers {
	return &handlersImpl{
		cfg:     cfg,
		urlSvc:  urlSvc,
		pinger:  pinger,
		metrics: m,
		logger:  logger,
	}
}

func (h *handlersImpl) RegisterRoutes(r *gin.Engine) {
	r.SetHTMLTemplate(templates.MustParse())

	shorten := shortenurlhandlers.NewShortenHandler(h.urlSvc, h.logger)
	get := shortenurlhandlers.NewGetURLHandler(h.cfg.TrustedSubnet, h.urlSvc, h.metrics, h.logger)

	r.GET("/", shorten.HomePage)
	r.POST("/", shorten.URLCreatorForm)
	r.GET("/:key", get.GetURL)
	r.GET("/ping", pinghandlers.NewPingHandler(h.pinger).Ping)
	r.GET("/metrics", gin.WrapH(h.metrics.Handler()))
	r.POST("/api/shorten", shorten.URLCreatorJSON)
	r.POST("/api/shorten/batch", shorten.URLCreatorBatch)
	r.POST("/api/expand", get.ExpandJSON)
	r.GET("/api/internal/stats", get.GetStats)
}
