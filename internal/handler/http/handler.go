package http

import (
	"github.com/heartbreaksandvodka/project-plusminus/internal/config"
	"github.com/heartbreaksandvodka/project-plusminus/internal/logger"
	"github.com/heartbreaksandvodka/project-plusminus/internal/metrics"
	"github.com/heartbreaksandvodka/project-plusminus/internal/service"
)

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics

	// serveMetrics mounts /metrics on the API router. It is off when a
	// separate metrics listener is configured.
	serveMetrics bool

	// maxUploadSize caps multipart profile updates.
	maxUploadSize int64

	logger *logger.Logger
}

func NewHandler(services *service.Services, m *metrics.Metrics, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	maxUpload := cfg.MaxUploadSize
	if maxUpload <= 0 {
		maxUpload = config.DefaultMaxUploadSize
	}

	return &Handler{
		services:      services,
		metrics:       m,
		serveMetrics:  cfg.MetricsAddress == "",
		maxUploadSize: maxUpload,
		logger:        logger,
	}
}
