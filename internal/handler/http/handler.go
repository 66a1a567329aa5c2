package http

import (
	"time"

	"github.com/MKhiriev/yobo-blog/internal/config"
	"github.com/MKhiriev/yobo-blog/internal/logger"
	"github.com/MKhiriev/yobo-blog/internal/metrics"
	"github.com/MKhiriev/yobo-blog/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

type Handler struct {
	services *service.Services

	metrics  *metrics.Collector
	gatherer prometheus.Gatherer

	requestTimeout time.Duration

	logger *logger.Logger
}

// NewHandler creates the HTTP handler. Metrics are registered in registry;
// a nil registry gets a fresh private one.
func NewHandler(services *service.Services, cfg config.Server, registry *prometheus.Registry, logger *logger.Logger) *Handler {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		metrics:        metrics.NewCollector(registry),
		gatherer:       registry,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
