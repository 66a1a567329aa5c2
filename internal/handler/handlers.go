package handler

import (
	"github.com/MKhiriev/yobo-blog/internal/config"
	"github.com/MKhiriev/yobo-blog/internal/handler/grpc"
	"github.com/MKhiriev/yobo-blog/internal/handler/http"
	"github.com/MKhiriev/yobo-blog/internal/logger"
	"github.com/MKhiriev/yobo-blog/internal/service"
	"github.com/MKhiriev/yobo-blog/internal/store"
	"github.com/prometheus/client_golang/prometheus"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers creates the transport handlers enabled by cfg. The HTTP
// handler registers its metrics in registry.
func NewHandlers(services *service.Services, storage store.Pinger, cfg config.Server, registry *prometheus.Registry, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, registry, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(storage, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
