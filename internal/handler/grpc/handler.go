// Package grpc exposes the standard gRPC health-checking service for the
// blog server. Serving status follows the reachability of the storage.
package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/yobo-blog/internal/logger"
	"github.com/MKhiriev/yobo-blog/internal/store"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the name under which the blog API reports its health.
// The empty name reports the same status for the server as a whole.
const ServiceName = "yobo.blog"

const pingTimeout = 2 * time.Second

// Handler is the root gRPC transport handler.
//
// It owns a [health.Server] whose status is refreshed by [Handler.Check].
type Handler struct {
	health  *health.Server
	storage store.Pinger

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. Every service starts as NOT_SERVING
// until the first successful check.
func NewHandler(storage store.Pinger, logger *logger.Logger) *Handler {
	h := &Handler{
		health:  health.NewServer(),
		storage: storage,
		logger:  logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the health service to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Check pings the storage once and publishes the resulting status.
func (h *Handler) Check(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	if err := h.storage.PingContext(ctx); err != nil {
		h.logger.Warn().Err(err).Str("func", "Handler.Check").Msg("storage is unreachable")
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	h.setStatus(status)
	return status
}

// Shutdown reports NOT_SERVING for every service and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}
