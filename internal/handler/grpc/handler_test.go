package grpc

import (
	"context"
	"errors"
	"net"
	"sync/atomic"
	"testing"

	"github.com/MKhiriev/yobo-blog/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) PingContext(ctx context.Context) error {
	return f(ctx)
}

func startHealthServer(t *testing.T, h *Handler) healthpb.HealthClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	h.Register(srv)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return healthpb.NewHealthClient(conn)
}

func TestHandler_Check(t *testing.T) {
	var down atomic.Bool
	h := NewHandler(pingerFunc(func(context.Context) error {
		if down.Load() {
			return errors.New("connection refused")
		}
		return nil
	}), logger.Nop())
	client := startHealthServer(t, h)
	ctx := context.Background()

	status := func(service string) healthpb.HealthCheckResponse_ServingStatus {
		resp, err := client.Check(ctx, &healthpb.HealthCheckRequest{Service: service})
		require.NoError(t, err)
		return resp.GetStatus()
	}

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, status(ServiceName))

	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, h.Check(ctx))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, status(ServiceName))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, status(""))

	down.Store(true)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, h.Check(ctx))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, status(ServiceName))

	down.Store(false)
	h.Check(ctx)
	h.Shutdown()
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, status(ServiceName))
}
