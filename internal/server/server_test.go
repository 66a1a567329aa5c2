package server

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/yobo-blog/internal/config"
	"github.com/MKhiriev/yobo-blog/internal/handler"
	myGRPC "github.com/MKhiriev/yobo-blog/internal/handler/grpc"
	myHTTP "github.com/MKhiriev/yobo-blog/internal/handler/http"
	"github.com/MKhiriev/yobo-blog/internal/logger"
	"github.com/MKhiriev/yobo-blog/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopPinger struct{}

func (nopPinger) PingContext(context.Context) error { return nil }

func testHandlers(cfg config.Server) *handler.Handlers {
	return &handler.Handlers{
		HTTP: myHTTP.NewHandler(&service.Services{}, cfg, nil, logger.Nop()),
		GRPC: myGRPC.NewHandler(nopPinger{}, logger.Nop()),
	}
}

func TestNewServer(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())
	require.ErrorIs(t, err, errNoServersAreCreated)

	cfg := config.Server{HTTPAddress: "127.0.0.1:0"}
	srv, err := NewServer(testHandlers(cfg), cfg, logger.Nop())
	require.NoError(t, err)

	s := srv.(*server)
	assert.NotNil(t, s.httpServer)
	assert.Nil(t, s.gRPCServer)
}

func TestHTTPServer_ServesUntilShutdown(t *testing.T) {
	h := newHTTPServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "pong")
	}), config.Server{HTTPAddress: "127.0.0.1:0", ShutdownTimeout: time.Second}, logger.Nop())
	require.NoError(t, h.listen())

	stopped := make(chan struct{})
	go func() {
		h.RunServer()
		close(stopped)
	}()

	resp, err := http.Get("http://" + h.listener.Addr().String() + "/ping")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, "pong", string(body))

	h.Shutdown()

	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		t.Fatal("HTTP server did not stop")
	}
}

func TestServer_Run(t *testing.T) {
	t.Run("returns after context is done", func(t *testing.T) {
		cfg := config.Server{HTTPAddress: "127.0.0.1:0", GRPCAddress: "127.0.0.1:0", ShutdownTimeout: time.Second}
		srv, err := NewServer(testHandlers(cfg), cfg, logger.Nop())
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.NoError(t, srv.Run(ctx))
	})

	t.Run("fails on bad address", func(t *testing.T) {
		cfg := config.Server{HTTPAddress: "127.0.0.1:-1"}
		srv, err := NewServer(testHandlers(cfg), cfg, logger.Nop())
		require.NoError(t, err)

		assert.Error(t, srv.Run(context.Background()))
	})
}
