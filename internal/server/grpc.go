package server

import (
	"fmt"
	"net"
	"time"

	"github.com/MKhiriev/yobo-blog/internal/config"
	myGRPC "github.com/MKhiriev/yobo-blog/internal/handler/grpc"
	"github.com/MKhiriev/yobo-blog/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler

	address         string
	server          *grpc.Server
	gRPCNetListener net.Listener

	shutdownTimeout time.Duration

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer()
	handler.Register(server)

	return &grpcServer{
		handler:         handler,
		address:         cfg.GRPCAddress,
		server:          server,
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}
}

func (g *grpcServer) listen() error {
	lis, err := net.Listen("tcp", g.address)
	if err != nil {
		return fmt.Errorf("error listening gRPC on %s: %w", g.address, err)
	}
	g.gRPCNetListener = lis
	return nil
}

func (g *grpcServer) RunServer() {
	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		g.logger.Err(err).Str("func", "grpcServer.RunServer").Msg("gRPC server stopped unexpectedly")
	}
}

// Shutdown marks every service NOT_SERVING, then drains in-flight calls.
// Calls still running after the shutdown timeout are cancelled.
func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("GRPC server Shutdown")
	g.handler.Shutdown()

	done := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(done)
	}()

	if g.shutdownTimeout <= 0 {
		<-done
		return
	}

	select {
	case <-done:
	case <-time.After(g.shutdownTimeout):
		g.logger.Warn().Msg("gRPC server did not stop in time, forcing")
		g.server.Stop()
		<-done
	}
}
