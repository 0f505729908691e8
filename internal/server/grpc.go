package server

import (
	"context"
	"net"

	"github.com/MKhiriev/work-diary/internal/config"
	myGRPC "github.com/MKhiriev/work-diary/internal/handler/grpc"
	"github.com/MKhiriev/work-diary/internal/logger"

	"google.golang.org/grpc"
)

// grpcServer hosts the health service. Its probe loop runs only while the
// listener is up.
type grpcServer struct {
	handler *myGRPC.Handler
	server  *grpc.Server
	address string

	probeCtx  context.Context
	stopProbe context.CancelFunc

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer()
	handler.Register(server)

	probeCtx, stopProbe := context.WithCancel(context.Background())

	return &grpcServer{
		handler:   handler,
		server:    server,
		address:   cfg.GRPCAddress,
		probeCtx:  probeCtx,
		stopProbe: stopProbe,
		logger:    logger,
	}
}

func (g *grpcServer) name() string { return "grpc" }

func (g *grpcServer) serve() error {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		return err
	}

	go g.handler.Watch(g.probeCtx)

	g.logger.Info().Str("address", g.address).Msg("health service listening")
	return g.server.Serve(listener)
}

// stop drains open streams, or cuts them off when ctx expires first.
func (g *grpcServer) stop(ctx context.Context) error {
	g.stopProbe()
	g.handler.Shutdown()

	drained := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(drained)
	}()

	select {
	case <-drained:
		return nil
	case <-ctx.Done():
		g.server.Stop()
		return ctx.Err()
	}
}
