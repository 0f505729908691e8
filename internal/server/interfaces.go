package server

import "context"

// Server runs every configured transport of the diary API.
type Server interface {
	// RunServer serves until the process receives a termination signal or a
	// transport fails, then stops all transports.
	RunServer()

	// Shutdown stops all transports, waiting up to shutdownTimeout for
	// in-flight calls.
	Shutdown()
}

// transport is a single listener such as the REST API or the gRPC health
// service.
type transport interface {
	name() string
	// serve blocks until the transport is stopped. A nil error means it was
	// stopped on purpose.
	serve() error
	stop(ctx context.Context) error
}
