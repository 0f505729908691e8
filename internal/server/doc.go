// Package server wires and runs the work diary transport servers.
//
// It provides orchestration for the HTTP API and the gRPC health service,
// including startup, signal handling, and graceful shutdown of all enabled
// transports.
package server
