package server

import "context"

// Server defines the lifecycle contract of the transport servers managed
// by this package.
type Server interface {
	// RunServer starts serving requests and blocks until a stop signal is
	// received or ctx is cancelled, then shuts down gracefully.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server, waiting at most until ctx ends.
	Shutdown(ctx context.Context) error
}
