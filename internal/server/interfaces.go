package server

import "context"

// Server defines the common lifecycle contract for transport servers managed
// by this package.
type Server interface {
	// RunServer serves until SIGTERM, SIGINT or SIGQUIT arrives and then
	// shuts down gracefully.
	RunServer()

	// Run serves until ctx is done and then shuts down gracefully.
	// It fails when a listener cannot be opened.
	Run(ctx context.Context) error

	// Shutdown gracefully stops every started server.
	Shutdown()
}
