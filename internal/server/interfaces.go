package server

import "context"

// Server defines the lifecycle contract for the listeners managed by this
// package.
type Server interface {
	// Run serves requests until ctx is done or a listener fails, then shuts
	// everything down gracefully.
	Run(ctx context.Context) error

	// RunServer calls Run with a context cancelled by SIGTERM, SIGINT or
	// SIGQUIT and logs the outcome.
	RunServer()

	// Shutdown marks the server unready and gracefully stops every listener.
	// It is safe to call more than once.
	Shutdown()
}
