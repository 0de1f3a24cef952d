package server

import "context"

// Server defines the lifecycle contract of the application server.
type Server interface {
	// RunServer serves until SIGTERM, SIGINT or SIGQUIT and then shuts down
	// gracefully.
	RunServer() error

	// Run serves until ctx is cancelled or a component fails, then shuts
	// down gracefully.
	Run(ctx context.Context) error
}
