package server

import "context"

// Server defines the lifecycle contract of the backend process.
//
// [RunServer] blocks until a stop signal arrives or a listener fails;
// [Shutdown] gracefully stops every listener.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown(ctx context.Context) error
}

// Runner is a background job that lives as long as the server. It
// returns once ctx is cancelled.
type Runner interface {
	Run(ctx context.Context) error
}
