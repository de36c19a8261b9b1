// Package server wires and runs the backend's listeners.
//
// It runs the API listener, the optional Prometheus listener and the
// background workers together, and shuts all of them down gracefully on
// SIGINT, SIGTERM or SIGQUIT.
package server
