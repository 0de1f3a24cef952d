// Package server runs the HTTP transport together with the background
// workers.
//
// It handles startup, OS signals and graceful shutdown: the HTTP server
// stops accepting requests first, then the workers are cancelled so that
// notifications queued by the last requests are still attempted.
package server
