// Package http implements the HTTP transport of the question board.
//
// It decodes JSON requests into board and account commands, resolves the
// session cookie into an identity, and maps service errors to status codes.
// Request tracing, access logging and response compression are handled by
// middleware before requests reach the service layer.
package http
