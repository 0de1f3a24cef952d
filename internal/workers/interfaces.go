// Package workers runs the background workers of the application.
//
// A Worker blocks in Run until its context is cancelled or it fails. The
// Workers aggregate runs several of them under one errgroup, so the first
// failure cancels the rest.
package workers

import "context"

// Worker is a long-running background task.
type Worker interface {
	Run(ctx context.Context) error
}

// IDGenerator issues unique ids for dispatched notifications.
type IDGenerator interface {
	Generate() string
}
