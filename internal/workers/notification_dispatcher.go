// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-ask-board/internal/adapter"
	"github.com/MKhiriev/go-ask-board/internal/config"
	"github.com/MKhiriev/go-ask-board/internal/logger"
	"github.com/MKhiriev/go-ask-board/models"
)

// NotificationDispatcher decouples board commands from email delivery.
//
// Dispatch enqueues into a bounded channel and never blocks; a full queue
// drops the notification with a warning. Run drains the queue with a fixed
// number of senders, each send bounded by a timeout. Failures are logged and
// never retried.
type NotificationDispatcher struct {
	queue       chan models.Notification
	notifier    adapter.Notifier
	senders     int
	sendTimeout time.Duration
	ids         IDGenerator

	logger *logger.Logger
}

func NewNotificationDispatcher(notifier adapter.Notifier, ids IDGenerator, cfg config.Workers, logger *logger.Logger) *NotificationDispatcher {
	return &NotificationDispatcher{
		queue:       make(chan models.Notification, cfg.NotifierQueueSize),
		notifier:    notifier,
		senders:     max(cfg.NotifierWorkers, 1),
		sendTimeout: cfg.SendTimeout,
		ids:         ids,
		logger:      logger,
	}
}

// Dispatch enqueues n for delivery and reports whether it was accepted.
func (d *NotificationDispatcher) Dispatch(ctx context.Context, n models.Notification) bool {
	if n.ID == "" {
		n.ID = d.ids.Generate()
	}

	select {
	case d.queue <- n:
		logger.FromContext(ctx).Debug().
			Str("notification_id", n.ID).
			Str("to", n.To).
			Msg("notification queued")
		return true
	default:
		logger.FromContext(ctx).Warn().
			Str("notification_id", n.ID).
			Str("to", n.To).
			Int("queue_size", cap(d.queue)).
			Msg("notification queue is full, dropping notification")
		return false
	}
}

// Run implements [Worker]. It returns nil once ctx is cancelled and the
// notifications still queued at that moment have been attempted.
func (d *NotificationDispatcher) Run(ctx context.Context) error {
	d.logger.Info().Int("senders", d.senders).Int("queue_size", cap(d.queue)).Msg("notification dispatcher started")

	g := new(errgroup.Group)
	for range d.senders {
		g.Go(func() error {
			d.sendLoop(ctx)
			return nil
		})
	}
	_ = g.Wait()

	d.drain(context.WithoutCancel(ctx))
	d.logger.Info().Msg("notification dispatcher stopped")

	return nil
}

func (d *NotificationDispatcher) sendLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case n := <-d.queue:
			d.send(ctx, n)
		}
	}
}

// drain attempts whatever is left in the queue after shutdown began.
func (d *NotificationDispatcher) drain(ctx context.Context) {
	for {
		select {
		case n := <-d.queue:
			d.send(ctx, n)
		default:
			return
		}
	}
}

func (d *NotificationDispatcher) send(ctx context.Context, n models.Notification) {
	sendCtx := ctx
	if d.sendTimeout > 0 {
		var cancel context.CancelFunc
		sendCtx, cancel = context.WithTimeout(ctx, d.sendTimeout)
		defer cancel()
	}

	start := time.Now()
	if err := d.notifier.Send(sendCtx, n); err != nil {
		d.logger.Err(err).
			Str("notification_id", n.ID).
			Str("to", n.To).
			Str("subject", n.Subject).
			Dur("duration", time.Since(start)).
			Msg("failed to send notification")
		return
	}

	d.logger.Info().
		Str("notification_id", n.ID).
		Str("to", n.To).
		Dur("duration", time.Since(start)).
		Msg("notification sent")
}
