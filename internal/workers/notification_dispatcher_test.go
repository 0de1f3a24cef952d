package workers

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-ask-board/internal/adapter"
	"github.com/MKhiriev/go-ask-board/internal/config"
	"github.com/MKhiriev/go-ask-board/internal/logger"
	"github.com/MKhiriev/go-ask-board/internal/mock"
	"github.com/MKhiriev/go-ask-board/models"
)

type sequenceIDs struct {
	mu sync.Mutex
	n  int
}

func (s *sequenceIDs) Generate() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return "id-" + string(rune('0'+s.n))
}

func newTestDispatcher(notifier adapter.Notifier, workers, queue int) *NotificationDispatcher {
	return NewNotificationDispatcher(notifier, &sequenceIDs{}, config.Workers{
		NotifierWorkers:   workers,
		NotifierQueueSize: queue,
		SendTimeout:       time.Second,
	}, logger.Nop())
}

func TestDispatch_DeliversQueuedNotifications(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifier := mock.NewMockNotifier(ctrl)

	var wg sync.WaitGroup
	wg.Add(2)
	received := make(chan models.Notification, 2)
	notifier.EXPECT().Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, n models.Notification) error {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline, "every send is bounded by a timeout")
			received <- n
			wg.Done()
			return nil
		}).Times(2)

	d := newTestDispatcher(notifier, 2, 8)
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		_ = d.Run(ctx)
		close(stopped)
	}()

	assert.True(t, d.Dispatch(context.Background(), models.Notification{To: "a@x", Subject: "s", Text: "t"}))
	assert.True(t, d.Dispatch(context.Background(), models.Notification{ID: "given", To: "b@x"}))

	wg.Wait()
	cancel()
	<-stopped

	close(received)
	ids := map[string]string{}
	for n := range received {
		ids[n.To] = n.ID
	}
	assert.Equal(t, "id-1", ids["a@x"])
	assert.Equal(t, "given", ids["b@x"])
}

func TestDispatch_FullQueueDropsWithoutBlocking(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifier := mock.NewMockNotifier(ctrl)

	// Run is not started, so nothing consumes the queue
	d := newTestDispatcher(notifier, 1, 1)

	assert.True(t, d.Dispatch(context.Background(), models.Notification{To: "a@x"}))

	done := make(chan bool, 1)
	go func() { done <- d.Dispatch(context.Background(), models.Notification{To: "b@x"}) }()

	select {
	case accepted := <-done:
		assert.False(t, accepted)
	case <-time.After(time.Second):
		t.Fatal("Dispatch blocked on a full queue")
	}
}

func TestRun_FailuresAreNotRetried(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifier := mock.NewMockNotifier(ctrl)

	sent := make(chan struct{})
	notifier.EXPECT().Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, n models.Notification) error {
			close(sent)
			return errors.New("mailgun down")
		}).Times(1)

	d := newTestDispatcher(notifier, 1, 4)
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		_ = d.Run(ctx)
		close(stopped)
	}()

	d.Dispatch(context.Background(), models.Notification{To: "a@x"})
	<-sent

	// give a retry the chance to happen before shutting down
	time.Sleep(20 * time.Millisecond)
	cancel()
	<-stopped
}

func TestRun_DrainsQueueOnShutdown(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifier := mock.NewMockNotifier(ctrl)
	notifier.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil).Times(3)

	d := newTestDispatcher(notifier, 1, 4)
	for _, to := range []string{"a@x", "b@x", "c@x"} {
		require.True(t, d.Dispatch(context.Background(), models.Notification{To: to}))
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, d.Run(ctx))
	assert.Empty(t, d.queue)
}

func TestRun_ReturnsNilOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newTestDispatcher(mock.NewMockNotifier(ctrl), 3, 4)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	assert.NoError(t, d.Run(ctx))
}
