package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-ask-board/internal/crypto"
	"github.com/MKhiriev/go-ask-board/internal/logger"
	"github.com/MKhiriev/go-ask-board/internal/mock"
	"github.com/MKhiriev/go-ask-board/internal/service"
	"github.com/MKhiriev/go-ask-board/internal/store"
	"github.com/MKhiriev/go-ask-board/internal/validators"
	"github.com/MKhiriev/go-ask-board/models"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

type boardDeps struct {
	boards     *mock.MockBoardRepository
	accounts   *mock.MockAuthService
	dispatcher *mock.MockNotificationDispatcher
}

func newBoardService(t *testing.T) (service.BoardService, boardDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	deps := boardDeps{
		boards:     mock.NewMockBoardRepository(ctrl),
		accounts:   mock.NewMockAuthService(ctrl),
		dispatcher: mock.NewMockNotificationDispatcher(ctrl),
	}
	return service.NewBoardService(deps.boards, deps.accounts, deps.dispatcher, logger.Nop()), deps
}

// mutateQuestion makes MutateAt apply the mutator to q.
func mutateQuestion(q *models.Question) func(context.Context, string, int, store.Mutator) error {
	return func(_ context.Context, _ string, _ int, mutate store.Mutator) error {
		updated := q.Clone()
		if err := mutate(&updated); err != nil {
			return err
		}
		*q = updated
		return nil
	}
}

// recordingDispatcher collects every dispatched notification.
type recordingDispatcher struct {
	mu   sync.Mutex
	sent []models.Notification
}

func (d *recordingDispatcher) Dispatch(_ context.Context, n models.Notification) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sent = append(d.sent, n)
	return true
}

func (d *recordingDispatcher) recipients() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	var to []string
	for _, n := range d.sent {
		to = append(to, n.To)
	}
	return to
}

// ─────────────────────────────────────────────
// SubmitQuestion
// ─────────────────────────────────────────────

func TestSubmitQuestion_GuestWithEmail(t *testing.T) {
	svc, deps := newBoardService(t)

	deps.boards.EXPECT().
		Append(gomock.Any(), "alice", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, q models.Question) (int, error) {
			assert.Equal(t, "What's your favorite color?", q.Text)
			assert.Equal(t, "g@y.com", q.SubmitterEmail)
			assert.Equal(t, []string{"g@y.com"}, q.Followers)
			assert.Equal(t, 1, q.VoteCount())
			assert.False(t, q.IsAnswered())
			return 0, nil
		})
	deps.accounts.EXPECT().GetEmail(gomock.Any(), "alice").Return("alice@x.com", true)
	deps.dispatcher.EXPECT().
		Dispatch(gomock.Any(), models.Notification{
			To:      "alice@x.com",
			Subject: "New question on your board",
			Text:    "What's your favorite color?",
		}).
		Return(true)

	resp, err := svc.SubmitQuestion(context.Background(), models.SubmitQuestionRequest{
		Owner:    "alice",
		Text:     "What's your favorite color?",
		Identity: models.Guest("  g@y.com "),
	})

	require.NoError(t, err)
	assert.Equal(t, 0, resp.Index)
}

func TestSubmitQuestion_AuthorNamedInNotification(t *testing.T) {
	svc, deps := newBoardService(t)

	deps.boards.EXPECT().Append(gomock.Any(), "alice", gomock.Any()).Return(3, nil)
	deps.accounts.EXPECT().GetEmail(gomock.Any(), "alice").Return("alice@x.com", true)
	deps.dispatcher.EXPECT().
		Dispatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n models.Notification) bool {
			assert.Equal(t, "Bob asks: Why?", n.Text)
			return true
		})

	resp, err := svc.SubmitQuestion(context.Background(), models.SubmitQuestionRequest{
		Owner:  "alice",
		Text:   "Why?",
		Author: "Bob",
	})

	require.NoError(t, err)
	assert.Equal(t, 3, resp.Index)
}

func TestSubmitQuestion_AuthenticatedUsesAccountEmail(t *testing.T) {
	svc, deps := newBoardService(t)

	deps.accounts.EXPECT().GetEmail(gomock.Any(), "bob").Return("bob@x.com", true)
	deps.boards.EXPECT().
		Append(gomock.Any(), "alice", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, q models.Question) (int, error) {
			assert.Equal(t, []string{"bob@x.com"}, q.Followers)
			return 0, nil
		})
	deps.accounts.EXPECT().GetEmail(gomock.Any(), "alice").Return("", false)

	_, err := svc.SubmitQuestion(context.Background(), models.SubmitQuestionRequest{
		Owner: "alice",
		Text:  "hi",
		Identity: models.Identity{
			Username:   "bob",
			GuestEmail: "ignored@x.com",
		},
	})

	require.NoError(t, err)
}

func TestSubmitQuestion_AnonymousWithoutEmail_NoFollowers(t *testing.T) {
	svc, deps := newBoardService(t)

	deps.boards.EXPECT().
		Append(gomock.Any(), "nobody", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, q models.Question) (int, error) {
			assert.Empty(t, q.Followers)
			assert.Equal(t, 0, q.VoteCount())
			return 0, nil
		})
	deps.accounts.EXPECT().GetEmail(gomock.Any(), "nobody").Return("", false)

	_, err := svc.SubmitQuestion(context.Background(), models.SubmitQuestionRequest{Owner: "nobody", Text: "hi"})

	require.NoError(t, err)
}

func TestSubmitQuestion_StoreFailure(t *testing.T) {
	svc, deps := newBoardService(t)
	boom := errors.New("disk full")

	deps.boards.EXPECT().Append(gomock.Any(), "alice", gomock.Any()).Return(0, boom)

	_, err := svc.SubmitQuestion(context.Background(), models.SubmitQuestionRequest{Owner: "alice", Text: "hi"})

	assert.ErrorIs(t, err, boom)
}

// ─────────────────────────────────────────────
// FollowQuestion
// ─────────────────────────────────────────────

func TestFollowQuestion_Idempotent(t *testing.T) {
	svc, deps := newBoardService(t)
	q := models.Question{Text: "q", Followers: []string{"g@y.com"}}

	deps.boards.EXPECT().MutateAt(gomock.Any(), "alice", 0, gomock.Any()).DoAndReturn(mutateQuestion(&q)).Times(4)

	ctx := context.Background()
	require.NoError(t, svc.FollowQuestion(ctx, models.FollowQuestionRequest{Owner: "alice", Index: 0, Identity: models.Guest("a@z.com")}))
	require.NoError(t, svc.FollowQuestion(ctx, models.FollowQuestionRequest{Owner: "alice", Index: 0, Identity: models.Guest("A@Z.com ")}))
	require.NoError(t, svc.FollowQuestion(ctx, models.FollowQuestionRequest{Owner: "alice", Index: 0, Identity: models.Guest("b@z.com")}))
	require.NoError(t, svc.FollowQuestion(ctx, models.FollowQuestionRequest{Owner: "alice", Index: 0, Identity: models.Guest("b@z.com")}))

	assert.Equal(t, []string{"g@y.com", "a@z.com", "b@z.com"}, q.Followers)
	assert.Equal(t, 3, q.VoteCount())
}

func TestFollowQuestion_NoEmail_IsNoOp(t *testing.T) {
	svc, deps := newBoardService(t)

	deps.boards.EXPECT().Get(gomock.Any(), "alice").Return([]models.Question{{Text: "q"}}, nil)

	err := svc.FollowQuestion(context.Background(), models.FollowQuestionRequest{Owner: "alice", Index: 0})

	require.NoError(t, err)
}

func TestFollowQuestion_NoEmail_InvalidIndex(t *testing.T) {
	svc, deps := newBoardService(t)

	deps.boards.EXPECT().Get(gomock.Any(), "alice").Return([]models.Question{{Text: "q"}}, nil)

	err := svc.FollowQuestion(context.Background(), models.FollowQuestionRequest{Owner: "alice", Index: 5})

	assert.ErrorIs(t, err, store.ErrQuestionNotFound)
}

func TestFollowQuestion_NotFound(t *testing.T) {
	svc, deps := newBoardService(t)

	deps.boards.EXPECT().MutateAt(gomock.Any(), "alice", 5, gomock.Any()).Return(store.ErrQuestionNotFound)

	err := svc.FollowQuestion(context.Background(), models.FollowQuestionRequest{
		Owner:    "alice",
		Index:    5,
		Identity: models.Guest("g@y.com"),
	})

	assert.ErrorIs(t, err, store.ErrQuestionNotFound)
}

// ─────────────────────────────────────────────
// AnswerQuestion
// ─────────────────────────────────────────────

func TestAnswerQuestion_OwnerAnswersAndNotifiesFollowers(t *testing.T) {
	svc, deps := newBoardService(t)
	at := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	service.SetBoardClock(svc, func() time.Time { return at })

	q := models.Question{Text: "Why?", Followers: []string{"a@z.com", "b@z.com"}}
	deps.boards.EXPECT().MutateAt(gomock.Any(), "alice", 0, gomock.Any()).DoAndReturn(mutateQuestion(&q))

	var to []string
	deps.dispatcher.EXPECT().
		Dispatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n models.Notification) bool {
			to = append(to, n.To)
			assert.Equal(t, `alice answered "Why?": https://blog/post1`, n.Text)
			return true
		}).
		Times(2)

	err := svc.AnswerQuestion(context.Background(), models.AnswerQuestionRequest{
		Owner:    "alice",
		Index:    0,
		Link:     "  https://blog/post1  ",
		Identity: models.Authenticated("alice"),
	})

	require.NoError(t, err)
	assert.Equal(t, "https://blog/post1", q.AnswerLink)
	require.NotNil(t, q.AnsweredAt)
	assert.Equal(t, at, *q.AnsweredAt)
	assert.Equal(t, []string{"a@z.com", "b@z.com"}, to)
}

func TestAnswerQuestion_ReanswerOverwrites(t *testing.T) {
	svc, deps := newBoardService(t)
	q := models.Question{Text: "Why?", Followers: []string{"a@z.com"}}

	deps.boards.EXPECT().MutateAt(gomock.Any(), "alice", 0, gomock.Any()).DoAndReturn(mutateQuestion(&q)).Times(2)
	deps.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(true).Times(2)

	owner := models.Authenticated("alice")
	require.NoError(t, svc.AnswerQuestion(context.Background(), models.AnswerQuestionRequest{Owner: "alice", Link: "L1", Identity: owner}))
	require.NoError(t, svc.AnswerQuestion(context.Background(), models.AnswerQuestionRequest{Owner: "alice", Link: "L2", Identity: owner}))

	assert.Equal(t, "L2", q.AnswerLink)
}

func TestAnswerQuestion_Forbidden(t *testing.T) {
	tests := []struct {
		name     string
		identity models.Identity
	}{
		{"other user", models.Authenticated("bob")},
		{"guest", models.Guest("alice@x.com")},
		{"guest named like owner", models.Identity{GuestEmail: "alice"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newBoardService(t)

			err := svc.AnswerQuestion(context.Background(), models.AnswerQuestionRequest{
				Owner:    "alice",
				Index:    0,
				Link:     "https://x",
				Identity: tt.identity,
			})

			assert.ErrorIs(t, err, service.ErrForbidden)
		})
	}
}

func TestAnswerQuestion_EmptyLink(t *testing.T) {
	svc, _ := newBoardService(t)

	err := svc.AnswerQuestion(context.Background(), models.AnswerQuestionRequest{
		Owner:    "alice",
		Link:     "   ",
		Identity: models.Authenticated("alice"),
	})

	assert.ErrorIs(t, err, service.ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrEmptyAnswerLink)
}

func TestAnswerQuestion_NotFound_NoNotifications(t *testing.T) {
	svc, deps := newBoardService(t)

	deps.boards.EXPECT().MutateAt(gomock.Any(), "alice", 5, gomock.Any()).Return(store.ErrQuestionNotFound)

	err := svc.AnswerQuestion(context.Background(), models.AnswerQuestionRequest{
		Owner:    "alice",
		Index:    5,
		Link:     "https://x",
		Identity: models.Authenticated("alice"),
	})

	assert.ErrorIs(t, err, store.ErrQuestionNotFound)
}

// ─────────────────────────────────────────────
// ReadBoard
// ─────────────────────────────────────────────

func TestReadBoard_Ordering(t *testing.T) {
	svc, deps := newBoardService(t)
	t1 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)

	deps.boards.EXPECT().Get(gomock.Any(), "alice").Return([]models.Question{
		{Text: "one vote", Followers: []string{"a"}},
		{Text: "answered late", AnswerLink: "L", AnsweredAt: &t2},
		{Text: "two votes", Followers: []string{"a", "b"}},
		{Text: "also one vote", Followers: []string{"c"}},
		{Text: "answered early", AnswerLink: "L", AnsweredAt: &t1},
	}, nil)

	view, err := svc.ReadBoard(context.Background(), "alice", models.Guest(""))

	require.NoError(t, err)
	assert.False(t, view.CanAnswer)

	var open []string
	for _, q := range view.Unanswered {
		open = append(open, q.Text)
	}
	assert.Equal(t, []string{"two votes", "one vote", "also one vote"}, open)
	assert.Equal(t, 2, view.Unanswered[0].Index)

	require.Len(t, view.Answered, 2)
	assert.Equal(t, "answered early", view.Answered[0].Text)
	assert.Equal(t, 4, view.Answered[0].Index)
	assert.Equal(t, "answered late", view.Answered[1].Text)
}

func TestReadBoard_OwnerCanAnswer(t *testing.T) {
	svc, deps := newBoardService(t)

	deps.boards.EXPECT().Get(gomock.Any(), "alice").Return(nil, nil).Times(2)

	view, err := svc.ReadBoard(context.Background(), "alice", models.Authenticated("alice"))
	require.NoError(t, err)
	assert.True(t, view.CanAnswer)
	assert.NotNil(t, view.Unanswered)
	assert.NotNil(t, view.Answered)

	view, err = svc.ReadBoard(context.Background(), "alice", models.Authenticated("bob"))
	require.NoError(t, err)
	assert.False(t, view.CanAnswer)
}

// ─────────────────────────────────────────────
// End-to-end over file storage
// ─────────────────────────────────────────────

func TestBoardScenario_FileStorage(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	log := logger.Nop()

	sessions := store.NewSessionMemoryRepository(log)
	auth := service.NewAuthService(store.NewUserFileRepository(dir, log), sessions, crypto.NewPasswordHasher(), log)
	dispatcher := &recordingDispatcher{}
	board := service.NewBoardValidationService().Wrap(
		service.NewBoardService(store.NewBoardFileRepository(dir, log), auth, dispatcher, log),
	)

	_, err := auth.RegisterUser(ctx, models.User{Username: "alice", Password: "pw123", Email: "alice@x.com"})
	require.NoError(t, err)

	session, err := auth.Login(ctx, models.User{Username: "alice", Password: "pw123"})
	require.NoError(t, err)
	owner := auth.ResolveSession(ctx, session.ID)
	require.True(t, owner.Is("alice"))

	resp, err := board.SubmitQuestion(ctx, models.SubmitQuestionRequest{
		Owner:    "alice",
		Text:     "What's your favorite color?",
		Identity: models.Guest("g@y.com"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"alice@x.com"}, dispatcher.recipients())

	view, err := board.ReadBoard(ctx, "alice", models.Guest(""))
	require.NoError(t, err)
	require.Len(t, view.Unanswered, 1)
	assert.Equal(t, 1, view.Unanswered[0].Votes)
	assert.Empty(t, view.Answered)

	err = board.AnswerQuestion(ctx, models.AnswerQuestionRequest{
		Owner:    "alice",
		Index:    5,
		Link:     "https://blog/post1",
		Identity: owner,
	})
	assert.ErrorIs(t, err, store.ErrQuestionNotFound)

	err = board.AnswerQuestion(ctx, models.AnswerQuestionRequest{
		Owner:    "alice",
		Index:    resp.Index,
		Link:     "https://blog/post1",
		Identity: models.Authenticated("bob"),
	})
	assert.ErrorIs(t, err, service.ErrForbidden)

	err = board.AnswerQuestion(ctx, models.AnswerQuestionRequest{
		Owner:    "alice",
		Index:    resp.Index,
		Link:     "https://blog/post1",
		Identity: owner,
	})
	require.NoError(t, err)

	view, err = board.ReadBoard(ctx, "alice", owner)
	require.NoError(t, err)
	assert.True(t, view.CanAnswer)
	assert.Empty(t, view.Unanswered)
	require.Len(t, view.Answered, 1)
	assert.Equal(t, "https://blog/post1", view.Answered[0].AnswerLink)
	assert.Equal(t, []string{"alice@x.com", "g@y.com"}, dispatcher.recipients())

	assert.True(t, auth.Verify(ctx, "alice", "pw123"))
	assert.False(t, auth.Verify(ctx, "alice", "pw124"))
	assert.False(t, auth.Verify(ctx, "nobody", "pw123"))

	auth.Logout(ctx, session.ID)
	assert.False(t, auth.ResolveSession(ctx, session.ID).IsAuthenticated())
}
