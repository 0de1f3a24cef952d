package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-ask-board/models"
)

// AuthService owns accounts and sessions.
type AuthService interface {
	// RegisterUser creates an account with a freshly salted password hash.
	RegisterUser(ctx context.Context, user models.User) (models.User, error)

	// Login checks the credentials and issues a new session.
	Login(ctx context.Context, user models.User) (models.Session, error)

	// Verify reports whether password matches the stored account.
	Verify(ctx context.Context, username, password string) bool

	// Logout destroys the session. Unknown sessions are ignored.
	Logout(ctx context.Context, sessionID string)

	// ResolveSession maps a session token to an identity. Missing or
	// unknown tokens resolve to a guest.
	ResolveSession(ctx context.Context, sessionID string) models.Identity

	// GetEmail returns the email registered for username.
	GetEmail(ctx context.Context, username string) (string, bool)
}

// BoardService is the policy layer over the board store.
type BoardService interface {
	SubmitQuestion(ctx context.Context, request models.SubmitQuestionRequest) (models.SubmitQuestionResponse, error)
	FollowQuestion(ctx context.Context, request models.FollowQuestionRequest) error
	AnswerQuestion(ctx context.Context, request models.AnswerQuestionRequest) error
	ReadBoard(ctx context.Context, owner string, viewer models.Identity) (models.BoardView, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// BoardServiceWrapper defines middleware composition for BoardService.
// Implementations wrap an existing BoardService to add behavior such as
// validation.
type BoardServiceWrapper interface {
	Wrap(BoardService) BoardService // returns a decorated BoardService applying additional behavior
}

// NotificationDispatcher hands notifications off for asynchronous delivery.
// Dispatch must never block on the delivery itself.
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, n models.Notification) bool
}
