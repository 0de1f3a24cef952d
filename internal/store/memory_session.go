package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-ask-board/internal/crypto"
	"github.com/MKhiriev/go-ask-board/internal/logger"
	"github.com/MKhiriev/go-ask-board/models"
)

// sessionTokenBytes is the entropy of a session id (256 bits).
const sessionTokenBytes = 32

// sessionMemoryRepository keeps sessions in a map guarded by a RWMutex.
// Restarting the process logs everybody out.
type sessionMemoryRepository struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
	newToken func() (string, error)
	now      func() time.Time
}

func NewSessionMemoryRepository(logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating in-memory session registry")
	return &sessionMemoryRepository{
		sessions: make(map[string]models.Session),
		newToken: func() (string, error) { return crypto.RandomHex(sessionTokenBytes) },
		now:      time.Now,
	}
}

func (r *sessionMemoryRepository) Create(ctx context.Context, username string) (models.Session, error) {
	token, err := r.newToken()
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*sessionMemoryRepository.Create").
			Msg("failed to generate session token")
		return models.Session{}, err
	}

	session := models.Session{
		ID:        token,
		Username:  username,
		CreatedAt: r.now(),
	}

	r.mu.Lock()
	r.sessions[token] = session
	r.mu.Unlock()

	return session, nil
}

func (r *sessionMemoryRepository) Resolve(ctx context.Context, id string) (string, bool) {
	if id == "" {
		return "", false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[id]
	return session.Username, ok
}

func (r *sessionMemoryRepository) Destroy(ctx context.Context, id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}
