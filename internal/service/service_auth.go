package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-ask-board/internal/crypto"
	"github.com/MKhiriev/go-ask-board/internal/logger"
	"github.com/MKhiriev/go-ask-board/internal/store"
	"github.com/MKhiriev/go-ask-board/internal/validators"
	"github.com/MKhiriev/go-ask-board/models"
)

// authService is the concrete implementation of AuthService.
// It combines the durable credential table, the volatile session registry
// and salted scrypt hashing.
type authService struct {
	// userRepository stores accounts keyed by username.
	userRepository store.UserRepository

	// sessionRepository maps session tokens to usernames in memory.
	sessionRepository store.SessionRepository

	// hasher derives and checks password hashes.
	hasher crypto.PasswordHasher

	// validator checks required account fields.
	validator validators.Validator

	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// repositories and password hasher.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(
	userRepository store.UserRepository,
	sessionRepository store.SessionRepository,
	hasher crypto.PasswordHasher,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository:    userRepository,
		sessionRepository: sessionRepository,
		hasher:            hasher,
		validator:         validators.NewBoardValidator(),
		now:               time.Now,
		logger:            logger,
	}
}

// RegisterUser creates a new user account.
//
// Username, password and email are required; the email is stored trimmed.
// A fresh salt is generated for every account and only the salt and the
// derived hash are persisted.
//
// Returns the stored user without the plain-text password or:
//   - ErrInvalidDataProvided wrapping the validation detail.
//   - store.ErrUsernameAlreadyExists (wrapped) if the username is taken.
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, user); err != nil {
		log.Warn().Err(err).Str("username", user.Username).Msg("invalid user data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	salt, err := a.hasher.GenerateSalt()
	if err != nil {
		log.Err(err).Msg("salt generation failed")
		return models.User{}, fmt.Errorf("salt generation failed: %w", err)
	}

	hash, err := a.hasher.Hash(user.Password, salt)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registered := models.User{
		Username:     user.Username,
		Email:        strings.TrimSpace(user.Email),
		PasswordSalt: salt,
		PasswordHash: hash,
		CreatedAt:    a.now().UTC(),
	}

	if err = a.userRepository.CreateUser(ctx, registered); err != nil {
		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("username", registered.Username).Msg("user registered")
	return registered, nil
}

// Login authenticates an existing user and issues a session.
//
// Missing fields, unknown usernames and wrong passwords are all reported as
// ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, user models.User) (models.Session, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, user, validators.FieldUsername, validators.FieldPassword); err != nil {
		log.Info().Err(err).Msg("incomplete login data provided")
		a.hasher.VerifyUnknown(user.Password)
		return models.Session{}, ErrInvalidCredentials
	}

	if err := a.authenticate(ctx, user.Username, user.Password); err != nil {
		return models.Session{}, err
	}

	session, err := a.sessionRepository.Create(ctx, user.Username)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("session creation failed")
		return models.Session{}, fmt.Errorf("session creation failed: %w", err)
	}

	log.Info().Str("username", user.Username).Msg("user logged in")
	return session, nil
}

func (a *authService) Verify(ctx context.Context, username, password string) bool {
	return a.authenticate(ctx, username, password) == nil
}

// authenticate runs exactly one hash computation whether or not the
// username exists.
func (a *authService) authenticate(ctx context.Context, username, password string) error {
	log := logger.FromContext(ctx)

	found, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		a.hasher.VerifyUnknown(password)
		if errors.Is(err, store.ErrUserNotFound) {
			log.Info().Str("username", username).Msg("login attempt for unknown user")
			return ErrInvalidCredentials
		}
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return fmt.Errorf("user search by username failed: %w", err)
	}

	if !a.hasher.Verify(password, found.PasswordSalt, found.PasswordHash) {
		log.Info().Str("username", username).Msg("wrong password")
		return ErrInvalidCredentials
	}

	return nil
}

func (a *authService) Logout(ctx context.Context, sessionID string) {
	if sessionID == "" {
		return
	}
	a.sessionRepository.Destroy(ctx, sessionID)
}

func (a *authService) ResolveSession(ctx context.Context, sessionID string) models.Identity {
	if sessionID == "" {
		return models.Guest("")
	}

	username, ok := a.sessionRepository.Resolve(ctx, sessionID)
	if !ok {
		return models.Guest("")
	}
	return models.Authenticated(username)
}

// GetEmail looks up the registered email of username. Storage failures are
// logged and reported as a missing email.
func (a *authService) GetEmail(ctx context.Context, username string) (string, bool) {
	found, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, store.ErrUserNotFound) {
			logger.FromContext(ctx).Err(err).Str("username", username).Msg("email lookup failed")
		}
		return "", false
	}

	if found.Email == "" {
		return "", false
	}
	return found.Email, true
}
