package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-ask-board/internal/logger"
	"github.com/MKhiriev/go-ask-board/models"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts a new account. A unique violation on the username
// becomes [ErrUsernameAlreadyExists].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(r.db.builder(), user)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if r.db.errorClassificator.Classify(err) == UniqueViolation {
			log.Debug().Str("func", "*userRepository.CreateUser").Str("username", user.Username).Msg("username already exists")
			return ErrUsernameAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// FindUserByUsername selects the account by its primary key.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserQuery(r.db.builder(), username)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&user.Username, &user.Email, &user.PasswordSalt, &user.PasswordHash, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}
