// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-ask-board/internal/logger"
	"github.com/MKhiriev/go-ask-board/models"
)

// UsersFileName is the credential table inside the data directory.
const UsersFileName = "users.json"

// userRecord is the persisted shape of one account.
type userRecord struct {
	Salt  string `json:"salt"`
	Hash  string `json:"hash"`
	Email string `json:"email"`
}

// userFileRepository is the JSON-file implementation of [UserRepository].
// The whole table is held in memory and rewritten on every change.
type userFileRepository struct {
	mu    sync.RWMutex
	users map[string]userRecord
	file  snapshotFile[map[string]userRecord]
}

// NewUserFileRepository loads users.json from dataDir. A missing or
// malformed file starts an empty table.
func NewUserFileRepository(dataDir string, logger *logger.Logger) UserRepository {
	logger.Debug().Str("data_dir", dataDir).Msg("creating user file repository")

	file := snapshotFile[map[string]userRecord]{
		path:   filepath.Join(dataDir, UsersFileName),
		logger: logger,
	}

	return &userFileRepository{
		users: file.load(func() map[string]userRecord { return make(map[string]userRecord) }),
		file:  file,
	}
}

func (r *userFileRepository) CreateUser(ctx context.Context, user models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.Username]; exists {
		return ErrUsernameAlreadyExists
	}

	r.users[user.Username] = userRecord{
		Salt:  user.PasswordSalt,
		Hash:  user.PasswordHash,
		Email: user.Email,
	}

	if err := r.file.save(r.users); err != nil {
		delete(r.users, user.Username)
		logger.FromContext(ctx).Err(err).
			Str("func", "*userFileRepository.CreateUser").
			Str("username", user.Username).
			Msg("failed to persist users file")
		return err
	}

	return nil
}

func (r *userFileRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.users[username]
	if !ok {
		return models.User{}, ErrUserNotFound
	}

	return models.User{
		Username:     username,
		Email:        record.Email,
		PasswordSalt: record.Salt,
		PasswordHash: record.Hash,
	}, nil
}
