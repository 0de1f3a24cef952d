// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists accounts and boards and keeps the in-memory session
// registry.
//
// Two durable backends implement UserRepository and BoardRepository: JSON
// snapshot files in a data directory, and a SQL database (PostgreSQL through
// pgx or a SQLite file) built with squirrel and migrated with goose. Sessions
// are never persisted; SessionRepository lives in process memory only.
package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-ask-board/models"
)

// UserRepository is the durable credential table.
type UserRepository interface {
	// CreateUser stores a new account. It returns [ErrUsernameAlreadyExists]
	// when the username is taken.
	CreateUser(ctx context.Context, user models.User) error

	// FindUserByUsername returns the stored account or [ErrUserNotFound].
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// Mutator changes a question in place. An error aborts the mutation and
// nothing is written.
type Mutator func(q *models.Question) error

// BoardRepository maps a board owner to an ordered list of questions.
// Indices are stable: questions are never removed or reordered.
type BoardRepository interface {
	// Append adds q to owner's board, creating the board if absent, and
	// returns its index.
	Append(ctx context.Context, owner string, q models.Question) (int, error)

	// Get returns a copy of owner's questions in insertion order. A missing
	// board is an empty slice.
	Get(ctx context.Context, owner string) ([]models.Question, error)

	// MutateAt applies mutate to the question at index and persists the
	// result. It returns [ErrQuestionNotFound] for an unknown owner or index.
	MutateAt(ctx context.Context, owner string, index int, mutate Mutator) error
}

// SessionRepository is the volatile session registry.
type SessionRepository interface {
	// Create issues a new unguessable session for username.
	Create(ctx context.Context, username string) (models.Session, error)

	// Resolve returns the username bound to id. Unknown ids resolve to false.
	Resolve(ctx context.Context, id string) (string, bool)

	// Destroy forgets id. Unknown ids are ignored.
	Destroy(ctx context.Context, id string)
}
