// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-ask-board/internal/logger"
	"github.com/MKhiriev/go-ask-board/models"
)

func TestBoardFileRepository_AppendAssignsSequentialIndices(t *testing.T) {
	ctx := context.Background()
	repo := NewBoardFileRepository(t.TempDir(), logger.Nop())

	for want := range 3 {
		got, err := repo.Append(ctx, "alice", models.Question{Text: "q"})
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	index, err := repo.Append(ctx, "bob", models.Question{Text: "q"})
	require.NoError(t, err)
	assert.Equal(t, 0, index, "boards are independent")
}

func TestBoardFileRepository_GetMissingBoard(t *testing.T) {
	repo := NewBoardFileRepository(t.TempDir(), logger.Nop())

	questions, err := repo.Get(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, questions)
	assert.Empty(t, questions)
}

func TestBoardFileRepository_GetReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewBoardFileRepository(t.TempDir(), logger.Nop())

	_, err := repo.Append(ctx, "alice", models.Question{Text: "q", Followers: []string{"a@x"}})
	require.NoError(t, err)

	questions, err := repo.Get(ctx, "alice")
	require.NoError(t, err)
	questions[0].Followers[0] = "tampered"
	questions[0].Text = "tampered"

	again, err := repo.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "q", again[0].Text)
	assert.Equal(t, []string{"a@x"}, again[0].Followers)
}

func TestBoardFileRepository_MutateAt(t *testing.T) {
	ctx := context.Background()
	repo := NewBoardFileRepository(t.TempDir(), logger.Nop())

	_, err := repo.Append(ctx, "alice", models.Question{Text: "q"})
	require.NoError(t, err)

	err = repo.MutateAt(ctx, "alice", 0, func(q *models.Question) error {
		q.AddFollower("b@x")
		return nil
	})
	require.NoError(t, err)

	questions, err := repo.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 1, questions[0].VoteCount())
}

func TestBoardFileRepository_MutateAtNotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewBoardFileRepository(t.TempDir(), logger.Nop())

	_, err := repo.Append(ctx, "alice", models.Question{Text: "q"})
	require.NoError(t, err)

	noop := func(q *models.Question) error { return nil }

	tests := []struct {
		name  string
		owner string
		index int
	}{
		{name: "unknown owner", owner: "bob", index: 0},
		{name: "index past end", owner: "alice", index: 1},
		{name: "negative index", owner: "alice", index: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, repo.MutateAt(ctx, tt.owner, tt.index, noop), ErrQuestionNotFound)
		})
	}
}

func TestBoardFileRepository_MutatorErrorLeavesQuestionUntouched(t *testing.T) {
	ctx := context.Background()
	repo := NewBoardFileRepository(t.TempDir(), logger.Nop())

	_, err := repo.Append(ctx, "alice", models.Question{Text: "q"})
	require.NoError(t, err)

	boom := errors.New("boom")
	err = repo.MutateAt(ctx, "alice", 0, func(q *models.Question) error {
		q.Text = "changed"
		return boom
	})
	assert.ErrorIs(t, err, boom)

	questions, err := repo.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "q", questions[0].Text)
}

func TestBoardFileRepository_PersistsSnapshot(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	repo := NewBoardFileRepository(dir, logger.Nop())

	_, err := repo.Append(ctx, "alice", models.Question{
		Text:           "why?",
		Author:         "Ann",
		SubmitterEmail: "ann@x",
		Followers:      []string{"ann@x"},
	})
	require.NoError(t, err)

	answeredAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, repo.MutateAt(ctx, "alice", 0, func(q *models.Question) error {
		q.Answer("https://a", answeredAt)
		return nil
	}))

	raw, err := os.ReadFile(filepath.Join(dir, BoardsFileName))
	require.NoError(t, err)

	var onDisk map[string][]map[string]any
	require.NoError(t, json.Unmarshal(raw, &onDisk))
	require.Len(t, onDisk["alice"], 1)
	assert.Equal(t, "why?", onDisk["alice"][0]["question"])
	assert.Equal(t, float64(1), onDisk["alice"][0]["votes"])
	assert.Equal(t, "https://a", onDisk["alice"][0]["answer"])

	reopened := NewBoardFileRepository(dir, logger.Nop())
	questions, err := reopened.Get(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "Ann", questions[0].Author)
	assert.Equal(t, []string{"ann@x"}, questions[0].Followers)
	require.NotNil(t, questions[0].AnsweredAt)
	assert.True(t, answeredAt.Equal(*questions[0].AnsweredAt))
}

func TestBoardFileRepository_VotesRecomputedFromFollowers(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, BoardsFileName), []byte(`{
  "alice": [{"question": "q", "author": "", "email": "", "votes": 99, "followers": ["A@x", "a@x", "b@x"]}]
}`), 0o600))

	repo := NewBoardFileRepository(dir, logger.Nop())
	questions, err := repo.Get(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, 2, questions[0].VoteCount())
}

func TestBoardFileRepository_MalformedFileStartsEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, BoardsFileName), []byte(`[1,2`), 0o600))

	repo := NewBoardFileRepository(dir, logger.Nop())
	questions, err := repo.Get(context.Background(), "alice")
	require.NoError(t, err)
	assert.Empty(t, questions)
}

func TestBoardFileRepository_WriteFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	repo := NewBoardFileRepository(filepath.Join(blocker, "data"), logger.Nop())

	_, err := repo.Append(ctx, "alice", models.Question{Text: "q"})
	assert.ErrorIs(t, err, ErrWritingSnapshot)

	questions, err := repo.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, questions)
}
