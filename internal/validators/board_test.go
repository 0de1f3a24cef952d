// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-ask-board/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoardValidator(t *testing.T) {
	require.NotNil(t, NewBoardValidator())
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewBoardValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, "a string"), ErrUnsupportedType)
	})

	t.Run("user pointer", func(t *testing.T) {
		u := models.User{Username: "alice", Password: "pw", Email: "a@x"}
		require.NoError(t, v.Validate(ctx, &u))
	})

	t.Run("submit pointer", func(t *testing.T) {
		r := models.SubmitQuestionRequest{Owner: "alice", Text: "why?"}
		require.NoError(t, v.Validate(ctx, &r))
	})

	t.Run("follow pointer", func(t *testing.T) {
		r := models.FollowQuestionRequest{Owner: "alice"}
		require.NoError(t, v.Validate(ctx, &r))
	})

	t.Run("answer pointer", func(t *testing.T) {
		r := models.AnswerQuestionRequest{Owner: "alice", Link: "https://a"}
		require.NoError(t, v.Validate(ctx, &r))
	})
}

func TestValidateUser(t *testing.T) {
	v := NewBoardValidator()

	tests := []struct {
		name    string
		user    models.User
		fields  []string
		wantErr error
	}{
		{name: "valid", user: models.User{Username: "alice", Password: "pw", Email: "a@x"}},
		{name: "empty username", user: models.User{Password: "pw", Email: "a@x"}, wantErr: ErrEmptyUsername},
		{name: "empty password", user: models.User{Username: "alice", Email: "a@x"}, wantErr: ErrEmptyPassword},
		{name: "blank email", user: models.User{Username: "alice", Password: "pw", Email: "   "}, wantErr: ErrEmptyEmail},
		{
			name:   "login scope ignores email",
			user:   models.User{Username: "alice", Password: "pw"},
			fields: []string{FieldUsername, FieldPassword},
		},
		{name: "unknown field", user: models.User{}, fields: []string{"nope"}, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.user, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateSubmit(t *testing.T) {
	v := NewBoardValidator()

	tests := []struct {
		name    string
		request models.SubmitQuestionRequest
		wantErr error
	}{
		{name: "valid", request: models.SubmitQuestionRequest{Owner: "alice", Text: "why?"}},
		{name: "empty owner", request: models.SubmitQuestionRequest{Text: "why?"}, wantErr: ErrEmptyOwner},
		{name: "empty text", request: models.SubmitQuestionRequest{Owner: "alice"}, wantErr: ErrEmptyQuestion},
		{name: "whitespace text", request: models.SubmitQuestionRequest{Owner: "alice", Text: " \t"}, wantErr: ErrEmptyQuestion},
		{
			name:    "exactly at limit",
			request: models.SubmitQuestionRequest{Owner: "alice", Text: strings.Repeat("a", models.MaxQuestionLength)},
		},
		{
			name:    "over limit",
			request: models.SubmitQuestionRequest{Owner: "alice", Text: strings.Repeat("a", models.MaxQuestionLength+1)},
			wantErr: ErrQuestionTooLong,
		},
		{
			name:    "multibyte runes counted as characters",
			request: models.SubmitQuestionRequest{Owner: "alice", Text: strings.Repeat("й", models.MaxQuestionLength)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.request)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateFollow(t *testing.T) {
	v := NewBoardValidator()

	assert.NoError(t, v.Validate(context.Background(), models.FollowQuestionRequest{Owner: "alice", Index: 3}))
	assert.ErrorIs(t, v.Validate(context.Background(), models.FollowQuestionRequest{}), ErrEmptyOwner)
}

func TestValidateAnswer(t *testing.T) {
	v := NewBoardValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.AnswerQuestionRequest{Owner: "alice", Link: "https://x"}))
	assert.ErrorIs(t, v.Validate(ctx, models.AnswerQuestionRequest{Link: "https://x"}), ErrEmptyOwner)
	assert.ErrorIs(t, v.Validate(ctx, models.AnswerQuestionRequest{Owner: "alice", Link: "  "}), ErrEmptyAnswerLink)
	assert.ErrorIs(t, v.Validate(ctx, models.AnswerQuestionRequest{Owner: "alice"}, "nope"), ErrUnknownField)
}
