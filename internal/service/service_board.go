// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/go-ask-board/internal/logger"
	"github.com/MKhiriev/go-ask-board/internal/store"
	"github.com/MKhiriev/go-ask-board/internal/validators"
	"github.com/MKhiriev/go-ask-board/models"
)

const newQuestionSubject = "New question on your board"

// errAlreadyFollowing aborts a follow mutation so that nothing is rewritten.
var errAlreadyFollowing = errors.New("already following")

// boardService is the concrete implementation of BoardService.
//
// Mutations go through the board repository, which serializes them and
// flushes them durably before returning. Notifications are handed to the
// dispatcher only after the mutation has returned.
type boardService struct {
	boardRepository store.BoardRepository

	// accounts resolves registered emails of owners and submitters.
	accounts AuthService

	dispatcher NotificationDispatcher

	now func() time.Time

	logger *logger.Logger
}

func NewBoardService(
	boardRepository store.BoardRepository,
	accounts AuthService,
	dispatcher NotificationDispatcher,
	logger *logger.Logger,
) BoardService {
	return &boardService{
		boardRepository: boardRepository,
		accounts:        accounts,
		dispatcher:      dispatcher,
		now:             time.Now,
		logger:          logger,
	}
}

// SubmitQuestion appends a question to the owner's board.
//
// The submitter's email, if any, seeds the followers so the submitter
// follows their own question. The board owner is notified when they have a
// registered email.
func (s *boardService) SubmitQuestion(ctx context.Context, request models.SubmitQuestionRequest) (models.SubmitQuestionResponse, error) {
	log := logger.FromContext(ctx)

	email := s.resolveEmail(ctx, request.Identity)
	question := models.Question{
		Text:           request.Text,
		Author:         strings.TrimSpace(request.Author),
		SubmitterEmail: email,
		Followers:      []string{},
	}
	question.AddFollower(email)

	index, err := s.boardRepository.Append(ctx, request.Owner, question)
	if err != nil {
		log.Err(err).Str("owner", request.Owner).Msg("question submission failed")
		return models.SubmitQuestionResponse{}, fmt.Errorf("question submission failed: %w", err)
	}

	log.Info().Str("owner", request.Owner).Int("index", index).Msg("question submitted")

	if ownerEmail, ok := s.accounts.GetEmail(ctx, request.Owner); ok {
		s.dispatcher.Dispatch(ctx, models.Notification{
			To:      ownerEmail,
			Subject: newQuestionSubject,
			Text:    newQuestionText(question),
		})
	}

	return models.SubmitQuestionResponse{Index: index}, nil
}

// FollowQuestion adds the follower's email to the question. Without a
// resolvable email the call only checks that the question exists.
func (s *boardService) FollowQuestion(ctx context.Context, request models.FollowQuestionRequest) error {
	log := logger.FromContext(ctx)

	email := s.resolveEmail(ctx, request.Identity)
	if email == "" {
		return s.checkQuestionExists(ctx, request.Owner, request.Index)
	}

	err := s.boardRepository.MutateAt(ctx, request.Owner, request.Index, func(q *models.Question) error {
		if !q.AddFollower(email) {
			return errAlreadyFollowing
		}
		return nil
	})
	switch {
	case errors.Is(err, errAlreadyFollowing):
		return nil
	case err != nil:
		log.Warn().Err(err).Str("owner", request.Owner).Int("index", request.Index).Msg("follow failed")
		return fmt.Errorf("follow failed: %w", err)
	}

	return nil
}

// AnswerQuestion records the link as the answer and notifies every follower
// independently. Only the authenticated board owner may answer.
func (s *boardService) AnswerQuestion(ctx context.Context, request models.AnswerQuestionRequest) error {
	log := logger.FromContext(ctx)

	if !request.Identity.Is(request.Owner) {
		log.Warn().
			Str("owner", request.Owner).
			Str("requester", request.Identity.Username).
			Msg("answer attempt by non-owner")
		return ErrForbidden
	}

	link := strings.TrimSpace(request.Link)
	if link == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrEmptyAnswerLink)
	}

	var answered models.Question
	err := s.boardRepository.MutateAt(ctx, request.Owner, request.Index, func(q *models.Question) error {
		q.Answer(link, s.now().UTC())
		answered = q.Clone()
		return nil
	})
	if err != nil {
		log.Warn().Err(err).Str("owner", request.Owner).Int("index", request.Index).Msg("answer failed")
		return fmt.Errorf("answer failed: %w", err)
	}

	log.Info().
		Str("owner", request.Owner).
		Int("index", request.Index).
		Int("followers", answered.VoteCount()).
		Msg("question answered")

	for _, follower := range answered.Followers {
		s.dispatcher.Dispatch(ctx, models.Notification{
			To:      follower,
			Subject: fmt.Sprintf("%s answered your question", request.Owner),
			Text:    fmt.Sprintf("%s answered %q: %s", request.Owner, answered.Text, link),
		})
	}

	return nil
}

// ReadBoard returns the display-ordered view of owner's board: open
// questions by descending votes with ties kept in submission order, then
// answered questions by ascending answer time.
func (s *boardService) ReadBoard(ctx context.Context, owner string, viewer models.Identity) (models.BoardView, error) {
	questions, err := s.boardRepository.Get(ctx, owner)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("owner", owner).Msg("board read failed")
		return models.BoardView{}, fmt.Errorf("board read failed: %w", err)
	}

	view := models.BoardView{
		Owner:      owner,
		CanAnswer:  viewer.Is(owner),
		Unanswered: []models.QuestionView{},
		Answered:   []models.QuestionView{},
	}

	for i, q := range questions {
		qv := models.QuestionView{
			Index:      i,
			Text:       q.Text,
			Author:     q.Author,
			Votes:      q.VoteCount(),
			AnswerLink: q.AnswerLink,
			AnsweredAt: q.AnsweredAt,
		}
		if q.IsAnswered() {
			view.Answered = append(view.Answered, qv)
		} else {
			view.Unanswered = append(view.Unanswered, qv)
		}
	}

	slices.SortStableFunc(view.Unanswered, func(a, b models.QuestionView) int {
		return cmp.Compare(b.Votes, a.Votes)
	})
	slices.SortStableFunc(view.Answered, func(a, b models.QuestionView) int {
		return a.AnsweredAt.Compare(*b.AnsweredAt)
	})

	return view, nil
}

// resolveEmail returns the account email for authenticated identities and
// the trimmed guest email otherwise.
func (s *boardService) resolveEmail(ctx context.Context, identity models.Identity) string {
	if identity.IsAuthenticated() {
		email, _ := s.accounts.GetEmail(ctx, identity.Username)
		return strings.TrimSpace(email)
	}
	return strings.TrimSpace(identity.GuestEmail)
}

func (s *boardService) checkQuestionExists(ctx context.Context, owner string, index int) error {
	questions, err := s.boardRepository.Get(ctx, owner)
	if err != nil {
		return fmt.Errorf("board read failed: %w", err)
	}
	if index < 0 || index >= len(questions) {
		return store.ErrQuestionNotFound
	}
	return nil
}

func newQuestionText(q models.Question) string {
	if q.Author == "" {
		return q.Text
	}
	return fmt.Sprintf("%s asks: %s", q.Author, q.Text)
}
