package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ask-board/internal/validators"
	"github.com/MKhiriev/go-ask-board/models"
)

// BoardValidationService rejects malformed board commands before they reach
// the wrapped BoardService.
type BoardValidationService struct {
	inner     BoardService
	validator validators.Validator
}

func NewBoardValidationService() BoardServiceWrapper {
	return &BoardValidationService{
		validator: validators.NewBoardValidator(),
	}
}

func (v *BoardValidationService) SubmitQuestion(ctx context.Context, request models.SubmitQuestionRequest) (models.SubmitQuestionResponse, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.SubmitQuestionResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.SubmitQuestion(ctx, request)
}

func (v *BoardValidationService) FollowQuestion(ctx context.Context, request models.FollowQuestionRequest) error {
	if err := v.validator.Validate(ctx, request); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.FollowQuestion(ctx, request)
}

// AnswerQuestion only checks the owner here; the link is checked after
// authorization so that non-owners always get ErrForbidden.
func (v *BoardValidationService) AnswerQuestion(ctx context.Context, request models.AnswerQuestionRequest) error {
	if err := v.validator.Validate(ctx, request, validators.FieldOwner); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.AnswerQuestion(ctx, request)
}

func (v *BoardValidationService) ReadBoard(ctx context.Context, owner string, viewer models.Identity) (models.BoardView, error) {
	if owner == "" {
		return models.BoardView{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrEmptyOwner)
	}

	return v.inner.ReadBoard(ctx, owner, viewer)
}

func (v *BoardValidationService) Wrap(wrapped BoardService) BoardService {
	v.inner = wrapped
	return v
}
