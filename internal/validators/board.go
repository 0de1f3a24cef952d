package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-ask-board/models"
)

// Field name constants accepted by BoardValidator.Validate.
const (
	FieldUsername = "username"
	FieldPassword = "password"
	FieldEmail    = "email"
	FieldOwner    = "owner"
	FieldText     = "text"
	FieldLink     = "link"
)

type BoardValidator struct{}

func NewBoardValidator() Validator {
	return &BoardValidator{}
}

func (v *BoardValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)

	case models.SubmitQuestionRequest:
		return v.validateSubmit(ctx, value, fields...)
	case *models.SubmitQuestionRequest:
		return v.validateSubmit(ctx, *value, fields...)

	case models.FollowQuestionRequest:
		return v.validateFollow(ctx, value, fields...)
	case *models.FollowQuestionRequest:
		return v.validateFollow(ctx, *value, fields...)

	case models.AnswerQuestionRequest:
		return v.validateAnswer(ctx, value, fields...)
	case *models.AnswerQuestionRequest:
		return v.validateAnswer(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *BoardValidator) validateUser(ctx context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword, FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if user.Username == "" {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if user.Password == "" {
				return ErrEmptyPassword
			}
		case FieldEmail:
			if strings.TrimSpace(user.Email) == "" {
				return ErrEmptyEmail
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *BoardValidator) validateSubmit(ctx context.Context, request models.SubmitQuestionRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOwner, FieldText}
	}

	for _, f := range fields {
		switch f {
		case FieldOwner:
			if request.Owner == "" {
				return ErrEmptyOwner
			}
		case FieldText:
			if strings.TrimSpace(request.Text) == "" {
				return ErrEmptyQuestion
			}
			if utf8.RuneCountInString(request.Text) > models.MaxQuestionLength {
				return ErrQuestionTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *BoardValidator) validateFollow(ctx context.Context, request models.FollowQuestionRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOwner}
	}

	for _, f := range fields {
		switch f {
		case FieldOwner:
			if request.Owner == "" {
				return ErrEmptyOwner
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *BoardValidator) validateAnswer(ctx context.Context, request models.AnswerQuestionRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOwner, FieldLink}
	}

	for _, f := range fields {
		switch f {
		case FieldOwner:
			if request.Owner == "" {
				return ErrEmptyOwner
			}
		case FieldLink:
			if strings.TrimSpace(request.Link) == "" {
				return ErrEmptyAnswerLink
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
