package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername   = errors.New("username is required")
	ErrEmptyPassword   = errors.New("password is required")
	ErrEmptyEmail      = errors.New("email is required")
	ErrEmptyOwner      = errors.New("board owner is required")
	ErrEmptyQuestion   = errors.New("question text is required")
	ErrQuestionTooLong = errors.New("question text is too long")
	ErrEmptyAnswerLink = errors.New("answer link is required")
)
