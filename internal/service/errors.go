package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrForbidden           = errors.New("only the board owner can answer questions")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
