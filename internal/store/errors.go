package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when an account with the same
	// username is already registered.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrUserNotFound is returned when no account matches the username.
	ErrUserNotFound = errors.New("no user was found")

	// ErrQuestionNotFound is returned when the owner has no board or the
	// index is outside the board.
	ErrQuestionNotFound = errors.New("question was not found")
)

// Low-level persistence errors. They are wrapped together with the driver or
// filesystem error that caused them.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrExecutingStatement   = errors.New("failed to executing statement")
	ErrScanningRow          = errors.New("failed to scan row")
	ErrScanningRows         = errors.New("failed to scan rows")

	// ErrWritingSnapshot is returned when a JSON snapshot cannot be flushed to
	// disk. The in-memory state is rolled back to match the file.
	ErrWritingSnapshot = errors.New("failed to write snapshot file")

	// ErrUnsupportedDSN is returned when a DSN names no known driver.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")
)
