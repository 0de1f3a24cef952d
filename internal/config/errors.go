package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidFlags indicates that command-line flags could not be parsed.
	ErrInvalidFlags = errors.New("invalid command-line flags")
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, missing HTTP address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates that neither a DSN nor a data
	// directory is configured.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an empty session cookie name).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero notifier workers).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
