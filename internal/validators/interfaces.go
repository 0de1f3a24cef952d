// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input before it reaches the stores.
//
// A Validator accepts any supported model and, optionally, the names of the
// fields to check. With no field names every rule for that model runs.
// Services wrap the returned sentinel into their own invalid-input error so
// transports see a single error class.
package validators

//go:generate mockgen -source=interfaces.go -destination=../mock/validator_mock.go -package=mock

import "context"

// Validator validates the provided input, optionally restricted to specific
// named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
