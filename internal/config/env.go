// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// defaultDotEnvPath is the .env file looked up when DOTENV is not set.
const defaultDotEnvPath = ".env"

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// loadDotEnv loads KEY=VALUE pairs from the .env file named by DOTENV (or
// ./.env) into the process environment. godotenv.Load never overrides
// variables that are already set, so the real environment always wins.
// A missing file is not an error.
func loadDotEnv() error {
	path := os.Getenv("DOTENV")
	if path == "" {
		path = defaultDotEnvPath
	}

	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error loading .env file %q: %w", path, err)
	}

	return nil
}
