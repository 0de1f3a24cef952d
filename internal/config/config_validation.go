// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or one of the ErrInvalid*
// sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DB.DSN == "" && cfg.Storage.Files.DataDir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.SessionCookieName == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Workers.NotifierWorkers <= 0 || cfg.Workers.NotifierQueueSize <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
