package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-ask-board/internal/logger"
)

// snapshotFile reads and writes a whole JSON document at path.
type snapshotFile[T any] struct {
	path   string
	logger *logger.Logger
}

// load decodes the document into a fresh T produced by empty. A missing file
// and a malformed file both yield empty(); the latter is logged as a warning.
func (f snapshotFile[T]) load(empty func() T) T {
	raw, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return empty()
	}
	if err != nil {
		f.logger.Warn().Err(err).Str("path", f.path).Msg("cannot read snapshot, starting empty")
		return empty()
	}

	state := empty()
	if len(raw) == 0 {
		return state
	}
	if err := json.Unmarshal(raw, &state); err != nil {
		f.logger.Warn().Err(err).Str("path", f.path).Msg("malformed snapshot, starting empty")
		return empty()
	}

	return state
}

// save writes state to a temp file in the same directory, syncs it and
// renames it over path, so a crash never leaves a half-written document.
func (f snapshotFile[T]) save(state T) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWritingSnapshot, err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingSnapshot, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWritingSnapshot, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %w", ErrWritingSnapshot, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %w", ErrWritingSnapshot, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingSnapshot, err)
	}

	if err := os.Rename(tmpName, f.path); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingSnapshot, err)
	}

	return nil
}
