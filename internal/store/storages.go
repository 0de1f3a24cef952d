package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ask-board/internal/config"
	"github.com/MKhiriev/go-ask-board/internal/logger"
)

// Storages groups the repositories used by the service layer.
type Storages struct {
	UserRepository    UserRepository
	BoardRepository   BoardRepository
	SessionRepository SessionRepository

	db *DB
}

// NewStorages selects the durable backend from cfg. A non-empty DSN opens
// the SQL database and migrates it; otherwise accounts and boards are kept
// in JSON files under cfg.Files.DataDir. Sessions are always in memory.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	storages := &Storages{
		SessionRepository: NewSessionMemoryRepository(log),
	}

	if cfg.DB.DSN == "" {
		log.Info().Str("data_dir", cfg.Files.DataDir).Msg("using file storage")
		storages.UserRepository = NewUserFileRepository(cfg.Files.DataDir, log)
		storages.BoardRepository = NewBoardFileRepository(cfg.Files.DataDir, log)
		return storages, nil
	}

	db, err := NewConnect(ctx, cfg.DB.DSN, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	log.Info().Str("dialect", string(db.dialect)).Msg("using sql storage")
	storages.db = db
	storages.UserRepository = NewUserRepository(db, log)
	storages.BoardRepository = NewBoardRepository(db, log)

	return storages, nil
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
