package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-ask-board/internal/logger"
	"github.com/MKhiriev/go-ask-board/migrations"
)

// Dialect names the database/sql driver and the goose dialect of a [DB].
type Dialect string

const (
	DialectPostgres Dialect = "pgx"
	DialectSQLite   Dialect = "sqlite3"
)

// DB wraps *sql.DB with the dialect-specific pieces the repositories need.
type DB struct {
	*sql.DB
	dialect            Dialect
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// DialectFromDSN picks PostgreSQL for postgres:// and postgresql:// URLs and
// SQLite for everything else, which is treated as a file path or file: URI.
func DialectFromDSN(dsn string) (Dialect, error) {
	switch {
	case dsn == "":
		return "", ErrUnsupportedDSN
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return DialectPostgres, nil
	default:
		return DialectSQLite, nil
	}
}

// NewConnect opens the database named by dsn and pings it.
func NewConnect(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	dialect, err := DialectFromDSN(dsn)
	if err != nil {
		return nil, err
	}

	switch dialect {
	case DialectPostgres:
		return NewConnectPostgres(ctx, dsn, log)
	default:
		return NewConnectSQLite(ctx, dsn, log)
	}
}

func NewConnectPostgres(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open(string(DialectPostgres), dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	if err = conn.PingContext(ctx); err != nil {
		conn.Close()
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return &DB{
		DB:                 conn,
		dialect:            DialectPostgres,
		placeholder:        sq.Dollar,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             log,
	}, nil
}

func NewConnectSQLite(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	if !strings.HasPrefix(dsn, "file:") {
		if err := createLocalDBFileIfNotExists(dsn); err != nil {
			log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
			return nil, err
		}
	}

	conn, err := sql.Open(string(DialectSQLite), dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	// sqlite allows a single writer
	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		conn.Close()
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	return &DB{
		DB:                 conn,
		dialect:            DialectSQLite,
		placeholder:        sq.Question,
		errorClassificator: NewSQLiteErrorClassifier(),
		logger:             log,
	}, nil
}

// Migrate brings the schema up to date.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect))
}

func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.placeholder)
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	return nil
}
