package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-ask-board/internal/logger"
	"github.com/MKhiriev/go-ask-board/models"
)

// boardRepository is the SQL implementation of [BoardRepository] over the
// "questions" and "question_followers" tables.
//
// Every mutation runs in a transaction. The mutex serializes writers of this
// process so that index assignment and read-modify-write never interleave.
type boardRepository struct {
	mu     sync.Mutex
	logger *logger.Logger
	db     *DB
}

// NewBoardRepository constructs a [BoardRepository] backed by db.
func NewBoardRepository(db *DB, logger *logger.Logger) BoardRepository {
	logger.Debug().Msg("creating board repository")
	return &boardRepository{
		db:     db,
		logger: logger,
	}
}

type queryRower interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (r *boardRepository) Append(ctx context.Context, owner string, q models.Question) (int, error) {
	log := logger.FromContext(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*boardRepository.Append").Msg("failed to begin transaction")
		return 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	query, args, err := buildNextQuestionIndexQuery(r.db.builder(), owner)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var index int
	if err = tx.QueryRowContext(ctx, query, args...).Scan(&index); err != nil {
		log.Err(err).Str("func", "*boardRepository.Append").Msg("failed to select next question index")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	query, args, err = buildInsertQuestionQuery(r.db.builder(), owner, index, q)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*boardRepository.Append").Msg("failed to insert question")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = r.insertFollowers(ctx, tx, owner, index, q.Followers); err != nil {
		log.Err(err).Str("func", "*boardRepository.Append").Msg("failed to insert followers")
		return 0, err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*boardRepository.Append").Msg("failed to commit transaction")
		return 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Debug().
		Str("func", "*boardRepository.Append").
		Str("owner", owner).
		Int("index", index).
		Msg("question appended")

	return index, nil
}

func (r *boardRepository) Get(ctx context.Context, owner string) ([]models.Question, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectQuestionsQuery(r.db.builder(), owner)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*boardRepository.Get").Msg("failed to select questions")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	questions := make([]models.Question, 0)
	positions := make(map[int]int)
	for rows.Next() {
		index, q, err := scanQuestion(rows)
		if err != nil {
			log.Err(err).Str("func", "*boardRepository.Get").Msg("failed to scan question")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		positions[index] = len(questions)
		questions = append(questions, q)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if len(questions) == 0 {
		return questions, nil
	}

	followers, err := r.selectFollowers(ctx, r.db, owner)
	if err != nil {
		log.Err(err).Str("func", "*boardRepository.Get").Msg("failed to select followers")
		return nil, err
	}
	for index, emails := range followers {
		if pos, ok := positions[index]; ok {
			questions[pos].Followers = emails
		}
	}

	return questions, nil
}

func (r *boardRepository) MutateAt(ctx context.Context, owner string, index int, mutate Mutator) error {
	log := logger.FromContext(ctx)

	if index < 0 {
		return ErrQuestionNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*boardRepository.MutateAt").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	query, args, err := buildSelectQuestionQuery(r.db.builder(), owner, index)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	_, q, err := scanQuestion(tx.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return ErrQuestionNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*boardRepository.MutateAt").Msg("failed to scan question")
		return fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	followers, err := r.selectFollowers(ctx, tx, owner, index)
	if err != nil {
		return err
	}
	q.Followers = followers[index]

	if err = mutate(&q); err != nil {
		return err
	}

	query, args, err = buildUpdateQuestionQuery(r.db.builder(), owner, index, q)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*boardRepository.MutateAt").Msg("failed to update question")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	query, args, err = buildDeleteFollowersQuery(r.db.builder(), owner, index)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*boardRepository.MutateAt").Msg("failed to delete followers")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = r.insertFollowers(ctx, tx, owner, index, q.Followers); err != nil {
		log.Err(err).Str("func", "*boardRepository.MutateAt").Msg("failed to insert followers")
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*boardRepository.MutateAt").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *boardRepository) insertFollowers(ctx context.Context, db queryRower, owner string, index int, followers []string) error {
	if len(followers) == 0 {
		return nil
	}

	query, args, err := buildInsertFollowersQuery(r.db.builder(), owner, index, followers)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *boardRepository) selectFollowers(ctx context.Context, db queryRower, owner string, index ...int) (map[int][]string, error) {
	query, args, err := buildSelectFollowersQuery(r.db.builder(), owner, index...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	followers := make(map[int][]string)
	for rows.Next() {
		var (
			questionIndex int
			email         string
		)
		if err = rows.Scan(&questionIndex, &email); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		followers[questionIndex] = append(followers[questionIndex], email)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return followers, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanQuestion(row scanner) (int, models.Question, error) {
	var (
		index      int
		q          models.Question
		answeredAt sql.NullTime
	)

	if err := row.Scan(&index, &q.Text, &q.Author, &q.SubmitterEmail, &q.AnswerLink, &answeredAt); err != nil {
		return 0, models.Question{}, err
	}
	if answeredAt.Valid {
		at := answeredAt.Time
		q.AnsweredAt = &at
	}

	return index, q, nil
}
