package store

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/MKhiriev/go-ask-board/internal/logger"
	"github.com/MKhiriev/go-ask-board/models"
)

// BoardsFileName is the board table inside the data directory.
const BoardsFileName = "boards.json"

// questionRecord is the persisted shape of one question. Votes is written for
// readers of the file and ignored on load.
type questionRecord struct {
	Question   string     `json:"question"`
	Author     string     `json:"author"`
	Email      string     `json:"email"`
	Votes      int        `json:"votes"`
	Followers  []string   `json:"followers"`
	Answer     string     `json:"answer,omitempty"`
	AnsweredAt *time.Time `json:"answeredAt,omitempty"`
}

func toQuestionRecord(q models.Question) questionRecord {
	followers := q.Followers
	if followers == nil {
		followers = []string{}
	}
	return questionRecord{
		Question:   q.Text,
		Author:     q.Author,
		Email:      q.SubmitterEmail,
		Votes:      len(followers),
		Followers:  followers,
		Answer:     q.AnswerLink,
		AnsweredAt: q.AnsweredAt,
	}
}

func (r questionRecord) toModel() models.Question {
	q := models.Question{
		Text:           r.Question,
		Author:         r.Author,
		SubmitterEmail: r.Email,
		AnswerLink:     r.Answer,
		AnsweredAt:     r.AnsweredAt,
	}
	for _, f := range r.Followers {
		q.AddFollower(f)
	}
	return q
}

// boardFileRepository is the JSON-file implementation of [BoardRepository].
type boardFileRepository struct {
	mu     sync.RWMutex
	boards map[string][]models.Question
	file   snapshotFile[map[string][]questionRecord]
}

// NewBoardFileRepository loads boards.json from dataDir. A missing or
// malformed file starts with no boards.
func NewBoardFileRepository(dataDir string, logger *logger.Logger) BoardRepository {
	logger.Debug().Str("data_dir", dataDir).Msg("creating board file repository")

	file := snapshotFile[map[string][]questionRecord]{
		path:   filepath.Join(dataDir, BoardsFileName),
		logger: logger,
	}

	records := file.load(func() map[string][]questionRecord { return make(map[string][]questionRecord) })
	boards := make(map[string][]models.Question, len(records))
	for owner, questions := range records {
		board := make([]models.Question, 0, len(questions))
		for _, rec := range questions {
			board = append(board, rec.toModel())
		}
		boards[owner] = board
	}

	return &boardFileRepository{
		boards: boards,
		file:   file,
	}
}

func (r *boardFileRepository) Append(ctx context.Context, owner string, q models.Question) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	board, existed := r.boards[owner]
	index := len(board)
	r.boards[owner] = append(board, q.Clone())

	if err := r.saveLocked(); err != nil {
		if existed {
			r.boards[owner] = board
		} else {
			delete(r.boards, owner)
		}
		logger.FromContext(ctx).Err(err).
			Str("func", "*boardFileRepository.Append").
			Str("owner", owner).
			Msg("failed to persist boards file")
		return 0, err
	}

	return index, nil
}

func (r *boardFileRepository) Get(ctx context.Context, owner string) ([]models.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	board := r.boards[owner]
	questions := make([]models.Question, 0, len(board))
	for _, q := range board {
		questions = append(questions, q.Clone())
	}

	return questions, nil
}

func (r *boardFileRepository) MutateAt(ctx context.Context, owner string, index int, mutate Mutator) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	board, ok := r.boards[owner]
	if !ok || index < 0 || index >= len(board) {
		return ErrQuestionNotFound
	}

	previous := board[index]
	updated := previous.Clone()
	if err := mutate(&updated); err != nil {
		return err
	}

	board[index] = updated
	if err := r.saveLocked(); err != nil {
		board[index] = previous
		logger.FromContext(ctx).Err(err).
			Str("func", "*boardFileRepository.MutateAt").
			Str("owner", owner).
			Int("index", index).
			Msg("failed to persist boards file")
		return err
	}

	return nil
}

func (r *boardFileRepository) saveLocked() error {
	records := make(map[string][]questionRecord, len(r.boards))
	for owner, board := range r.boards {
		records[owner] = make([]questionRecord, 0, len(board))
		for _, q := range board {
			records[owner] = append(records[owner], toQuestionRecord(q))
		}
	}

	return r.file.save(records)
}
