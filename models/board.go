package models

import "time"

// QuestionView is the read-only projection of a question shown on a board.
// Follower addresses are never exposed.
type QuestionView struct {
	// Index is the position of the question in the owner's board and the
	// reference used by follow and answer requests.
	Index int `json:"index"`

	Text       string     `json:"question"`
	Author     string     `json:"author,omitempty"`
	Votes      int        `json:"votes"`
	AnswerLink string     `json:"answer,omitempty"`
	AnsweredAt *time.Time `json:"answered_at,omitempty"`
}

// BoardView is the derived, display-ordered view of a board.
type BoardView struct {
	Owner string `json:"owner"`

	// CanAnswer is true when the viewer is the board owner.
	CanAnswer bool `json:"can_answer"`

	// Unanswered holds open questions by descending vote count.
	Unanswered []QuestionView `json:"unanswered"`

	// Answered holds answered questions by ascending answer time.
	Answered []QuestionView `json:"answered"`
}
