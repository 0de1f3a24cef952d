// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"slices"
	"time"
)

// MaxQuestionLength is the maximum number of characters (runes) a question
// may contain.
const MaxQuestionLength = 140

// Question is a single entry on a board.
//
// A question is Open until it is answered; AnswerLink and AnsweredAt are
// either both set or both empty. Followers is a set of normalized email
// addresses and VoteCount is always derived from it.
type Question struct {
	// Text is the question itself, at most MaxQuestionLength runes.
	Text string `json:"question"`

	// Author is an optional free-text display name chosen by the submitter.
	Author string `json:"author"`

	// SubmitterEmail is the email of whoever submitted the question, if known.
	SubmitterEmail string `json:"email"`

	// Followers is the deduplicated set of addresses notified on answer.
	Followers []string `json:"followers"`

	// AnswerLink is the link attached by the board owner.
	AnswerLink string `json:"answer,omitempty"`

	// AnsweredAt is the moment the latest answer was recorded.
	AnsweredAt *time.Time `json:"answeredAt,omitempty"`
}

// VoteCount returns the number of followers.
func (q *Question) VoteCount() int {
	return len(q.Followers)
}

// IsAnswered reports whether the owner has attached an answer.
func (q *Question) IsAnswered() bool {
	return q.AnsweredAt != nil && q.AnswerLink != ""
}

// AddFollower adds email to the followers set. It returns false when the
// address is empty or already following.
func (q *Question) AddFollower(email string) bool {
	email = NormalizeEmail(email)
	if email == "" || slices.Contains(q.Followers, email) {
		return false
	}

	q.Followers = append(q.Followers, email)
	return true
}

// Answer records link as the answer at the given moment, overwriting any
// previous answer.
func (q *Question) Answer(link string, at time.Time) {
	answeredAt := at
	q.AnswerLink = link
	q.AnsweredAt = &answeredAt
}

// Clone returns a deep copy of the question.
func (q Question) Clone() Question {
	c := q
	c.Followers = slices.Clone(q.Followers)
	if q.AnsweredAt != nil {
		at := *q.AnsweredAt
		c.AnsweredAt = &at
	}
	return c
}
