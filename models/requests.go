// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SubmitQuestionRequest asks a new question on Owner's board.
type SubmitQuestionRequest struct {
	Owner    string   `json:"-"`
	Text     string   `json:"text"`
	Author   string   `json:"author"`
	Identity Identity `json:"-"`
}

// FollowQuestionRequest registers Identity as a follower of the question at
// Index on Owner's board.
type FollowQuestionRequest struct {
	Owner    string   `json:"-"`
	Index    int      `json:"-"`
	Identity Identity `json:"-"`
}

// AnswerQuestionRequest attaches Link as the answer to the question at Index
// on Owner's board.
type AnswerQuestionRequest struct {
	Owner    string   `json:"-"`
	Index    int      `json:"-"`
	Link     string   `json:"link"`
	Identity Identity `json:"-"`
}

// SubmitQuestionResponse is returned after a question is stored.
type SubmitQuestionResponse struct {
	Index int `json:"index"`
}
