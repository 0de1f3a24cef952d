package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-ask-board/models"
)

const (
	usersTable     = "users"
	questionsTable = "questions"
	followersTable = "question_followers"
)

var (
	userColumns = []string{
		"username",
		"email",
		"password_salt",
		"password_hash",
		"created_at",
	}

	questionColumns = []string{
		"question_index",
		"question",
		"author",
		"email",
		"answer_link",
		"answered_at",
	}
)

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns(userColumns...).
		Values(user.Username, user.Email, user.PasswordSalt, user.PasswordHash, user.CreatedAt).
		ToSql()
}

func buildSelectUserQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"username": username}).
		ToSql()
}

func buildNextQuestionIndexQuery(b sq.StatementBuilderType, owner string) (string, []any, error) {
	return b.Select("COALESCE(MAX(question_index) + 1, 0)").
		From(questionsTable).
		Where(sq.Eq{"owner": owner}).
		ToSql()
}

func buildInsertQuestionQuery(b sq.StatementBuilderType, owner string, index int, q models.Question) (string, []any, error) {
	return b.Insert(questionsTable).
		Columns(append([]string{"owner"}, questionColumns...)...).
		Values(owner, index, q.Text, q.Author, q.SubmitterEmail, q.AnswerLink, answeredAtValue(q)).
		ToSql()
}

func buildSelectQuestionsQuery(b sq.StatementBuilderType, owner string) (string, []any, error) {
	return b.Select(questionColumns...).
		From(questionsTable).
		Where(sq.Eq{"owner": owner}).
		OrderBy("question_index").
		ToSql()
}

func buildSelectQuestionQuery(b sq.StatementBuilderType, owner string, index int) (string, []any, error) {
	return b.Select(questionColumns...).
		From(questionsTable).
		Where(sq.Eq{"owner": owner, "question_index": index}).
		ToSql()
}

func buildUpdateQuestionQuery(b sq.StatementBuilderType, owner string, index int, q models.Question) (string, []any, error) {
	return b.Update(questionsTable).
		Set("question", q.Text).
		Set("author", q.Author).
		Set("email", q.SubmitterEmail).
		Set("answer_link", q.AnswerLink).
		Set("answered_at", answeredAtValue(q)).
		Where(sq.Eq{"owner": owner, "question_index": index}).
		ToSql()
}

// buildSelectFollowersQuery selects the followers of every question on the
// board, or of a single question when index is given.
func buildSelectFollowersQuery(b sq.StatementBuilderType, owner string, index ...int) (string, []any, error) {
	where := sq.Eq{"owner": owner}
	if len(index) > 0 {
		where["question_index"] = index[0]
	}

	return b.Select("question_index", "email").
		From(followersTable).
		Where(where).
		OrderBy("question_index", "position").
		ToSql()
}

func buildDeleteFollowersQuery(b sq.StatementBuilderType, owner string, index int) (string, []any, error) {
	return b.Delete(followersTable).
		Where(sq.Eq{"owner": owner, "question_index": index}).
		ToSql()
}

// buildInsertFollowersQuery inserts followers in order. It must not be
// called with an empty slice.
func buildInsertFollowersQuery(b sq.StatementBuilderType, owner string, index int, followers []string) (string, []any, error) {
	insert := b.Insert(followersTable).Columns("owner", "question_index", "position", "email")
	for position, email := range followers {
		insert = insert.Values(owner, index, position, email)
	}
	return insert.ToSql()
}

func answeredAtValue(q models.Question) sql.NullTime {
	if q.AnsweredAt == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: q.AnsweredAt.UTC(), Valid: true}
}
