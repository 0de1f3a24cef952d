package models

// Credentials is the JSON body of the register and login endpoints.
// Email is required on registration only.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email,omitempty"`
}

// User converts the request body into an account model.
func (c Credentials) User() User {
	return User{
		Username: c.Username,
		Password: c.Password,
		Email:    c.Email,
	}
}

// QuestionBody is the JSON body of a question submission. Email is only
// used when the submitter is not logged in.
type QuestionBody struct {
	Text   string `json:"text"`
	Author string `json:"author"`
	Email  string `json:"email"`
}

// FollowBody is the optional JSON body of a follow request.
type FollowBody struct {
	Email string `json:"email"`
}

// AnswerBody is the JSON body of an answer request.
type AnswerBody struct {
	Link string `json:"link"`
}
