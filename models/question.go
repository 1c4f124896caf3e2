package models

// Quiz results as stored in the quiz log.
const (
	ResultCorrect   = "Correct"
	ResultIncorrect = "Incorrect"
)

// Question is one quiz question in the bank.
type Question struct {
	Question    string   `json:"question"`
	Choices     []string `json:"choices"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation"`
}

// QuizAttempt is one graded answer. Attempts are append-only: once written to
// the quiz log they are never edited or deleted.
type QuizAttempt struct {
	Subject       string `json:"subject"`
	Question      string `json:"question"`
	YourAnswer    string `json:"your_answer"`
	CorrectAnswer string `json:"correct_answer"`
	Result        string `json:"result"`
	Explanation   string `json:"explanation"`
}

// QuizAnswerRequest for submitting an answer to a bank question
type QuizAnswerRequest struct {
	Subject  string `json:"subject"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// QuizFinalRequest for the final quiz submission
type QuizFinalRequest struct {
	Subject string `json:"subject"`
}
