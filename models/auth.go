package models

import "time"

// SignupRequest for creating an account
type SignupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest for authentication
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Session represents an active user session. QuizCount is transient: it is
// seeded from the quiz-log length at login and discarded on logout.
type Session struct {
	ID        string    `json:"session_id"`
	Username  string    `json:"username"`
	QuizCount int       `json:"quiz_count"`
	CreatedAt time.Time `json:"created_at"`
}

// ProfileRequest for the profile form. Validated but never persisted.
type ProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
