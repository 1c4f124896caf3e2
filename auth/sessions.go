package auth

import (
	"sync"
	"time"

	"learning-portal-api/models"
	"learning-portal-api/utils"
)

// SessionStore keeps active sessions in memory. Sessions never expire on
// their own; they end on explicit logout or process restart, and the quiz
// count they carry is rederived from the quiz log at the next login.
type SessionStore struct {
	sessions map[string]*models.Session
	mutex    sync.RWMutex
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*models.Session),
	}
}

func (s *SessionStore) CreateSession(username string, quizCount int) *models.Session {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	sessionID := utils.GenerateSessionID()
	session := &models.Session{
		ID:        sessionID,
		Username:  username,
		QuizCount: quizCount,
		CreatedAt: time.Now(),
	}

	s.sessions[sessionID] = session
	return session
}

func (s *SessionStore) GetSession(sessionID string) (*models.Session, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	session, exists := s.sessions[sessionID]
	return session, exists
}

func (s *SessionStore) DeleteSession(sessionID string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.sessions, sessionID)
}

// IncrementQuizCount bumps the answered-question counter of a session by one
// and returns the new value. Unknown sessions report 0.
func (s *SessionStore) IncrementQuizCount(sessionID string) int {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	session, exists := s.sessions[sessionID]
	if !exists {
		return 0
	}
	session.QuizCount++
	return session.QuizCount
}
