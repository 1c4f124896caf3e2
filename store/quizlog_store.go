package store

import (
	"sync"

	"learning-portal-api/models"
	"learning-portal-api/utils"
)

// JSONQuizLogStore persists the quiz-log document, a {username: [attempt]}
// object. Sequences are append-only and keep insertion order.
type JSONQuizLogStore struct {
	file  documentFile
	mutex sync.RWMutex
	log   map[string][]models.QuizAttempt
}

func NewJSONQuizLogStore(path string) (*JSONQuizLogStore, error) {
	s := &JSONQuizLogStore{
		file: documentFile{path: path},
		log:  make(map[string][]models.QuizAttempt),
	}

	if err := s.file.load(&s.log); err != nil {
		utils.LogError("Failed to load quiz-log document %s: %v", path, err)
		return nil, err
	}

	utils.LogStore("Loaded quiz logs for %d users from %s", len(s.log), path)
	return s, nil
}

func (s *JSONQuizLogStore) Append(username string, attempt models.QuizAttempt) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.log[username] = append(s.log[username], attempt)

	if err := s.file.save(s.log); err != nil {
		s.log[username] = s.log[username][:len(s.log[username])-1]
		utils.LogError("Failed to save quiz-log document: %v", err)
		return err
	}

	utils.LogStore("Quiz attempt appended for %s (%d total, %s)", username, len(s.log[username]), attempt.Result)
	return nil
}

func (s *JSONQuizLogStore) List(username string) []models.QuizAttempt {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	attempts := make([]models.QuizAttempt, len(s.log[username]))
	copy(attempts, s.log[username])
	return attempts
}
