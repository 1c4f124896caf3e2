package store

import (
	"sync"

	"learning-portal-api/utils"
)

// JSONProgressStore persists the progress document, a
// {username: {course: percent}} object. Records are created lazily on first
// write; Get reports 0 for anything never written.
type JSONProgressStore struct {
	file     documentFile
	mutex    sync.RWMutex
	progress map[string]map[string]int
}

func NewJSONProgressStore(path string) (*JSONProgressStore, error) {
	s := &JSONProgressStore{
		file:     documentFile{path: path},
		progress: make(map[string]map[string]int),
	}

	if err := s.file.load(&s.progress); err != nil {
		utils.LogError("Failed to load progress document %s: %v", path, err)
		return nil, err
	}

	utils.LogStore("Loaded progress for %d users from %s", len(s.progress), path)
	return s, nil
}

func (s *JSONProgressStore) Get(username, course string) int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.progress[username][course]
}

func (s *JSONProgressStore) Set(username, course string, percent int) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	courses, exists := s.progress[username]
	if !exists {
		courses = make(map[string]int)
		s.progress[username] = courses
	}

	previous, hadPrevious := courses[course]
	courses[course] = percent

	if err := s.file.save(s.progress); err != nil {
		if hadPrevious {
			courses[course] = previous
		} else {
			delete(courses, course)
		}
		utils.LogError("Failed to save progress document: %v", err)
		return err
	}

	utils.LogStore("Progress for %s/%s set to %d%%", username, course, percent)
	return nil
}

func (s *JSONProgressStore) All(username string) map[string]int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	all := make(map[string]int, len(s.progress[username]))
	for course, percent := range s.progress[username] {
		all[course] = percent
	}
	return all
}
