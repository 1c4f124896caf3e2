package store

import (
	"sync"

	"learning-portal-api/utils"
)

// JSONCredentialStore persists the credential document, a flat
// {username: password_hash} object.
type JSONCredentialStore struct {
	file  documentFile
	mutex sync.RWMutex
	users map[string]string
}

func NewJSONCredentialStore(path string) (*JSONCredentialStore, error) {
	s := &JSONCredentialStore{
		file:  documentFile{path: path},
		users: make(map[string]string),
	}

	if err := s.file.load(&s.users); err != nil {
		utils.LogError("Failed to load credential document %s: %v", path, err)
		return nil, err
	}

	utils.LogStore("Loaded %d users from %s", len(s.users), path)
	return s, nil
}

func (s *JSONCredentialStore) Create(username, passwordHash string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.users[username]; exists {
		utils.LogStore("Signup rejected, user %s already exists", username)
		return ErrUserExists
	}

	s.users[username] = passwordHash
	if err := s.file.save(s.users); err != nil {
		// Keep memory and document in sync on a failed write
		delete(s.users, username)
		utils.LogError("Failed to save credential document: %v", err)
		return err
	}

	utils.LogStore("User %s created (%d users total)", username, len(s.users))
	return nil
}

func (s *JSONCredentialStore) GetHash(username string) (string, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	hash, exists := s.users[username]
	return hash, exists
}
