package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learning-portal-api/models"
)

func TestJSONCredentialStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")

	s, err := NewJSONCredentialStore(path)
	require.NoError(t, err)

	_, exists := s.GetHash("alice")
	assert.False(t, exists)

	require.NoError(t, s.Create("alice", "hash-a"))

	hash, exists := s.GetHash("alice")
	assert.True(t, exists)
	assert.Equal(t, "hash-a", hash)

	// Duplicate signup leaves the store unchanged
	err = s.Create("alice", "hash-b")
	assert.True(t, errors.Is(err, ErrUserExists))

	hash, _ = s.GetHash("alice")
	assert.Equal(t, "hash-a", hash)

	// Usernames are case-sensitive
	require.NoError(t, s.Create("Alice", "hash-c"))
}

func TestJSONCredentialStoreReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")

	s, err := NewJSONCredentialStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Create("alice", "hash-a"))

	// A fresh store on the same document sees the user
	reopened, err := NewJSONCredentialStore(path)
	require.NoError(t, err)

	hash, exists := reopened.GetHash("alice")
	assert.True(t, exists)
	assert.Equal(t, "hash-a", hash)
}

func TestCredentialDocumentShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")

	s, err := NewJSONCredentialStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Create("alice", "deadbeef"))

	// The document is the legacy flat {username: hash} object
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]string
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, map[string]string{"alice": "deadbeef"}, doc)
}

func TestJSONProgressStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.json")

	s, err := NewJSONProgressStore(path)
	require.NoError(t, err)

	assert.Equal(t, 0, s.Get("alice", "Python Basics"))

	require.NoError(t, s.Set("alice", "Python Basics", 10))
	require.NoError(t, s.Set("alice", "Data Science", 70))
	assert.Equal(t, 10, s.Get("alice", "Python Basics"))

	all := s.All("alice")
	assert.Equal(t, map[string]int{"Python Basics": 10, "Data Science": 70}, all)

	// All returns a copy
	all["Python Basics"] = 99
	assert.Equal(t, 10, s.Get("alice", "Python Basics"))

	// Upsert overwrites
	require.NoError(t, s.Set("alice", "Python Basics", 50))
	assert.Equal(t, 50, s.Get("alice", "Python Basics"))

	reopened, err := NewJSONProgressStore(path)
	require.NoError(t, err)
	assert.Equal(t, 50, reopened.Get("alice", "Python Basics"))
	assert.Equal(t, 0, reopened.Get("bob", "Python Basics"))
}

func TestJSONQuizLogStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quiz_log.json")

	s, err := NewJSONQuizLogStore(path)
	require.NoError(t, err)

	assert.Empty(t, s.List("alice"))

	attempts := []models.QuizAttempt{
		{Subject: "Python Basics", Question: "q1", YourAnswer: "6", CorrectAnswer: "6", Result: models.ResultCorrect, Explanation: "e1"},
		{Subject: "Python Basics", Question: "q2", YourAnswer: "5", CorrectAnswer: "6", Result: models.ResultIncorrect, Explanation: "e2"},
		{Subject: "Data Science", Question: "q3", YourAnswer: "Pandas", CorrectAnswer: "Pandas", Result: models.ResultCorrect, Explanation: "e3"},
	}
	for _, attempt := range attempts {
		require.NoError(t, s.Append("alice", attempt))
	}

	listed := s.List("alice")
	require.Len(t, listed, 3)
	assert.Equal(t, attempts, listed)

	// The returned slice is a copy; the log itself is immutable
	listed[0].Result = models.ResultIncorrect
	assert.Equal(t, models.ResultCorrect, s.List("alice")[0].Result)

	reopened, err := NewJSONQuizLogStore(path)
	require.NoError(t, err)
	assert.Equal(t, attempts, reopened.List("alice"))
}

func TestOpenJSONBackend(t *testing.T) {
	dir := t.TempDir()

	stores, err := Open(BackendJSON, dir, "")
	require.NoError(t, err)
	defer stores.Close()

	require.NoError(t, stores.Credentials.Create("alice", "hash"))
	require.NoError(t, stores.Progress.Set("alice", "Python Basics", 10))
	require.NoError(t, stores.QuizLog.Append("alice", models.QuizAttempt{Subject: "Python Basics", Result: models.ResultCorrect}))

	assert.FileExists(t, filepath.Join(dir, "users.json"))
	assert.FileExists(t, filepath.Join(dir, "progress.json"))
	assert.FileExists(t, filepath.Join(dir, "quiz_log.json"))
}

func TestOpenUnknownBackend(t *testing.T) {
	_, err := Open("mongo", t.TempDir(), "")
	assert.Error(t, err)
}
