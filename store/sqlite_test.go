package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learning-portal-api/models"
)

func newTestSQLite(t *testing.T) *SQLiteStore {
	t.Helper()

	db, err := OpenSQLite(filepath.Join(t.TempDir(), "portal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSQLiteCredentials(t *testing.T) {
	db := newTestSQLite(t)

	_, exists := db.GetHash("alice")
	assert.False(t, exists)

	require.NoError(t, db.Create("alice", "hash-a"))

	hash, exists := db.GetHash("alice")
	assert.True(t, exists)
	assert.Equal(t, "hash-a", hash)

	err := db.Create("alice", "hash-b")
	assert.True(t, errors.Is(err, ErrUserExists))

	hash, _ = db.GetHash("alice")
	assert.Equal(t, "hash-a", hash)
}

func TestSQLiteProgress(t *testing.T) {
	db := newTestSQLite(t)

	assert.Equal(t, 0, db.Get("alice", "Python Basics"))

	require.NoError(t, db.Set("alice", "Python Basics", 10))
	require.NoError(t, db.Set("alice", "Data Science", 70))
	require.NoError(t, db.Set("alice", "Python Basics", 50))

	assert.Equal(t, 50, db.Get("alice", "Python Basics"))
	assert.Equal(t, map[string]int{"Python Basics": 50, "Data Science": 70}, db.All("alice"))
	assert.Empty(t, db.All("bob"))
}

func TestSQLiteQuizLog(t *testing.T) {
	db := newTestSQLite(t)

	assert.Empty(t, db.List("alice"))

	attempts := []models.QuizAttempt{
		{Subject: "Python Basics", Question: "q1", YourAnswer: "6", CorrectAnswer: "6", Result: models.ResultCorrect, Explanation: "e1"},
		{Subject: "Python Basics", Question: "q2", YourAnswer: "5", CorrectAnswer: "6", Result: models.ResultIncorrect, Explanation: "e2"},
	}
	for _, attempt := range attempts {
		require.NoError(t, db.Append("alice", attempt))
	}

	assert.Equal(t, attempts, db.List("alice"))
	assert.Empty(t, db.List("bob"))
}

func TestOpenSQLiteBackend(t *testing.T) {
	stores, err := Open(BackendSQLite, "", filepath.Join(t.TempDir(), "portal.db"))
	require.NoError(t, err)
	defer stores.Close()

	require.NoError(t, stores.Credentials.Create("alice", "hash"))

	hash, exists := stores.Credentials.GetHash("alice")
	assert.True(t, exists)
	assert.Equal(t, "hash", hash)
}
