package store

import (
	"errors"
	"fmt"
	"path/filepath"

	"learning-portal-api/models"
	"learning-portal-api/utils"
)

// ErrUserExists is returned by CredentialStore.Create for a duplicate
// username. Signup must leave the store unchanged in that case.
var ErrUserExists = errors.New("username already exists")

// CredentialStore maps usernames to password hashes. Usernames are
// case-sensitive and immutable once created.
type CredentialStore interface {
	Create(username, passwordHash string) error
	GetHash(username string) (string, bool)
}

// ProgressStore keeps per-user, per-course completion percentages. Get
// returns 0 when no record exists. The store performs no clamping; callers
// write values already constrained to [0,100].
type ProgressStore interface {
	Get(username, course string) int
	Set(username, course string, percent int) error
	All(username string) map[string]int
}

// QuizLogStore is an append-only record of graded quiz answers per user,
// insertion order preserved.
type QuizLogStore interface {
	Append(username string, attempt models.QuizAttempt) error
	List(username string) []models.QuizAttempt
}

// Storage backends selectable via STORAGE_BACKEND.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Stores bundles the three stores of one backend.
type Stores struct {
	Credentials CredentialStore
	Progress    ProgressStore
	QuizLog     QuizLogStore

	closer func() error
}

func (s *Stores) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer()
}

// Open wires up the configured backend. The JSON backend keeps one
// whole-document file per store under dataDir; the sqlite backend keeps
// everything in a single database file at dbPath.
func Open(backend, dataDir, dbPath string) (*Stores, error) {
	switch backend {
	case BackendJSON, "":
		utils.LogStartup("Opening JSON document stores in %s", dataDir)

		credentials, err := NewJSONCredentialStore(filepath.Join(dataDir, "users.json"))
		if err != nil {
			return nil, err
		}
		progress, err := NewJSONProgressStore(filepath.Join(dataDir, "progress.json"))
		if err != nil {
			return nil, err
		}
		quizLog, err := NewJSONQuizLogStore(filepath.Join(dataDir, "quiz_log.json"))
		if err != nil {
			return nil, err
		}

		return &Stores{Credentials: credentials, Progress: progress, QuizLog: quizLog}, nil

	case BackendSQLite:
		db, err := OpenSQLite(dbPath)
		if err != nil {
			return nil, err
		}
		return &Stores{Credentials: db, Progress: db, QuizLog: db, closer: db.Close}, nil

	default:
		return nil, fmt.Errorf("unknown storage backend: %s", backend)
	}
}
