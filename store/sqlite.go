package store

import (
	"database/sql"
	"errors"
	"fmt"

	"learning-portal-api/models"
	"learning-portal-api/utils"

	"github.com/mattn/go-sqlite3"
)

// SQLiteStore implements all three stores on an embedded database. It is the
// substitutable backing store behind the same contracts as the JSON documents.
type SQLiteStore struct {
	*sql.DB
}

func OpenSQLite(dbPath string) (*SQLiteStore, error) {
	utils.LogStartup("Initializing sqlite store at: %s", dbPath)

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		utils.LogError("Failed to open database: %v", err)
		return nil, err
	}

	if err := db.Ping(); err != nil {
		utils.LogError("Failed to ping database: %v", err)
		return nil, err
	}

	utils.LogStartup("Database connection established")

	if err := createTables(db); err != nil {
		utils.LogError("Failed to create tables: %v", err)
		return nil, err
	}

	utils.LogStartup("Database tables initialized successfully")
	return &SQLiteStore{db}, nil
}

func createTables(db *sql.DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS users (
			username TEXT PRIMARY KEY,
			password_hash TEXT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS progress (
			username TEXT NOT NULL,
			course TEXT NOT NULL,
			percent INTEGER NOT NULL,
			PRIMARY KEY (username, course)
		)`,

		`CREATE TABLE IF NOT EXISTS quiz_log (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL,
			subject TEXT NOT NULL,
			question TEXT NOT NULL,
			your_answer TEXT NOT NULL,
			correct_answer TEXT NOT NULL,
			result TEXT NOT NULL,
			explanation TEXT NOT NULL
		)`,
	}

	for i, query := range queries {
		utils.LogDB("Creating table %d/%d", i+1, len(queries))
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_quiz_log_username ON quiz_log(username)",
	}

	for _, index := range indexes {
		if _, err := db.Exec(index); err != nil {
			utils.LogDB("Failed to create index (non-fatal): %v", err)
		}
	}

	return nil
}

func (s *SQLiteStore) Create(username, passwordHash string) error {
	utils.LogDB("Creating user: %s", username)

	_, err := s.Exec(`INSERT INTO users (username, password_hash) VALUES (?, ?)`, username, passwordHash)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
			utils.LogDB("Signup rejected, user %s already exists", username)
			return ErrUserExists
		}
		utils.LogError("Create user failed: %v", err)
		return err
	}

	return nil
}

func (s *SQLiteStore) GetHash(username string) (string, bool) {
	var hash string
	err := s.QueryRow(`SELECT password_hash FROM users WHERE username = ?`, username).Scan(&hash)
	if err != nil {
		if err != sql.ErrNoRows {
			utils.LogError("GetHash(%s) failed: %v", username, err)
		}
		return "", false
	}
	return hash, true
}

func (s *SQLiteStore) Get(username, course string) int {
	var percent int
	err := s.QueryRow(`SELECT percent FROM progress WHERE username = ? AND course = ?`, username, course).Scan(&percent)
	if err != nil {
		if err != sql.ErrNoRows {
			utils.LogError("Get progress(%s, %s) failed: %v", username, course, err)
		}
		return 0
	}
	return percent
}

func (s *SQLiteStore) Set(username, course string, percent int) error {
	_, err := s.Exec(`
		INSERT INTO progress (username, course, percent) VALUES (?, ?, ?)
		ON CONFLICT (username, course) DO UPDATE SET percent = excluded.percent
	`, username, course, percent)
	if err != nil {
		utils.LogError("Set progress failed: %v", err)
		return err
	}

	utils.LogDB("Progress for %s/%s set to %d%%", username, course, percent)
	return nil
}

func (s *SQLiteStore) All(username string) map[string]int {
	all := make(map[string]int)

	rows, err := s.Query(`SELECT course, percent FROM progress WHERE username = ?`, username)
	if err != nil {
		utils.LogError("All progress(%s) failed: %v", username, err)
		return all
	}
	defer rows.Close()

	for rows.Next() {
		var course string
		var percent int
		if err := rows.Scan(&course, &percent); err != nil {
			utils.LogError("Failed to scan progress row: %v", err)
			break
		}
		all[course] = percent
	}

	return all
}

func (s *SQLiteStore) Append(username string, attempt models.QuizAttempt) error {
	_, err := s.Exec(`
		INSERT INTO quiz_log (username, subject, question, your_answer, correct_answer, result, explanation)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, username, attempt.Subject, attempt.Question, attempt.YourAnswer, attempt.CorrectAnswer, attempt.Result, attempt.Explanation)
	if err != nil {
		utils.LogError("Append quiz attempt failed: %v", err)
		return err
	}

	utils.LogDB("Quiz attempt appended for %s (%s)", username, attempt.Result)
	return nil
}

func (s *SQLiteStore) List(username string) []models.QuizAttempt {
	attempts := []models.QuizAttempt{}

	rows, err := s.Query(`
		SELECT subject, question, your_answer, correct_answer, result, explanation
		FROM quiz_log WHERE username = ? ORDER BY id
	`, username)
	if err != nil {
		utils.LogError("List quiz log(%s) failed: %v", username, err)
		return attempts
	}
	defer rows.Close()

	for rows.Next() {
		var a models.QuizAttempt
		if err := rows.Scan(&a.Subject, &a.Question, &a.YourAnswer, &a.CorrectAnswer, &a.Result, &a.Explanation); err != nil {
			utils.LogError("Failed to scan quiz-log row: %v", err)
			break
		}
		attempts = append(attempts, a)
	}

	return attempts
}
