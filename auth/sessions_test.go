package auth

import "testing"

func TestSessionLifecycle(t *testing.T) {
	store := NewSessionStore()

	session := store.CreateSession("alice", 3)
	if session.ID == "" {
		t.Fatal("CreateSession returned empty ID")
	}
	if session.Username != "alice" || session.QuizCount != 3 {
		t.Errorf("session = %+v, want alice with quiz count 3", session)
	}

	got, exists := store.GetSession(session.ID)
	if !exists || got.Username != "alice" {
		t.Errorf("GetSession = (%+v, %t), want the created session", got, exists)
	}

	store.DeleteSession(session.ID)
	if _, exists := store.GetSession(session.ID); exists {
		t.Error("session still present after DeleteSession")
	}
}

func TestSessionIDsAreUnique(t *testing.T) {
	store := NewSessionStore()

	a := store.CreateSession("alice", 0)
	b := store.CreateSession("alice", 0)
	if a.ID == b.ID {
		t.Error("two sessions share the same ID")
	}
}

func TestIncrementQuizCount(t *testing.T) {
	store := NewSessionStore()
	session := store.CreateSession("alice", 14)

	if got := store.IncrementQuizCount(session.ID); got != 15 {
		t.Errorf("IncrementQuizCount = %d, want 15", got)
	}

	got, _ := store.GetSession(session.ID)
	if got.QuizCount != 15 {
		t.Errorf("QuizCount = %d, want 15", got.QuizCount)
	}

	if got := store.IncrementQuizCount("unknown"); got != 0 {
		t.Errorf("IncrementQuizCount(unknown) = %d, want 0", got)
	}
}
