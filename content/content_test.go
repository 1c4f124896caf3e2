package content

import (
	"os"
	"path/filepath"
	"testing"

	"learning-portal-api/models"
)

func TestDefaultCatalog(t *testing.T) {
	catalog := DefaultCatalog()

	if len(catalog) != 10 {
		t.Fatalf("DefaultCatalog has %d courses, want 10", len(catalog))
	}

	course, exists := catalog.Lookup("Python Basics")
	if !exists {
		t.Fatal("Lookup(Python Basics) not found")
	}
	if course.Description != "Learn Python from scratch" {
		t.Errorf("unexpected description: %s", course.Description)
	}

	if _, exists := catalog.Lookup("python basics"); exists {
		t.Error("Lookup should be case-sensitive")
	}
}

func TestLoadCatalogFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	data := `[{"name": "Go Basics", "description": "Learn Go"}]`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	catalog, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog returned error: %v", err)
	}
	if len(catalog) != 1 || catalog[0].Name != "Go Basics" {
		t.Errorf("unexpected catalog: %+v", catalog)
	}
}

func TestLoadCatalogEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, []byte(`[]`), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadCatalog(path); err == nil {
		t.Error("LoadCatalog should reject an empty catalog")
	}
}

func TestDefaultBank(t *testing.T) {
	bank := DefaultBank()

	if err := bank.validate(); err != nil {
		t.Fatalf("DefaultBank is invalid: %v", err)
	}

	subjects := bank.Subjects()
	want := []string{"Data Science", "Python Basics"}
	if len(subjects) != len(want) {
		t.Fatalf("Subjects = %v, want %v", subjects, want)
	}
	for i := range want {
		if subjects[i] != want[i] {
			t.Errorf("Subjects[%d] = %s, want %s", i, subjects[i], want[i])
		}
	}
}

func TestRandom(t *testing.T) {
	bank := DefaultBank()

	for i := 0; i < 20; i++ {
		question, exists := bank.Random("Python Basics")
		if !exists {
			t.Fatal("Random(Python Basics) reported no question")
		}
		if _, found := bank.Find("Python Basics", question.Question); !found {
			t.Fatalf("Random returned a question not in the bank: %s", question.Question)
		}
	}

	if _, exists := bank.Random("Quantum Computing"); exists {
		t.Error("Random with unknown subject should report false")
	}
}

func TestFind(t *testing.T) {
	bank := DefaultBank()

	question, exists := bank.Find("Python Basics", "What is the output of print(2 * 3)?")
	if !exists {
		t.Fatal("Find did not locate the default question")
	}
	if question.Answer != "6" {
		t.Errorf("Answer = %s, want 6", question.Answer)
	}

	if _, exists := bank.Find("Python Basics", "nope"); exists {
		t.Error("Find with unknown question should report false")
	}
}

func TestGrade(t *testing.T) {
	question := models.Question{Question: "q", Choices: []string{"a", "B"}, Answer: "B"}

	if got := Grade(question, "B"); got != models.ResultCorrect {
		t.Errorf("Grade(B) = %s, want %s", got, models.ResultCorrect)
	}
	// Exact string equality, no case folding
	if got := Grade(question, "b"); got != models.ResultIncorrect {
		t.Errorf("Grade(b) = %s, want %s", got, models.ResultIncorrect)
	}
	if got := Grade(question, ""); got != models.ResultIncorrect {
		t.Errorf("Grade(empty) = %s, want %s", got, models.ResultIncorrect)
	}
}

func TestLoadBankRejectsBadAnswer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "questions.json")
	data := `{"Go": [{"question": "q?", "choices": ["a", "b"], "answer": "c", "explanation": "e"}]}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadBank(path); err == nil {
		t.Error("LoadBank should reject an answer that is not among the choices")
	}
}
