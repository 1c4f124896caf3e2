package content

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"sort"

	"learning-portal-api/models"
	"learning-portal-api/utils"
)

// Bank maps a quiz subject to its question list. The bank is injectable
// configuration: the default content ships with the binary and a JSON file
// can replace it wholesale.
type Bank map[string][]models.Question

// DefaultBank is the built-in question bank.
func DefaultBank() Bank {
	return Bank{
		"Python Basics": {
			{
				Question:    "What is the output of print(2 * 3)?",
				Choices:     []string{"5", "6", "8", "9"},
				Answer:      "6",
				Explanation: "Basic multiplication in Python.",
			},
		},
		"Data Science": {
			{
				Question:    "Which library is commonly used for data manipulation?",
				Choices:     []string{"NumPy", "Pandas", "Flask"},
				Answer:      "Pandas",
				Explanation: "Pandas provides powerful dataframes.",
			},
		},
	}
}

// LoadBank reads a question bank from a JSON file. An empty path keeps the
// default bank.
func LoadBank(path string) (Bank, error) {
	if path == "" {
		return DefaultBank(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var bank Bank
	if err := json.Unmarshal(data, &bank); err != nil {
		return nil, fmt.Errorf("invalid question file %s: %w", path, err)
	}

	if err := bank.validate(); err != nil {
		return nil, fmt.Errorf("invalid question file %s: %w", path, err)
	}

	utils.LogStartup("Loaded question bank with %d subjects from %s", len(bank), path)
	return bank, nil
}

func (b Bank) validate() error {
	if len(b) == 0 {
		return fmt.Errorf("no subjects defined")
	}

	for subject, questions := range b {
		if len(questions) == 0 {
			return fmt.Errorf("subject %q has no questions", subject)
		}
		for _, q := range questions {
			if q.Question == "" || len(q.Choices) < 2 {
				return fmt.Errorf("subject %q has a malformed question", subject)
			}
			found := false
			for _, choice := range q.Choices {
				if choice == q.Answer {
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("subject %q question %q: answer is not among the choices", subject, q.Question)
			}
		}
	}

	return nil
}

// Subjects lists the bank's subjects in sorted order.
func (b Bank) Subjects() []string {
	subjects := make([]string, 0, len(b))
	for subject := range b {
		subjects = append(subjects, subject)
	}
	sort.Strings(subjects)
	return subjects
}

// Random picks one question uniformly, with replacement across calls.
func (b Bank) Random(subject string) (models.Question, bool) {
	questions := b[subject]
	if len(questions) == 0 {
		return models.Question{}, false
	}
	return questions[rand.Intn(len(questions))], true
}

// Find matches a question by its exact text within a subject.
func (b Bank) Find(subject, question string) (models.Question, bool) {
	for _, q := range b[subject] {
		if q.Question == question {
			return q, true
		}
	}
	return models.Question{}, false
}

// Grade compares the selected option against the stored answer. Exact string
// equality, no partial credit, no case folding.
func Grade(q models.Question, answer string) string {
	if answer == q.Answer {
		return models.ResultCorrect
	}
	return models.ResultIncorrect
}
