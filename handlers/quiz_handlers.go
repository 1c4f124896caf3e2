package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"learning-portal-api/activity"
	"learning-portal-api/auth"
	"learning-portal-api/content"
	"learning-portal-api/models"
	"learning-portal-api/store"
	"learning-portal-api/utils"
)

type QuizHandlers struct {
	controller   *activity.Controller
	quizLog      store.QuizLogStore
	sessionStore *auth.SessionStore
	bank         content.Bank
}

func NewQuizHandlers(controller *activity.Controller, quizLog store.QuizLogStore, sessionStore *auth.SessionStore, bank content.Bank) *QuizHandlers {
	return &QuizHandlers{
		controller:   controller,
		quizLog:      quizLog,
		sessionStore: sessionStore,
		bank:         bank,
	}
}

// NextQuestion returns a random question for a subject, answer withheld.
func (qh *QuizHandlers) NextQuestion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	subject := r.URL.Query().Get("subject")
	question, exists := qh.bank.Random(subject)
	if !exists {
		http.Error(w, "Unknown subject", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"subject":  subject,
		"subjects": qh.bank.Subjects(),
		"question": question.Question,
		"choices":  question.Choices,
	})
}

// SubmitAnswer grades an answer, appends it to the quiz log, applies the quiz
// progress rule and bumps the session quiz count.
func (qh *QuizHandlers) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	session := getSessionFromContext(r.Context())

	var req models.QuizAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.LogHTTP("Invalid JSON in quiz answer: %v", err)
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	question, exists := qh.bank.Find(req.Subject, req.Question)
	if !exists {
		http.Error(w, "Unknown question", http.StatusBadRequest)
		return
	}

	result := content.Grade(question, req.Answer)

	attempt := models.QuizAttempt{
		Subject:       req.Subject,
		Question:      question.Question,
		YourAnswer:    req.Answer,
		CorrectAnswer: question.Answer,
		Result:        result,
		Explanation:   question.Explanation,
	}

	if err := qh.quizLog.Append(session.Username, attempt); err != nil {
		utils.LogError("Failed to append quiz attempt: %v", err)
		http.Error(w, "Failed to record answer", http.StatusInternalServerError)
		return
	}

	// Progress and quiz count move on every answer, correct or not
	percent, _, err := qh.controller.RecordQuizAnswer(session.Username, req.Subject)
	if err != nil {
		utils.LogError("Failed to update quiz progress: %v", err)
		http.Error(w, "Failed to update progress", http.StatusInternalServerError)
		return
	}

	quizCount := qh.sessionStore.IncrementQuizCount(session.ID)

	utils.LogHTTP("Quiz answer for %s/%s: %s (count %d, %d%%)", session.Username, req.Subject, result, quizCount, percent)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"result":         result,
		"explanation":    question.Explanation,
		"percent":        percent,
		"quiz_count":     quizCount,
		"final_unlocked": quizCount >= activity.FinalSubmitThreshold,
	})
}

// FinalSubmit completes a subject once enough questions have been answered in
// this session.
func (qh *QuizHandlers) FinalSubmit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	session := getSessionFromContext(r.Context())

	var req models.QuizFinalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if _, exists := qh.bank[req.Subject]; !exists {
		http.Error(w, "Unknown subject", http.StatusBadRequest)
		return
	}

	if session.QuizCount < activity.FinalSubmitThreshold {
		utils.LogHTTP("Final submit rejected for %s: %d of %d quizzes", session.Username, session.QuizCount, activity.FinalSubmitThreshold)
		http.Error(w, fmt.Sprintf("You have completed %d quizzes. %d required to submit.", session.QuizCount, activity.FinalSubmitThreshold), http.StatusForbidden)
		return
	}

	percent, updated, err := qh.controller.RecordFinalSubmit(session.Username, req.Subject)
	if err != nil {
		utils.LogError("Failed to record final submit: %v", err)
		http.Error(w, "Failed to record final submit", http.StatusInternalServerError)
		return
	}

	utils.LogHTTP("Final submit for %s/%s -> %d%%", session.Username, req.Subject, percent)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Final submission done! Congrats!",
		"subject": req.Subject,
		"percent": percent,
		"updated": updated,
	})
}

// ListQuizLog returns the user's attempts in insertion order, optionally
// filtered by result.
func (qh *QuizHandlers) ListQuizLog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	session := getSessionFromContext(r.Context())

	filter := r.URL.Query().Get("result")
	if filter != "" && filter != models.ResultCorrect && filter != models.ResultIncorrect {
		http.Error(w, "Invalid result filter", http.StatusBadRequest)
		return
	}

	attempts := qh.quizLog.List(session.Username)
	if filter != "" {
		filtered := make([]models.QuizAttempt, 0, len(attempts))
		for _, attempt := range attempts {
			if attempt.Result == filter {
				filtered = append(filtered, attempt)
			}
		}
		attempts = filtered
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"attempts": attempts,
		"total":    len(attempts),
	})
}
