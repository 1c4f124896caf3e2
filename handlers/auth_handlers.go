package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"learning-portal-api/auth"
	"learning-portal-api/models"
	"learning-portal-api/store"
	"learning-portal-api/utils"
)

type AuthHandlers struct {
	credentials  store.CredentialStore
	quizLog      store.QuizLogStore
	sessionStore *auth.SessionStore
	hashPolicy   string
}

func NewAuthHandlers(credentials store.CredentialStore, quizLog store.QuizLogStore, sessionStore *auth.SessionStore, hashPolicy string) *AuthHandlers {
	return &AuthHandlers{
		credentials:  credentials,
		quizLog:      quizLog,
		sessionStore: sessionStore,
		hashPolicy:   hashPolicy,
	}
}

func (ah *AuthHandlers) HandleAuth(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/auth/")

	switch {
	case path == "signup" && r.Method == http.MethodPost:
		ah.signup(w, r)
	case path == "login" && r.Method == http.MethodPost:
		ah.login(w, r)
	case path == "logout" && r.Method == http.MethodPost:
		ah.logout(w, r)
	case path == "me" && r.Method == http.MethodGet:
		ah.getCurrentSession(w, r)
	default:
		http.Error(w, "Not found", http.StatusNotFound)
	}
}

func (ah *AuthHandlers) signup(w http.ResponseWriter, r *http.Request) {
	utils.LogHTTP("POST /auth/signup")

	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.LogHTTP("Invalid JSON in signup request: %v", err)
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if err := utils.ValidateSignupRequest(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	passwordHash, err := utils.HashPassword(req.Password, ah.hashPolicy)
	if err != nil {
		utils.LogError("Failed to hash password: %v", err)
		http.Error(w, "Failed to create user", http.StatusInternalServerError)
		return
	}

	if err := ah.credentials.Create(req.Username, passwordHash); err != nil {
		if errors.Is(err, store.ErrUserExists) {
			http.Error(w, "Username already exists", http.StatusConflict)
			return
		}
		utils.LogError("Failed to create user: %v", err)
		http.Error(w, "Failed to create user", http.StatusInternalServerError)
		return
	}

	utils.LogHTTP("User signed up successfully: %s", req.Username)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Signup successful! You can log in now.",
	})
}

func (ah *AuthHandlers) login(w http.ResponseWriter, r *http.Request) {
	utils.LogHTTP("POST /auth/login")

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.LogHTTP("Invalid JSON in login request: %v", err)
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	hash, exists := ah.credentials.GetHash(req.Username)
	if !exists || !utils.CheckPassword(hash, req.Password) {
		utils.LogHTTP("Login failed for user: %s", req.Username)
		http.Error(w, "Invalid username or password", http.StatusUnauthorized)
		return
	}

	// The session quiz count starts at the user's quiz-log length
	quizCount := len(ah.quizLog.List(req.Username))
	session := ah.sessionStore.CreateSession(req.Username, quizCount)

	utils.LogHTTP("User logged in successfully: %s (%d quizzes answered)", req.Username, quizCount)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"session": session,
		"message": "Login successful",
	})
}

func (ah *AuthHandlers) logout(w http.ResponseWriter, r *http.Request) {
	utils.LogHTTP("POST /auth/logout")

	sessionID := extractSessionFromRequest(r)
	if sessionID != "" {
		ah.sessionStore.DeleteSession(sessionID)
		if len(sessionID) >= 8 {
			utils.LogHTTP("Session %s destroyed", sessionID[:8]+"...")
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Logout successful",
	})
}

func (ah *AuthHandlers) getCurrentSession(w http.ResponseWriter, r *http.Request) {
	session := getSessionFromRequest(r, ah.sessionStore)
	if session == nil {
		http.Error(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(session)
}

// SaveProfile validates the profile form. A valid profile is acknowledged
// but intentionally not persisted anywhere.
func (ah *AuthHandlers) SaveProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.ProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if err := utils.ValidateProfileRequest(&req); err != nil {
		utils.LogHTTP("Profile validation failed: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": fmt.Sprintf("Profile saved for %s!", req.Name),
	})
}
