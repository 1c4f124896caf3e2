package handlers

import (
	"net/http"

	"learning-portal-api/activity"
	"learning-portal-api/auth"
	"learning-portal-api/content"
	"learning-portal-api/store"
	"learning-portal-api/utils"
)

// API wrapper to hold all handlers
type API struct {
	authHandlers   *AuthHandlers
	courseHandlers *CourseHandlers
	quizHandlers   *QuizHandlers
}

func NewAPI(stores *store.Stores, sessionStore *auth.SessionStore, controller *activity.Controller, catalog content.Catalog, bank content.Bank, hashPolicy string) *API {
	return &API{
		authHandlers:   NewAuthHandlers(stores.Credentials, stores.QuizLog, sessionStore, hashPolicy),
		courseHandlers: NewCourseHandlers(controller, stores.Progress, catalog),
		quizHandlers:   NewQuizHandlers(controller, stores.QuizLog, sessionStore, bank),
	}
}

func NewRouter(stores *store.Stores, sessionStore *auth.SessionStore, controller *activity.Controller, catalog content.Catalog, bank content.Bank, hashPolicy string) http.Handler {
	api := NewAPI(stores, sessionStore, controller, catalog, bank, hashPolicy)

	mux := http.NewServeMux()

	// Health check (no auth required)
	mux.HandleFunc("/health", healthCheck)

	// Auth endpoints (handle their own auth as needed)
	mux.HandleFunc("/auth/", api.authHandlers.HandleAuth)

	// Catalog and progress routes with auth
	mux.HandleFunc("/courses", authMiddleware(api.courseHandlers.ListCourses, sessionStore))
	mux.HandleFunc("/progress", authMiddleware(api.courseHandlers.GetProgress, sessionStore))
	mux.HandleFunc("/activity", authMiddleware(api.courseHandlers.RecordActivity, sessionStore))

	// Quiz routes with auth
	mux.HandleFunc("/quiz/next", authMiddleware(api.quizHandlers.NextQuestion, sessionStore))
	mux.HandleFunc("/quiz/answer", authMiddleware(api.quizHandlers.SubmitAnswer, sessionStore))
	mux.HandleFunc("/quiz/final", authMiddleware(api.quizHandlers.FinalSubmit, sessionStore))
	mux.HandleFunc("/quiz/log", authMiddleware(api.quizHandlers.ListQuizLog, sessionStore))

	// Profile form with auth
	mux.HandleFunc("/profile", authMiddleware(api.authHandlers.SaveProfile, sessionStore))

	return corsMiddleware(loggingMiddleware(mux))
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	utils.LogHTTP("Health check requested")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
