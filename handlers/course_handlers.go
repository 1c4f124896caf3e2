package handlers

import (
	"encoding/json"
	"net/http"

	"learning-portal-api/activity"
	"learning-portal-api/content"
	"learning-portal-api/models"
	"learning-portal-api/store"
	"learning-portal-api/utils"
)

type CourseHandlers struct {
	controller *activity.Controller
	progress   store.ProgressStore
	catalog    content.Catalog
}

func NewCourseHandlers(controller *activity.Controller, progress store.ProgressStore, catalog content.Catalog) *CourseHandlers {
	return &CourseHandlers{
		controller: controller,
		progress:   progress,
		catalog:    catalog,
	}
}

// ListCourses returns the catalog with the user's percent per course.
func (ch *CourseHandlers) ListCourses(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	session := getSessionFromContext(r.Context())

	courses := make([]models.CourseProgress, 0, len(ch.catalog))
	for _, course := range ch.catalog {
		courses = append(courses, models.CourseProgress{
			Course:  course,
			Percent: ch.progress.Get(session.Username, course.Name),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"courses": courses,
	})
}

// GetProgress returns the dashboard map of course name to percent. Courses
// without activity report 0.
func (ch *CourseHandlers) GetProgress(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	session := getSessionFromContext(r.Context())

	progress := make(map[string]int, len(ch.catalog))
	for _, course := range ch.catalog {
		progress[course.Name] = 0
	}
	for course, percent := range ch.progress.All(session.Username) {
		progress[course] = percent
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"progress": progress,
	})
}

// RecordActivity applies a progress update rule for a video view or an
// assignment submission.
func (ch *CourseHandlers) RecordActivity(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	session := getSessionFromContext(r.Context())

	var req models.ActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.LogHTTP("Invalid JSON in activity request: %v", err)
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if req.Kind != models.ActivityVideoView && req.Kind != models.ActivityAssignmentSubmit {
		http.Error(w, "Unknown activity kind", http.StatusBadRequest)
		return
	}

	if _, exists := ch.catalog.Lookup(req.Course); !exists {
		http.Error(w, "Unknown course", http.StatusBadRequest)
		return
	}

	percent, updated, err := ch.controller.Record(req.Kind, session.Username, req.Course)
	if err != nil {
		utils.LogError("Failed to record activity: %v", err)
		http.Error(w, "Failed to record activity", http.StatusInternalServerError)
		return
	}

	utils.LogHTTP("Activity %s for %s/%s -> %d%% (updated: %t)", req.Kind, session.Username, req.Course, percent, updated)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.ProgressUpdate{
		Course:  req.Course,
		Percent: percent,
		Updated: updated,
	})
}
