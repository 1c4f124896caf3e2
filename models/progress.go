package models

// Activity kinds accepted by the /activity endpoint. Quiz answers and the
// final quiz submission go through the quiz endpoints instead.
const (
	ActivityVideoView        = "video_view"
	ActivityAssignmentSubmit = "assignment_submit"
)

// ActivityRequest for recording a course activity
type ActivityRequest struct {
	Kind   string `json:"kind"`
	Course string `json:"course"`
}

// ProgressUpdate reports the percent after an activity rule was applied.
// Updated is false when the rule left the stored percent alone.
type ProgressUpdate struct {
	Course  string `json:"course"`
	Percent int    `json:"percent"`
	Updated bool   `json:"updated"`
}
