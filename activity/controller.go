package activity

import (
	"fmt"

	"learning-portal-api/models"
	"learning-portal-api/store"
	"learning-portal-api/utils"
)

// Progress floors and caps per activity kind.
const (
	VideoFloor         = 10
	AssignmentFloor    = 70
	QuizAnswerStep     = 10
	QuizAnswerCap      = 50
	FinalSubmitPercent = 100

	// FinalSubmitThreshold is the number of answered quiz questions that
	// unlocks the final submission.
	FinalSubmitThreshold = 15
)

// Controller applies the progress update rules. Every rule is monotonic: it
// may raise a course percent, never lower it, and all writes stay in [0,100].
type Controller struct {
	progress store.ProgressStore
}

func NewController(progress store.ProgressStore) *Controller {
	return &Controller{progress: progress}
}

// Record dispatches a named activity kind.
func (c *Controller) Record(kind, username, course string) (int, bool, error) {
	switch kind {
	case models.ActivityVideoView:
		return c.RecordVideoView(username, course)
	case models.ActivityAssignmentSubmit:
		return c.RecordAssignment(username, course)
	default:
		return 0, false, fmt.Errorf("unknown activity kind: %s", kind)
	}
}

// RecordVideoView floors the course at 10%.
func (c *Controller) RecordVideoView(username, course string) (int, bool, error) {
	return c.apply(username, course, VideoFloor)
}

// RecordAssignment floors the course at 70%.
func (c *Controller) RecordAssignment(username, course string) (int, bool, error) {
	return c.apply(username, course, AssignmentFloor)
}

// RecordQuizAnswer adds 10% up to the 50% quiz cap, regardless of whether the
// answer was correct. Past the cap the percent is left alone.
func (c *Controller) RecordQuizAnswer(username, subject string) (int, bool, error) {
	current := c.progress.Get(username, subject)
	if current >= QuizAnswerCap {
		return current, false, nil
	}

	next := current + QuizAnswerStep
	if next > QuizAnswerCap {
		next = QuizAnswerCap
	}
	return c.apply(username, subject, next)
}

// RecordFinalSubmit marks the subject complete. Callers gate it on the
// session quiz count reaching FinalSubmitThreshold.
func (c *Controller) RecordFinalSubmit(username, subject string) (int, bool, error) {
	return c.apply(username, subject, FinalSubmitPercent)
}

// apply writes the proposed percent only when it raises the current one.
func (c *Controller) apply(username, course string, proposed int) (int, bool, error) {
	current := c.progress.Get(username, course)

	next := clamp(proposed)
	if next <= current {
		return current, false, nil
	}

	if err := c.progress.Set(username, course, next); err != nil {
		return current, false, err
	}

	utils.LogInfo("Progress for %s/%s raised %d%% -> %d%%", username, course, current, next)
	return next, true, nil
}

func clamp(percent int) int {
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}
