package learn

import (
	"time"

	"github.com/abhisek/studyhall/internal/session"
)

// sessionReadyMsg is sent when the session bootstrap (course load, gate,
// progress reconciliation) finishes.
type sessionReadyMsg struct {
	State *session.State
	Err   error
}

// markCompleteResultMsg reports the outcome of a mark-complete call.
type markCompleteResultMsg struct {
	LessonID string
	Applied  bool
	Err      error
}

// watchTickMsg is sent every second while a lesson is current.
type watchTickMsg time.Time
