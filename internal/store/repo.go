package store

import (
	"context"
	"time"
)

// SessionEventData is one session lifecycle event to append.
type SessionEventData struct {
	SessionID        string
	CourseID         string
	CourseTitle      string
	Action           string // "start" or "end"
	LessonsCompleted int    // end only
	WatchSecs        int    // end only
}

// WatchEventData records seconds spent on a lesson.
type WatchEventData struct {
	SessionID string
	CourseID  string
	LessonID  string
	Seconds   int
}

// CompletionEventData records a backend-confirmed lesson completion.
type CompletionEventData struct {
	SessionID   string
	CourseID    string
	LessonID    string
	LessonTitle string
}

// SessionSummaryRecord is one past session for the history view, built
// from that session's "end" event.
type SessionSummaryRecord struct {
	SessionID        string
	CourseID         string
	CourseTitle      string
	LessonsCompleted int
	WatchSecs        int
	Timestamp        time.Time
}

// Totals aggregates the whole journal for the stats footer.
type Totals struct {
	Sessions    int
	Completions int
	WatchSecs   int
}

// EventRepo provides append and query access to the watch journal. The
// journal is history only; session state is never reconstructed from it.
type EventRepo interface {
	AppendSessionEvent(ctx context.Context, data SessionEventData) error
	AppendWatchEvent(ctx context.Context, data WatchEventData) error
	AppendCompletionEvent(ctx context.Context, data CompletionEventData) error

	// SessionSummaries returns the most recent ended sessions, newest first.
	SessionSummaries(ctx context.Context, limit int) ([]SessionSummaryRecord, error)

	// JournalTotals aggregates sessions, completions and watch time.
	JournalTotals(ctx context.Context) (Totals, error)
}
