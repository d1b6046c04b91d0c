package session

import (
	"context"
	"fmt"
	"os"
)

// Sync issues the idempotent progress writes against the backend and keeps
// the local State consistent with their outcomes.
//
// Completion is confirm-then-apply: the completed set is only mutated after
// the backend acknowledges the upsert, so there is no rollback path and the
// UI never flickers between completed and incomplete. Resume-position
// writes are fire-and-forget; their failures are logged and absorbed.
type Sync struct {
	backend Backend
}

// NewSync creates a Sync over the given backend.
func NewSync(backend Backend) *Sync {
	return &Sync{backend: backend}
}

// MarkComplete marks lessonID complete. The id is the lesson the learner
// acted on; it no-ops (false, nil) without any network call when that
// lesson is already complete, another call is in flight, or the session
// has navigated away from it since the action. On backend failure the
// local state is untouched, the busy flag is cleared for retry, and the
// error is returned for the caller to log — never to block the UI.
func (s *Sync) MarkComplete(ctx context.Context, st *State, lessonID string) (bool, error) {
	if !st.beginMark(lessonID) {
		return false, nil
	}

	if err := s.backend.MarkLessonComplete(ctx, st.Course().ID, lessonID); err != nil {
		st.finishMark(lessonID, false)
		return false, fmt.Errorf("mark lesson %s complete: %w", lessonID, err)
	}

	return st.finishMark(lessonID, true), nil
}

// SaveLastLesson persists the current lesson as the resume position along
// with the watch seconds accumulated on it. Failures are logged and
// swallowed — losing a resume position must never interrupt navigation.
func (s *Sync) SaveLastLesson(ctx context.Context, st *State, watchSeconds int) {
	lessonID := st.CurrentLessonID()
	if lessonID == "" {
		return
	}
	if err := s.backend.SetLastLesson(ctx, st.Course().ID, lessonID, watchSeconds); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to save resume position for lesson %s: %v\n", lessonID, err)
	}
}
