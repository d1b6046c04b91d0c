package session

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Begin runs the session bootstrap for a course slug: load the course,
// pass the enrollment gate, fetch persisted progress, and reconcile the
// resume point into a fresh State.
//
// A course load failure is fatal (there is nothing to show). A gate
// refusal returns ErrNotEnrolled before any state is constructed. A
// progress fetch failure degrades to the first-lesson resume inside
// Reconcile and never fails the bootstrap.
func Begin(ctx context.Context, backend Backend, slug string) (*State, error) {
	c, err := backend.GetCourse(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("load course %s: %w", slug, err)
	}

	if err := NewGate(backend).CheckAccess(ctx, c.ID); err != nil {
		return nil, err
	}

	progress, fetchErr := backend.GetProgress(ctx, c.ID)

	resume := Reconcile(c, progress, fetchErr)

	var completed map[string]bool
	if fetchErr == nil && progress != nil {
		completed = progress.CompletedSet()
	}

	return NewState(c, resume, completed, uuid.NewString()), nil
}
