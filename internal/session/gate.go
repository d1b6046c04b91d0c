package session

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// ErrNotEnrolled is returned when the learner may not access a course.
// Callers redirect to a non-learning view; no session state exists yet
// when this fires.
var ErrNotEnrolled = errors.New("not enrolled in course")

// Gate is the enrollment precondition check that runs before any progress
// work begins.
type Gate struct {
	backend Backend
}

// NewGate creates a Gate over the given backend.
func NewGate(backend Backend) Gate {
	return Gate{backend: backend}
}

// CheckAccess returns nil when the learner is enrolled in the course and
// ErrNotEnrolled otherwise. A failing enrollment lookup (network or auth
// error) is treated as not enrolled — the gate fails closed rather than
// letting a session half-initialize.
func (g Gate) CheckAccess(ctx context.Context, courseID string) error {
	enrolled, err := g.backend.IsEnrolled(ctx, courseID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: enrollment check failed for course %s: %v\n", courseID, err)
		return ErrNotEnrolled
	}
	if !enrolled {
		return ErrNotEnrolled
	}
	return nil
}
