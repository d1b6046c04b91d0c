package session

import (
	"context"
	"errors"
	"testing"
)

func TestGate_Enrolled(t *testing.T) {
	gate := NewGate(&fakeBackend{enrolled: true})

	if err := gate.CheckAccess(context.Background(), "crs-1"); err != nil {
		t.Errorf("CheckAccess = %v, want nil", err)
	}
}

func TestGate_NotEnrolled(t *testing.T) {
	gate := NewGate(&fakeBackend{enrolled: false})

	err := gate.CheckAccess(context.Background(), "crs-1")
	if !errors.Is(err, ErrNotEnrolled) {
		t.Errorf("CheckAccess = %v, want ErrNotEnrolled", err)
	}
}

func TestGate_CheckFailureFailsClosed(t *testing.T) {
	gate := NewGate(&fakeBackend{enrolled: true, enrollErr: errNetwork})

	err := gate.CheckAccess(context.Background(), "crs-1")
	if !errors.Is(err, ErrNotEnrolled) {
		t.Errorf("CheckAccess = %v, want ErrNotEnrolled (fail closed)", err)
	}
}
