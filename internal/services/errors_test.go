package services

import (
	"errors"
	"testing"
)

func TestWrapTagsMarker(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(ErrExecution, "normalize", "rename failed", cause)
	if !errors.Is(err, ErrExecution) {
		t.Fatalf("marker lost: %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("cause lost: %v", err)
	}
}

func TestWrapDefaultsMarkerAndDetail(t *testing.T) {
	err := Wrap(nil, "", "", nil)
	if !errors.Is(err, ErrExecution) {
		t.Fatalf("expected default marker, got %v", err)
	}
	if err.Error() != "execution error: operation failure" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}
