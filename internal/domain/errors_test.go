package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorIs(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewError(TransportError, "spacex.Launches", cause)

	if !errors.Is(err, ErrTransport) {
		t.Errorf("errors.Is(err, ErrTransport) = false")
	}
	if errors.Is(err, ErrDataUnavailable) {
		t.Errorf("errors.Is(err, ErrDataUnavailable) = true")
	}
	if !errors.Is(err, cause) {
		t.Errorf("errors.Is(err, cause) = false, want unwrap to reach cause")
	}

	wrapped := fmt.Errorf("handler: %w", NewError(DataUnavailable, "service.Launches", nil))
	if !errors.Is(wrapped, ErrDataUnavailable) {
		t.Errorf("wrapped DataUnavailable not matched")
	}
	if KindOf(wrapped) != DataUnavailable {
		t.Errorf("KindOf() = %v", KindOf(wrapped))
	}
	if KindOf(cause) != 0 {
		t.Errorf("KindOf(untyped) = %v, want 0", KindOf(cause))
	}
}

func TestErrorMessage(t *testing.T) {
	err := NewError(DeserializationError, "cache.Launches", errors.New("unexpected EOF"))
	if got := err.Error(); got != "cache.Launches: deserialization_error: unexpected EOF" {
		t.Errorf("Error() = %q", got)
	}
	if got := NewError(DataUnavailable, "service.Next", nil).Error(); got != "service.Next: data_unavailable" {
		t.Errorf("Error() = %q", got)
	}
}
