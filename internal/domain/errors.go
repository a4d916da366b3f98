package domain

import (
	"errors"
	"fmt"
)

// Kind classifies failures of the launch data layer.
type Kind int

const (
	// TransportError covers network failures, timeouts, non-2xx responses and
	// undecodable response bodies. It is recovered by cache fallback.
	TransportError Kind = iota + 1
	// DataUnavailable means neither live nor cached data could serve the call.
	DataUnavailable
	// DeserializationError means a cached payload could not be decoded. It is
	// treated as a cache miss.
	DeserializationError
)

func (k Kind) String() string {
	switch k {
	case TransportError:
		return "transport_error"
	case DataUnavailable:
		return "data_unavailable"
	case DeserializationError:
		return "deserialization_error"
	default:
		return "unknown"
	}
}

// UnavailableMessage is the fixed text shown when no data can be served.
const UnavailableMessage = "Failed to load launches. Please try again."

// Error is the typed failure of the launch data layer.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind, so callers can write
// errors.Is(err, domain.ErrDataUnavailable).
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Op == "" && t.Err == nil && t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrTransport       = &Error{Kind: TransportError}
	ErrDataUnavailable = &Error{Kind: DataUnavailable}
)

// NewError builds a typed error for op.
func NewError(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf returns the Kind carried by err, or 0 when err is not typed.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
