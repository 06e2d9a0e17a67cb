package model

import (
	"errors"
	"fmt"
)

// Common errors used across the application
var (
	// Machine errors
	ErrMachineNotFound = errors.New("machine not found")
	ErrMachineExists   = errors.New("machine already exists")

	// Player errors
	ErrPlayerNotFound = errors.New("player not found")
	ErrPlayerExists   = errors.New("player already exists")

	// Score errors
	ErrScoreNotFound = errors.New("score not found")

	// Tournament errors
	ErrTournamentNotFound = errors.New("tournament not found")
	ErrTournamentExists   = errors.New("tournament already exists")
	ErrNoActiveTournament = errors.New("no active tournament")

	// ErrValidationMismatch means user-entered confirmation text did not
	// match the expected value. The backend is never contacted.
	ErrValidationMismatch = errors.New("confirmation text does not match")
)

// TransportError is a network or HTTP failure talking to the backend. No
// distinction is made by status code; callers treat all transport failures
// the same way and keep their previously loaded state.
type TransportError struct {
	Op     string // the operation being performed, e.g. "list machines"
	URL    string
	Status int // HTTP status code, 0 for connectivity failures
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: %s: HTTP %d: %v", e.Op, e.URL, e.Status, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsTransport reports whether err is (or wraps) a TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
