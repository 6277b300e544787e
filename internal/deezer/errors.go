package deezer

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a search has no results.
	ErrNotFound = errors.New("artist not found")

	// ErrRemote matches every *RemoteError via errors.Is.
	ErrRemote = errors.New("remote catalog error")
)

// RemoteError describes a failed catalog call: transport, status or decoding.
type RemoteError struct {
	Op     string // "search", "artist", "top"
	Status int    // HTTP status, 0 when no response was received
	Err    error
}

func (e *RemoteError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("deezer %s: status %d: %v", e.Op, e.Status, e.Err)
	}
	return fmt.Sprintf("deezer %s: %v", e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrRemote) hold for any RemoteError.
func (e *RemoteError) Is(target error) bool {
	return target == ErrRemote
}
