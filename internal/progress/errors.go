package progress

import (
	"errors"
	"fmt"
)

var (
	// ErrProgressUnreadable means the progress file exists but could not be
	// read or decoded. Load recovers from it with an empty state.
	ErrProgressUnreadable = errors.New("progress file unreadable")

	// ErrProgressWriteFailed means a save did not reach disk. The in-memory
	// state stays authoritative.
	ErrProgressWriteFailed = errors.New("progress write failed")
)

// FileError carries the path and cause of a progress file failure.
type FileError struct {
	Kind error
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%v: %s: %v", e.Kind, e.Path, e.Err)
}

func (e *FileError) Unwrap() []error { return []error{e.Kind, e.Err} }
