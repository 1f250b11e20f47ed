package domain

import "errors"

var (
	ErrBusy                   = errors.New("storage busy")
	ErrConflict               = errors.New("identifier already exists")
	ErrCorrupt                = errors.New("storage corrupt")
	ErrIO                     = errors.New("storage i/o error")
	ErrInvalidLayout          = errors.New("invalid layout")
	ErrInvalidName            = errors.New("invalid name")
	ErrInvalidPaneKind        = errors.New("invalid pane kind")
	ErrNotAVersionControlRoot = errors.New("not a version control root")
	ErrNotFound               = errors.New("not found")
)

// IsFatalStorage reports whether err leaves the store instance unusable.
// Hosts typically fall back to an in-memory store when this is true.
func IsFatalStorage(err error) bool {
	return errors.Is(err, ErrCorrupt) || errors.Is(err, ErrIO)
}

// IsTransient reports whether the operation may succeed if retried.
func IsTransient(err error) bool {
	return errors.Is(err, ErrBusy)
}
