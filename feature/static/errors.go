package static

import "errors"

var (
	// ErrNotFound means the path does not name a servable file. Paths that
	// escape the root are reported with this error as well.
	ErrNotFound = errors.New("not found")
	// ErrInternal wraps unexpected I/O failures.
	ErrInternal = errors.New("internal error")
)
