package store

import "errors"

// Tagged failures returned by catalog and order operations. Handlers map
// these onto HTTP status codes; nothing here is fatal to the process.
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("not found")
	ErrDuplicate         = errors.New("duplicate")
	ErrInvalidTransition = errors.New("invalid transition")
)
