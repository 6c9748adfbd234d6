package types

import "errors"

// Store operation errors.
var (
	ErrNotFound  = errors.New("recipe not found")
	ErrInvalidID = errors.New("invalid recipe ID")
)

// Store lifecycle errors.
var (
	ErrStoreClosed = errors.New("store is closed")
	ErrAlreadyOpen = errors.New("store is already open")
)
