package core

import "errors"

// Common errors.
var (
	ErrNotFound        = errors.New("key not found")
	ErrReadOnly        = errors.New("store is in read-only mode")
	ErrInvalidNote     = errors.New("note has no id")
	ErrDuplicateID     = errors.New("note id already present in collection")
	ErrIndexOutOfRange = errors.New("tab index out of range")
	ErrNotWatchable    = errors.New("store does not support watching")
)
