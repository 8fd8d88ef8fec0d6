package repository

import "errors"

// Storage-level sentinel errors. Mongo driver errors are translated here
// so services never depend on driver internals.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate key")
)
