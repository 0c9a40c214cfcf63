package models

import "errors"

var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrValidation represents client input that cannot be accepted.
	ErrValidation = errors.New("validation error")
	// ErrStorage indicates the persisted collection could not be read or written.
	ErrStorage = errors.New("storage failure")
)
