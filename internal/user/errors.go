package user

import "errors"

var (
	// ErrNotFound signals that no user exists for the given id.
	ErrNotFound = errors.New("user not found")
	// ErrEmailTaken is returned when a unique constraint on email or
	// username refuses an insert or update.
	ErrEmailTaken = errors.New("email already registered")
)
