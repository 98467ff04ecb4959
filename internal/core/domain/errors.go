package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidBirthday indicates a birthdate that is not a real day of the year.
	ErrInvalidBirthday = errors.New("invalid birthday")

	// ErrMissingToken indicates the chat transport has no credentials.
	ErrMissingToken = errors.New("discord token not configured")

	// ErrNotOwner indicates a command restricted to bot owners.
	ErrNotOwner = errors.New("command restricted to owners")

	// ErrRateLimited indicates a reply was suppressed by the channel limiter.
	ErrRateLimited = errors.New("rate limited")
)
