// Package common defines shared constants and sentinel errors used across
// the MovieKeeper store, its storage backends and the shell. Callers should
// use errors.Is to match these values.
package common

import "errors"

var (
	// Validation errors (register input).
	ErrValidation = errors.New("validation error")

	// Account collection errors.
	ErrDuplicateAccount = errors.New("user already exists with this email or username")
	ErrNotFound         = errors.New("user not found")

	// Login errors.
	ErrInvalidCredential = errors.New("invalid password")

	// Session errors.
	ErrUnauthenticated = errors.New("please login to manage favorites")

	// Favorites errors.
	ErrDuplicateFavorite = errors.New("movie is already in favorites")

	// Persisted state that cannot be decoded.
	ErrCorruptState = errors.New("corrupt persisted state")
)
