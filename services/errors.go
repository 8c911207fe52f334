package services

import "errors"

// Sentinel errors surfaced to controllers, which map them onto HTTP statuses.
var (
	// ErrValidation marks a missing or malformed caller-supplied field.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound marks an absent entity on a path the caller named.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyMember rejects a duplicate community join.
	ErrAlreadyMember = errors.New("already a member")
	// ErrNotAMember rejects a leave without a prior join.
	ErrNotAMember = errors.New("not a member")
	// ErrInvalidCredentials marks an admin credential mismatch.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrForbidden rejects mutation of an entity the caller does not own.
	ErrForbidden = errors.New("forbidden")
)
