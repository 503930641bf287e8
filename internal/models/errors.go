package models

import "errors"

// Sentinel errors returned by services and repositories. Handlers map these
// to HTTP statuses; the services never format user-facing messages.
var (
	ErrUnauthenticated    = errors.New("no authenticated user")
	ErrRoomNotFound       = errors.New("room not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrInvalidBookingDate = errors.New("booking date is missing or invalid")
	ErrCancellationClosed = errors.New("booking can no longer be cancelled")
	ErrFetchFailure       = errors.New("failed to fetch from storage")
	ErrPersistenceFailure = errors.New("failed to write to storage")
)
