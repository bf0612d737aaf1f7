package domain

import "errors"

// Sentinel errors shared across services and repositories.
var (
	ErrNotFound              = errors.New("not found")
	ErrForbidden             = errors.New("forbidden")
	ErrInvalidInput          = errors.New("invalid input")
	ErrDuplicateEmail        = errors.New("email already in use")
	ErrDuplicateRegistration = errors.New("already registered for this event")
	ErrPrepayNotAccepted     = errors.New("event does not accept prepayment")
	ErrAlreadyDecided        = errors.New("reservation has already been decided")
)
