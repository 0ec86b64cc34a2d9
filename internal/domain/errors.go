package domain

import "errors"

// Sentinel errors for the handler boundary. Services and repos return
// these (possibly wrapped); handlers map them to a status and a notice.
var (
	ErrValidation      = errors.New("invalid input")
	ErrConflict        = errors.New("already exists")
	ErrNotFound        = errors.New("not found")
	ErrForbidden       = errors.New("forbidden")
	ErrPayloadTooLarge = errors.New("payload too large")
	ErrBadCredentials  = errors.New("invalid email or password")
)
