package shared

import "errors"

// Error taxonomy used across usecases and delivery layers. Handlers map these
// to HTTP status codes with errors.Is; anything unrecognized is treated as
// ErrInternal and never exposes detail to the client.
var (
	ErrValidation     = errors.New("invalid input")
	ErrAuthentication = errors.New("authentication failed")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenInvalid   = errors.New("token invalid")
	ErrNotFound       = errors.New("not found")
	ErrConflict       = errors.New("already exists")
	ErrProvider       = errors.New("provider error")
	ErrInternal       = errors.New("internal error")
)
