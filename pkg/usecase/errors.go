package usecase

import "errors"

// Sentinel errors for use case layer
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrUnknownFormat   = errors.New("unknown export format")
)

// Context keys for error values
const (
	SessionIDKey = "session_id"
	FormatKey    = "format"
)
