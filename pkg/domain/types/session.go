package types

import (
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// SessionID represents a unique identifier for a dashboard session
type SessionID string

// NewSessionID generates a new random SessionID
func NewSessionID() SessionID {
	return SessionID(uuid.NewString())
}

// Validate checks if the SessionID is valid
func (s SessionID) Validate() error {
	if s == "" {
		return goerr.New("session ID cannot be empty")
	}
	if _, err := uuid.Parse(string(s)); err != nil {
		return goerr.Wrap(err, "session ID must be a UUID", goerr.V("id", s))
	}
	return nil
}

// String returns the string representation of SessionID
func (s SessionID) String() string {
	return string(s)
}
