package memory

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/rubyjane88/genai-maturity-explorer/pkg/domain/interfaces"
)

// ErrNotFound is returned when a requested session does not exist
var ErrNotFound = goerr.New("not found")

// Memory is the in-process repository backing active dashboard sessions.
// Session state is intentionally not durable: it lives and dies with the
// process, matching the session lifecycle.
type Memory struct {
	session *sessionRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		session: newSessionRepository(),
	}
}

func (m *Memory) Session() interfaces.SessionRepository {
	return m.session
}

func (m *Memory) Close() error {
	return nil
}
