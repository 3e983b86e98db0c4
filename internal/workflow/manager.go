package workflow

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gtm-studio/icp-engine/internal/domain"
)

// SessionManager creates, tracks, and removes wizard sessions.
type SessionManager struct {
	mu          sync.RWMutex
	sessions    map[string]*Session
	maxSessions int
	convention  domain.NamingConvention
	log         *zap.Logger
}

// NewSessionManager creates a manager bounded at maxSessions live
// sessions. New sessions start with the given default naming
// convention.
func NewSessionManager(maxSessions int, convention domain.NamingConvention, log *zap.Logger) *SessionManager {
	return &SessionManager{
		sessions:    make(map[string]*Session),
		maxSessions: maxSessions,
		convention:  convention,
		log:         log,
	}
}

// Create starts a new session positioned at the choice step.
func (m *SessionManager) Create() (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.maxSessions > 0 && len(m.sessions) >= m.maxSessions {
		return nil, domain.ErrSessionLimit
	}

	id := "wiz-" + uuid.NewString()
	sess := NewSession(id, m.convention, m.log)
	m.sessions[id] = sess
	m.log.Info("session created", zap.String("session", id), zap.Int("live", len(m.sessions)))
	return sess, nil
}

// Get returns a session by ID, or ErrSessionNotFound.
func (m *SessionManager) Get(sessionID string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sess, ok := m.sessions[sessionID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return sess, nil
}

// Delete removes a session and all its entities.
func (m *SessionManager) Delete(sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[sessionID]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(m.sessions, sessionID)
	m.log.Info("session deleted", zap.String("session", sessionID))
	return nil
}

// List returns the states of all live sessions.
func (m *SessionManager) List() []SessionState {
	m.mu.RLock()
	sessions := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}
	m.mu.RUnlock()

	states := make([]SessionState, 0, len(sessions))
	for _, s := range sessions {
		states = append(states, s.State())
	}
	return states
}

// Count returns the number of live sessions.
func (m *SessionManager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
