package draft

import (
	"errors"
	"sync"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var ErrNoSession = errors.New("no_session")

// Manager hands out one FormState per company. Opening an already open
// session returns the existing one; only one editing session exists per
// company at a time.
type Manager struct {
	mu       sync.Mutex
	log      *zap.Logger
	sessions map[string]*FormState
}

func NewManager(log *zap.Logger) *Manager {
	return &Manager{
		log:      log.Named("calendar.draft"),
		sessions: make(map[string]*FormState),
	}
}

func (m *Manager) Open(companyID string) *FormState {
	m.mu.Lock()
	defer m.mu.Unlock()
	if state, ok := m.sessions[companyID]; ok {
		return state
	}
	state := NewFormState()
	m.sessions[companyID] = state
	m.log.Debug("draft session opened", zap.String("company_id", companyID))
	return state
}

func (m *Manager) Get(companyID string) (*FormState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	state, ok := m.sessions[companyID]
	if !ok {
		return nil, ErrNoSession
	}
	return state, nil
}

func (m *Manager) Close(companyID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, companyID)
	m.log.Debug("draft session closed", zap.String("company_id", companyID))
}

var Module = fx.Module("calendar.draft",
	fx.Provide(NewManager),
)
