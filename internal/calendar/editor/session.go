package editor

import (
	"sync"

	"github.com/smallbiznis/bizconf/internal/calendar/domain"
	"github.com/smallbiznis/bizconf/internal/calendar/draft"
	"go.uber.org/fx"
)

// Session bundles the three tab editors over one shared form state.
// Only one session exists per company at a time.
type Session struct {
	CompanyID string
	State     *draft.FormState
	Days      *DaysEditor
	Hours     *HoursEditor
	Holidays  *HolidaysEditor
}

type Factory struct {
	svc    domain.Service
	drafts *draft.Manager

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewFactory(svc domain.Service, drafts *draft.Manager) *Factory {
	return &Factory{
		svc:      svc,
		drafts:   drafts,
		sessions: make(map[string]*Session),
	}
}

// Open returns the existing session for the company or starts a new one.
func (f *Factory) Open(companyID string) *Session {
	f.mu.Lock()
	defer f.mu.Unlock()
	if session, ok := f.sessions[companyID]; ok {
		return session
	}

	state := f.drafts.Open(companyID)
	session := &Session{
		CompanyID: companyID,
		State:     state,
		Days:      NewDaysEditor(f.svc, state),
		Hours:     NewHoursEditor(f.svc, state),
		Holidays:  NewHolidaysEditor(f.svc, state),
	}
	f.sessions[companyID] = session
	return session
}

func (f *Factory) Get(companyID string) (*Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	session, ok := f.sessions[companyID]
	if !ok {
		return nil, draft.ErrNoSession
	}
	return session, nil
}

func (f *Factory) Close(companyID string) {
	f.mu.Lock()
	delete(f.sessions, companyID)
	f.mu.Unlock()
	f.drafts.Close(companyID)
}

var Module = fx.Module("calendar.editor",
	fx.Provide(NewFactory),
)
