package editor

import (
	"context"
	"errors"
	"sync"

	"github.com/smallbiznis/bizconf/internal/calendar/domain"
	"github.com/smallbiznis/bizconf/internal/calendar/draft"
)

const (
	PresetStandardWeek = "standard-week"
	PresetSixDayWeek   = "six-day-week"
	PresetAllWorking   = "all-working"
)

var (
	ErrNotLoaded      = errors.New("not_loaded")
	ErrInvalidIndex   = errors.New("invalid_index")
	ErrUnknownPreset  = errors.New("unknown_preset")
	ErrDialogClosed   = errors.New("dialog_closed")
	ErrValidationFail = errors.New("validation_failed")
)

// DaysEditor manages the fixed seven-entry working-day set for one
// company. The set is never reorderable and never extensible; edits
// flip flags on entries in place.
type DaysEditor struct {
	svc   domain.Service
	state *draft.FormState

	mu        sync.Mutex
	companyID string
	days      []domain.BusinessDay
	loaded    bool
}

func NewDaysEditor(svc domain.Service, state *draft.FormState) *DaysEditor {
	return &DaysEditor{svc: svc, state: state}
}

// Load fetches the current set, synthesizing defaults server-side when
// empty. Loading clears the dirty flag; it never counts as an edit.
func (e *DaysEditor) Load(ctx context.Context, companyID string) error {
	e.state.BeginLoad()
	days, err := e.svc.LoadBusinessDays(ctx, companyID)
	if err != nil {
		e.state.EndLoad(false)
		return err
	}

	e.mu.Lock()
	e.companyID = companyID
	e.days = days
	e.loaded = true
	e.mu.Unlock()

	e.state.EndLoad(true)
	return nil
}

func (e *DaysEditor) Days() []domain.BusinessDay {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]domain.BusinessDay, len(e.days))
	copy(out, e.days)
	return out
}

// ToggleWorkingDay flips the working flag for one day. The weekend flag
// is untouched; it belongs to the day name.
func (e *DaysEditor) ToggleWorkingDay(index int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.loaded {
		return ErrNotLoaded
	}
	if index < 0 || index >= len(e.days) {
		return ErrInvalidIndex
	}

	e.days[index].IsWorkingDay = !e.days[index].IsWorkingDay
	e.state.MarkDirty()
	return nil
}

// SetRemarks updates the free-text remark on one day.
func (e *DaysEditor) SetRemarks(index int, remarks string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.loaded {
		return ErrNotLoaded
	}
	if index < 0 || index >= len(e.days) {
		return ErrInvalidIndex
	}

	e.days[index].Remarks = remarks
	e.state.MarkDirty()
	return nil
}

// ApplyPreset overwrites all seven entries atomically.
func (e *DaysEditor) ApplyPreset(preset string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.loaded {
		return ErrNotLoaded
	}

	switch preset {
	case PresetStandardWeek:
		for i := range e.days {
			weekend := domain.IsWeekendDay(e.days[i].DayOfWeek)
			e.days[i].IsWorkingDay = !weekend
			if weekend {
				e.days[i].Remarks = "Weekend"
			} else {
				e.days[i].Remarks = ""
			}
		}
	case PresetSixDayWeek:
		for i := range e.days {
			sunday := e.days[i].DayOfWeek == "Sunday"
			e.days[i].IsWorkingDay = !sunday
			if sunday {
				e.days[i].Remarks = "Weekend"
			} else {
				e.days[i].Remarks = ""
			}
		}
	case PresetAllWorking:
		for i := range e.days {
			e.days[i].IsWorkingDay = true
			e.days[i].Remarks = ""
		}
	default:
		return ErrUnknownPreset
	}

	e.state.MarkDirty()
	return nil
}

// Save persists the full seven-entry set, replacing any prior set.
func (e *DaysEditor) Save(ctx context.Context) error {
	e.mu.Lock()
	if !e.loaded {
		e.mu.Unlock()
		return ErrNotLoaded
	}
	companyID := e.companyID
	days := make([]domain.BusinessDay, len(e.days))
	copy(days, e.days)
	e.mu.Unlock()

	e.state.BeginSave()
	saved, err := e.svc.SaveBusinessDays(ctx, companyID, days)
	if err != nil {
		e.state.EndSave(false)
		return err
	}

	e.mu.Lock()
	e.days = saved
	e.mu.Unlock()

	e.state.EndSave(true)
	return nil
}

func (e *DaysEditor) WorkingDaysCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return domain.CountWorkingDays(e.days)
}

func (e *DaysEditor) NonWorkingDaysCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.days) - domain.CountWorkingDays(e.days)
}
