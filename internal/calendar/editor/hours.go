package editor

import (
	"context"
	"sync"

	"github.com/smallbiznis/bizconf/internal/calendar/domain"
	"github.com/smallbiznis/bizconf/internal/calendar/draft"
)

// ShiftEdit carries the editable fields of one shift row.
type ShiftEdit struct {
	ShiftName      string `json:"shiftName"`
	StartTime      string `json:"startTime"`
	EndTime        string `json:"endTime"`
	IsWorkingShift bool   `json:"isWorkingShift"`
	Remarks        string `json:"remarks"`
}

// ShiftValidation is the per-record validation outcome; validation is
// evaluated per row, never globally.
type ShiftValidation struct {
	DayOfWeek string `json:"dayOfWeek"`
	Valid     bool   `json:"valid"`
	Error     string `json:"error,omitempty"`
}

// HoursEditor manages one shift per canonical day for one company.
type HoursEditor struct {
	svc   domain.Service
	state *draft.FormState

	mu        sync.Mutex
	companyID string
	shifts    []domain.BusinessHours
	loaded    bool
}

func NewHoursEditor(svc domain.Service, state *draft.FormState) *HoursEditor {
	return &HoursEditor{svc: svc, state: state}
}

func (e *HoursEditor) Load(ctx context.Context, companyID string) error {
	e.state.BeginLoad()
	shifts, err := e.svc.LoadBusinessHours(ctx, companyID)
	if err != nil {
		e.state.EndLoad(false)
		return err
	}

	e.mu.Lock()
	e.companyID = companyID
	e.shifts = shifts
	e.loaded = true
	e.mu.Unlock()

	e.state.EndLoad(true)
	return nil
}

func (e *HoursEditor) Shifts() []domain.BusinessHours {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]domain.BusinessHours, len(e.shifts))
	copy(out, e.shifts)
	return out
}

func (e *HoursEditor) UpdateShift(index int, edit ShiftEdit) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.loaded {
		return ErrNotLoaded
	}
	if index < 0 || index >= len(e.shifts) {
		return ErrInvalidIndex
	}

	shift := &e.shifts[index]
	shift.ShiftName = edit.ShiftName
	shift.StartTime = edit.StartTime
	shift.EndTime = edit.EndTime
	shift.IsWorkingShift = edit.IsWorkingShift
	shift.Remarks = edit.Remarks

	e.state.MarkDirty()
	return nil
}

// Validate runs the time-range check on every row, working or not.
func (e *HoursEditor) Validate() []ShiftValidation {
	e.mu.Lock()
	defer e.mu.Unlock()

	results := make([]ShiftValidation, 0, len(e.shifts))
	for _, shift := range e.shifts {
		result := ShiftValidation{DayOfWeek: shift.DayOfWeek, Valid: true}
		if err := shift.ValidateTimeRange(); err != nil {
			result.Valid = false
			result.Error = err.Error()
		}
		results = append(results, result)
	}
	return results
}

// Save is blocked while any row fails validation. Only working shifts
// are persisted; the rest of the skeleton is discarded.
func (e *HoursEditor) Save(ctx context.Context) error {
	for _, v := range e.Validate() {
		if !v.Valid {
			return ErrValidationFail
		}
	}

	e.mu.Lock()
	if !e.loaded {
		e.mu.Unlock()
		return ErrNotLoaded
	}
	companyID := e.companyID
	shifts := make([]domain.BusinessHours, len(e.shifts))
	copy(shifts, e.shifts)
	e.mu.Unlock()

	e.state.BeginSave()
	if _, err := e.svc.SaveBusinessHours(ctx, companyID, shifts); err != nil {
		e.state.EndSave(false)
		return err
	}
	e.state.EndSave(true)
	return nil
}

func (e *HoursEditor) Stats() domain.WeeklyStats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return domain.ComputeWeeklyStats(e.shifts)
}

// DayDuration formats one row's length as "Xh Ym", or "Xh" on the hour.
func (e *HoursEditor) DayDuration(index int) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if index < 0 || index >= len(e.shifts) {
		return "", ErrInvalidIndex
	}
	return domain.DurationLabel(e.shifts[index].Minutes()), nil
}
