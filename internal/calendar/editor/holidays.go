package editor

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/smallbiznis/bizconf/internal/calendar/domain"
	"github.com/smallbiznis/bizconf/internal/calendar/draft"
)

// TimeFieldRequirement says what the full-day flag implies for the two
// time fields. Re-derived on every flag change, not once at dialog
// construction.
type TimeFieldRequirement struct {
	Cleared  bool `json:"cleared"`
	Required bool `json:"required"`
}

func deriveTimeFieldRequirement(isFullDay bool) TimeFieldRequirement {
	return TimeFieldRequirement{Cleared: isFullDay, Required: !isFullDay}
}

// HolidayDialog is one edit session: closed, or open on a new or
// existing holiday.
type HolidayDialog struct {
	Open            bool                 `json:"open"`
	IsNew           bool                 `json:"isNew"`
	ID              string               `json:"id"`
	HolidayName     string               `json:"holidayName"`
	HolidayDate     string               `json:"holidayDate"`
	HolidayType     string               `json:"holidayType"`
	CountryID       *string              `json:"countryId,omitempty"`
	IsFullDay       bool                 `json:"isFullDay"`
	StartTime       *string              `json:"startTime,omitempty"`
	EndTime         *string              `json:"endTime,omitempty"`
	TimeRequirement TimeFieldRequirement `json:"timeRequirement"`
}

// HolidaysEditor manages the holiday list and the modal dialog state
// machine for one company.
type HolidaysEditor struct {
	svc   domain.Service
	state *draft.FormState

	mu        sync.Mutex
	companyID string
	holidays  []domain.BusinessHoliday
	dialog    HolidayDialog
	loaded    bool
}

func NewHolidaysEditor(svc domain.Service, state *draft.FormState) *HolidaysEditor {
	return &HolidaysEditor{svc: svc, state: state}
}

func (e *HolidaysEditor) Load(ctx context.Context, companyID string) error {
	e.state.BeginLoad()
	holidays, err := e.svc.ListHolidays(ctx, companyID)
	if err != nil {
		e.state.EndLoad(false)
		return err
	}

	e.mu.Lock()
	e.companyID = companyID
	e.holidays = holidays
	e.loaded = true
	e.mu.Unlock()

	e.state.EndLoad(true)
	return nil
}

func (e *HolidaysEditor) Holidays() []domain.BusinessHoliday {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]domain.BusinessHoliday, len(e.holidays))
	copy(out, e.holidays)
	return out
}

func (e *HolidaysEditor) Dialog() HolidayDialog {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.dialog
}

// OpenAdd resets the dialog to a fresh holiday: generated identifier,
// full day, Public type, time fields cleared and not required.
func (e *HolidaysEditor) OpenAdd() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.loaded {
		return ErrNotLoaded
	}

	e.dialog = HolidayDialog{
		Open:            true,
		IsNew:           true,
		ID:              uuid.NewString(),
		HolidayType:     domain.HolidayTypePublic,
		IsFullDay:       true,
		TimeRequirement: deriveTimeFieldRequirement(true),
	}
	return nil
}

// OpenEdit pre-populates the dialog from an already loaded holiday.
func (e *HolidaysEditor) OpenEdit(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.loaded {
		return ErrNotLoaded
	}

	for _, h := range e.holidays {
		if h.ID != id {
			continue
		}
		e.dialog = HolidayDialog{
			Open:            true,
			ID:              h.ID,
			HolidayName:     h.HolidayName,
			HolidayDate:     h.HolidayDate,
			HolidayType:     h.HolidayType,
			CountryID:       h.CountryID,
			IsFullDay:       h.IsFullDay,
			TimeRequirement: deriveTimeFieldRequirement(h.IsFullDay),
		}
		if !h.IsFullDay {
			e.dialog.StartTime = h.StartTime
			e.dialog.EndTime = h.EndTime
		}
		return nil
	}
	return domain.ErrNotFound
}

// SetFullDay re-derives the time-field requirement on every change.
// Flipping to full day clears the time values along with their
// required state.
func (e *HolidaysEditor) SetFullDay(isFullDay bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.dialog.Open {
		return ErrDialogClosed
	}

	e.dialog.IsFullDay = isFullDay
	e.dialog.TimeRequirement = deriveTimeFieldRequirement(isFullDay)
	if isFullDay {
		e.dialog.StartTime = nil
		e.dialog.EndTime = nil
	}
	e.state.MarkDirty()
	return nil
}

// SetFields updates the editable dialog fields in one call.
func (e *HolidaysEditor) SetFields(name, date, holidayType string, countryID, startTime, endTime *string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.dialog.Open {
		return ErrDialogClosed
	}

	e.dialog.HolidayName = name
	e.dialog.HolidayDate = date
	e.dialog.HolidayType = holidayType
	e.dialog.CountryID = countryID
	if !e.dialog.IsFullDay {
		e.dialog.StartTime = startTime
		e.dialog.EndTime = endTime
	}
	e.state.MarkDirty()
	return nil
}

// Save persists the dialog holiday, reloads the full list, and only
// then closes the dialog. The ordering is strict; closing before the
// reload would leave stale rows visible.
func (e *HolidaysEditor) Save(ctx context.Context) error {
	e.mu.Lock()
	if !e.dialog.Open {
		e.mu.Unlock()
		return ErrDialogClosed
	}
	req := domain.SaveHolidayRequest{
		ID:          e.dialog.ID,
		CompanyID:   e.companyID,
		HolidayName: e.dialog.HolidayName,
		HolidayDate: e.dialog.HolidayDate,
		HolidayType: e.dialog.HolidayType,
		CountryID:   e.dialog.CountryID,
		IsFullDay:   e.dialog.IsFullDay,
		StartTime:   e.dialog.StartTime,
		EndTime:     e.dialog.EndTime,
	}
	companyID := e.companyID
	e.mu.Unlock()

	e.state.BeginSave()
	if _, err := e.svc.SaveHoliday(ctx, req); err != nil {
		e.state.EndSave(false)
		return err
	}

	holidays, err := e.svc.ListHolidays(ctx, companyID)
	if err != nil {
		e.state.EndSave(false)
		return err
	}

	e.mu.Lock()
	e.holidays = holidays
	e.dialog = HolidayDialog{}
	e.mu.Unlock()

	e.state.EndSave(true)
	return nil
}

// Delete tombstones one holiday and reloads the list.
func (e *HolidaysEditor) Delete(ctx context.Context, id string) error {
	e.mu.Lock()
	if !e.loaded {
		e.mu.Unlock()
		return ErrNotLoaded
	}
	companyID := e.companyID
	e.mu.Unlock()

	if err := e.svc.DeleteHoliday(ctx, id); err != nil {
		return err
	}

	holidays, err := e.svc.ListHolidays(ctx, companyID)
	if err != nil {
		return err
	}

	e.mu.Lock()
	e.holidays = holidays
	e.mu.Unlock()
	return nil
}

func (e *HolidaysEditor) Counts() domain.HolidayCounts {
	e.mu.Lock()
	defer e.mu.Unlock()
	return domain.CountHolidays(e.holidays)
}

func (e *HolidaysEditor) Upcoming(ctx context.Context) ([]domain.BusinessHoliday, error) {
	e.mu.Lock()
	companyID := e.companyID
	loaded := e.loaded
	e.mu.Unlock()
	if !loaded {
		return nil, ErrNotLoaded
	}
	return e.svc.UpcomingHolidays(ctx, companyID)
}
