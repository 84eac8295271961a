package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/smallbiznis/bizconf/internal/calendar/domain"
	"github.com/smallbiznis/bizconf/internal/clock"
	"github.com/smallbiznis/bizconf/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	Repo     domain.Repository
	Clock    clock.Clock
	Defaults *config.CalendarConfigHolder
}

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	repo     domain.Repository
	clock    clock.Clock
	defaults *config.CalendarConfigHolder
}

func New(p Params) domain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("calendar.service"),
		repo:     p.Repo,
		clock:    p.Clock,
		defaults: p.Defaults,
	}
}

func (s *Service) LoadBusinessDays(ctx context.Context, companyID string) ([]domain.BusinessDay, error) {
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return nil, domain.ErrInvalidCompany
	}

	stored, err := s.repo.ListDays(ctx, s.db, companyID)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]domain.BusinessDay, len(stored))
	for _, d := range stored {
		if _, ok := byDay[d.DayOfWeek]; !ok {
			byDay[d.DayOfWeek] = d
		}
	}

	// Always yield the full canonical week. Weekend identity comes
	// from the day name, never from stored data.
	now := s.clock.Now()
	days := make([]domain.BusinessDay, 0, len(domain.DaysOfWeek))
	for _, name := range domain.DaysOfWeek {
		if existing, ok := byDay[name]; ok {
			existing.IsWeekend = domain.IsWeekendDay(name)
			days = append(days, existing)
			continue
		}
		days = append(days, s.defaultBusinessDay(companyID, name, now))
	}

	return days, nil
}

func (s *Service) SaveBusinessDays(ctx context.Context, companyID string, days []domain.BusinessDay) ([]domain.BusinessDay, error) {
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return nil, domain.ErrInvalidCompany
	}
	if len(days) != len(domain.DaysOfWeek) {
		return nil, domain.ErrInvalidDaySet
	}

	seen := make(map[string]bool, len(days))
	now := s.clock.Now()
	normalized := make([]domain.BusinessDay, 0, len(days))
	for _, day := range days {
		if !domain.IsValidDay(day.DayOfWeek) {
			return nil, domain.ErrInvalidDay
		}
		if seen[day.DayOfWeek] {
			return nil, domain.ErrInvalidDaySet
		}
		seen[day.DayOfWeek] = true

		day.CompanyID = companyID
		day.IsWeekend = domain.IsWeekendDay(day.DayOfWeek)
		if strings.TrimSpace(day.ID) == "" {
			day.ID = uuid.NewString()
		}
		if day.Status == "" {
			day.Status = domain.StatusActive
		}
		if day.CreatedAt.IsZero() {
			day.CreatedAt = now
		}
		if day.CreatedBy == "" {
			day.CreatedBy = "system"
		}
		updated := now
		day.UpdatedAt = &updated
		normalized = append(normalized, day)
	}

	sort.Slice(normalized, func(i, j int) bool {
		return domain.DayIndex(normalized[i].DayOfWeek) < domain.DayIndex(normalized[j].DayOfWeek)
	})

	if err := s.repo.ReplaceDays(ctx, s.db, companyID, normalized); err != nil {
		return nil, err
	}

	s.log.Info("business days replaced",
		zap.String("company_id", companyID),
		zap.Int("working_days", domain.CountWorkingDays(normalized)),
	)
	return normalized, nil
}

func (s *Service) LoadBusinessHours(ctx context.Context, companyID string) ([]domain.BusinessHours, error) {
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return nil, domain.ErrInvalidCompany
	}

	stored, err := s.repo.ListHours(ctx, s.db, companyID)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]domain.BusinessHours, len(stored))
	for _, h := range stored {
		if _, ok := byDay[h.DayOfWeek]; !ok {
			byDay[h.DayOfWeek] = h
		}
	}

	now := s.clock.Now()
	shifts := make([]domain.BusinessHours, 0, len(domain.DaysOfWeek))
	for _, name := range domain.DaysOfWeek {
		if existing, ok := byDay[name]; ok {
			shifts = append(shifts, existing)
			continue
		}
		shifts = append(shifts, s.defaultShift(companyID, name, now))
	}

	return shifts, nil
}

func (s *Service) SaveBusinessHours(ctx context.Context, companyID string, shifts []domain.BusinessHours) ([]domain.BusinessHours, error) {
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return nil, domain.ErrInvalidCompany
	}

	// Every record must pass the time-range check, working or not.
	for _, shift := range shifts {
		if !domain.IsValidDay(shift.DayOfWeek) {
			return nil, domain.ErrInvalidDay
		}
		if err := shift.ValidateTimeRange(); err != nil {
			return nil, err
		}
	}

	now := s.clock.Now()
	working := make([]domain.BusinessHours, 0, len(shifts))
	for _, shift := range shifts {
		if !shift.IsWorkingShift {
			// Non-working placeholders are discarded, not persisted.
			continue
		}
		shift.CompanyID = companyID
		if strings.TrimSpace(shift.ID) == "" {
			shift.ID = uuid.NewString()
		}
		if shift.Status == "" {
			shift.Status = domain.StatusActive
		}
		if shift.CreatedAt.IsZero() {
			shift.CreatedAt = now
		}
		if shift.CreatedBy == "" {
			shift.CreatedBy = "system"
		}
		updated := now
		shift.UpdatedAt = &updated
		working = append(working, shift)
	}

	if err := s.repo.ReplaceHours(ctx, s.db, companyID, working); err != nil {
		return nil, err
	}

	s.log.Info("business hours replaced",
		zap.String("company_id", companyID),
		zap.Int("working_shifts", len(working)),
	)
	return working, nil
}

func (s *Service) ListHolidays(ctx context.Context, companyID string) ([]domain.BusinessHoliday, error) {
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return nil, domain.ErrInvalidCompany
	}
	return s.repo.ListHolidays(ctx, s.db, companyID)
}

func (s *Service) SaveHoliday(ctx context.Context, req domain.SaveHolidayRequest) (*domain.BusinessHoliday, error) {
	companyID := strings.TrimSpace(req.CompanyID)
	if companyID == "" {
		return nil, domain.ErrInvalidCompany
	}

	name := strings.TrimSpace(req.HolidayName)
	if name == "" || len(name) > 150 {
		return nil, domain.ErrInvalidHolidayName
	}

	holidayType := strings.TrimSpace(req.HolidayType)
	if holidayType == "" {
		holidayType = domain.HolidayTypePublic
	}
	if !domain.IsValidHolidayType(holidayType) {
		return nil, domain.ErrInvalidHolidayType
	}

	date, err := normalizeDate(req.HolidayDate)
	if err != nil {
		return nil, domain.ErrInvalidHolidayDate
	}

	var startTime, endTime *string
	if req.IsFullDay {
		// Full day: time bounds are cleared, not just ignored.
		startTime, endTime = nil, nil
	} else {
		if req.StartTime == nil || req.EndTime == nil {
			return nil, domain.ErrMissingTimes
		}
		startMin, err := domain.ParseClock(*req.StartTime)
		if err != nil {
			return nil, domain.ErrInvalidTime
		}
		endMin, err := domain.ParseClock(*req.EndTime)
		if err != nil {
			return nil, domain.ErrInvalidTime
		}
		if startMin >= endMin {
			return nil, domain.ErrInvalidTimeRange
		}
		start := normalizeClock(*req.StartTime)
		end := normalizeClock(*req.EndTime)
		startTime, endTime = &start, &end
	}

	now := s.clock.Now()
	holiday := domain.BusinessHoliday{
		ID:          strings.TrimSpace(req.ID),
		CompanyID:   companyID,
		HolidayDate: date,
		HolidayName: name,
		HolidayType: holidayType,
		CountryID:   req.CountryID,
		IsFullDay:   req.IsFullDay,
		StartTime:   startTime,
		EndTime:     endTime,
		Status:      domain.StatusActive,
		CreatedAt:   now,
		CreatedBy:   "system",
	}

	if holiday.ID == "" {
		holiday.ID = uuid.NewString()
	} else {
		existing, err := s.repo.FindHolidayByID(ctx, s.db, holiday.ID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			holiday.CreatedAt = existing.CreatedAt
			holiday.CreatedBy = existing.CreatedBy
			holiday.IsDeleted = existing.IsDeleted
			updated := now
			holiday.UpdatedAt = &updated
			holiday.UpdatedBy = "system"
		}
	}

	if err := s.repo.UpsertHoliday(ctx, s.db, &holiday); err != nil {
		return nil, err
	}

	s.log.Info("holiday saved",
		zap.String("company_id", companyID),
		zap.String("holiday_id", holiday.ID),
		zap.String("holiday_date", holiday.HolidayDate),
	)
	return &holiday, nil
}

func (s *Service) DeleteHoliday(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.ErrInvalidHolidayID
	}

	existing, err := s.repo.FindHolidayByID(ctx, s.db, id)
	if err != nil {
		return err
	}
	if existing == nil || existing.IsDeleted {
		return domain.ErrNotFound
	}

	return s.repo.SoftDeleteHoliday(ctx, s.db, id)
}

func (s *Service) UpcomingHolidays(ctx context.Context, companyID string) ([]domain.BusinessHoliday, error) {
	holidays, err := s.ListHolidays(ctx, companyID)
	if err != nil {
		return nil, err
	}

	today := s.clock.Now().Format("2006-01-02")
	upcoming := make([]domain.BusinessHoliday, 0, len(holidays))
	for _, h := range holidays {
		if h.HolidayDate >= today {
			upcoming = append(upcoming, h)
		}
	}

	sort.Slice(upcoming, func(i, j int) bool {
		return upcoming[i].HolidayDate < upcoming[j].HolidayDate
	})
	return upcoming, nil
}

func (s *Service) defaultBusinessDay(companyID, day string, now time.Time) domain.BusinessDay {
	weekend := domain.IsWeekendDay(day)
	return domain.BusinessDay{
		ID:           uuid.NewString(),
		CompanyID:    companyID,
		DayOfWeek:    day,
		IsWorkingDay: !weekend,
		IsWeekend:    weekend,
		Status:       domain.StatusActive,
		CreatedAt:    now,
		CreatedBy:    "system",
	}
}

func (s *Service) defaultShift(companyID, day string, now time.Time) domain.BusinessHours {
	defaults := s.defaults.Get()
	weekend := domain.IsWeekendDay(day)

	shiftName := defaults.DefaultShiftName
	remarks := ""
	if weekend {
		shiftName = defaults.WeekendShiftName
		remarks = defaults.WeekendRemark
	}

	return domain.BusinessHours{
		ID:             uuid.NewString(),
		CompanyID:      companyID,
		DayOfWeek:      day,
		ShiftName:      shiftName,
		Remarks:        remarks,
		StartTime:      defaults.DefaultStartTime,
		EndTime:        defaults.DefaultEndTime,
		IsWorkingShift: !weekend,
		Status:         domain.StatusActive,
		CreatedAt:      now,
		CreatedBy:      "system",
	}
}

func normalizeDate(value string) (string, error) {
	value = strings.TrimSpace(value)
	if len(value) > 10 {
		// Date-time input: keep the date component only.
		if _, err := time.Parse(time.RFC3339, value); err == nil {
			value = value[:10]
		}
	}
	if _, err := time.Parse("2006-01-02", value); err != nil {
		return "", err
	}
	return value, nil
}

func normalizeClock(value string) string {
	hour, minute, err := domain.ClockParts(value)
	if err != nil {
		return value
	}
	return domain.FormatClock(hour, minute)
}
