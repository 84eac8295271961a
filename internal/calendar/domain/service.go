package domain

import (
	"context"
	"errors"
)

var (
	ErrInvalidCompany     = errors.New("invalid_company")
	ErrInvalidDaySet      = errors.New("invalid_day_set")
	ErrInvalidDay         = errors.New("invalid_day")
	ErrInvalidTime        = errors.New("invalid_time")
	ErrInvalidTimeRange   = errors.New("invalid_time_range")
	ErrInvalidHolidayID   = errors.New("invalid_holiday_id")
	ErrInvalidHolidayName = errors.New("invalid_holiday_name")
	ErrInvalidHolidayType = errors.New("invalid_holiday_type")
	ErrInvalidHolidayDate = errors.New("invalid_holiday_date")
	ErrMissingTimes       = errors.New("missing_times")
	ErrNotFound           = errors.New("not_found")
)

type SaveHolidayRequest struct {
	ID          string
	CompanyID   string
	HolidayDate string
	HolidayName string
	HolidayType string
	CountryID   *string
	IsFullDay   bool
	StartTime   *string
	EndTime     *string
}

type Service interface {
	// LoadBusinessDays returns the full 7-entry set for the company,
	// one per day of week. When no records exist it materializes the
	// default week (Mon-Fri working, Sat/Sun off) without persisting.
	LoadBusinessDays(ctx context.Context, companyID string) ([]BusinessDay, error)

	// SaveBusinessDays replaces the company's entire day set. The
	// precondition is exactly seven entries, one per day name.
	SaveBusinessDays(ctx context.Context, companyID string, days []BusinessDay) ([]BusinessDay, error)

	// LoadBusinessHours merges stored shifts onto the canonical 7-day
	// skeleton, synthesizing defaults for days without a record.
	LoadBusinessHours(ctx context.Context, companyID string) ([]BusinessHours, error)

	// SaveBusinessHours validates every shift's time range, then
	// replaces the company's shifts with the working ones only.
	SaveBusinessHours(ctx context.Context, companyID string, shifts []BusinessHours) ([]BusinessHours, error)

	ListHolidays(ctx context.Context, companyID string) ([]BusinessHoliday, error)
	SaveHoliday(ctx context.Context, req SaveHolidayRequest) (*BusinessHoliday, error)
	DeleteHoliday(ctx context.Context, id string) error

	// UpcomingHolidays returns holidays dated today or later, ascending.
	UpcomingHolidays(ctx context.Context, companyID string) ([]BusinessHoliday, error)
}
