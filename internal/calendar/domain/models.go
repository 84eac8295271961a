package domain

import "time"

const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

const (
	HolidayTypePublic   = "Public"
	HolidayTypeCompany  = "Company"
	HolidayTypeOptional = "Optional"
)

// BusinessDay marks one day of the canonical week as working or
// non-working for a company. Exactly seven records exist per company,
// one per day name.
type BusinessDay struct {
	ID           string     `gorm:"primaryKey;column:id" json:"businessDayId"`
	CompanyID    string     `gorm:"not null;index" json:"companyId"`
	DayOfWeek    string     `gorm:"not null" json:"dayOfWeek"`
	IsWorkingDay bool       `gorm:"not null" json:"isWorkingDay"`
	IsWeekend    bool       `gorm:"not null" json:"isWeekend"`
	Remarks      string     `json:"remarks,omitempty"`
	Status       string     `gorm:"not null;default:Active" json:"status"`
	IsDeleted    bool       `gorm:"not null;default:false" json:"isDeleted"`
	CreatedAt    time.Time  `gorm:"not null" json:"createdAt"`
	CreatedBy    string     `gorm:"not null" json:"createdBy"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`
	UpdatedBy    string     `json:"updatedBy,omitempty"`
}

func (BusinessDay) TableName() string { return "business_days" }

// BusinessHours is one named shift on one day of the week. Times are
// "HH:mm" strings, minute precision.
type BusinessHours struct {
	ID                 string     `gorm:"primaryKey;column:id" json:"businessHoursId"`
	CompanyID          string     `gorm:"not null;index" json:"companyId"`
	DayOfWeek          string     `gorm:"not null" json:"dayOfWeek"`
	ShiftName          string     `gorm:"not null" json:"shiftName"`
	StartTime          string     `gorm:"not null" json:"startTime"`
	EndTime            string     `gorm:"not null" json:"endTime"`
	IsWorkingShift     bool       `gorm:"not null" json:"isWorkingShift"`
	IsOvertimeEligible bool       `gorm:"not null;default:false" json:"isOvertimeEligible"`
	Remarks            string     `json:"remarks,omitempty"`
	Status             string     `gorm:"not null;default:Active" json:"status"`
	IsDeleted          bool       `gorm:"not null;default:false" json:"isDeleted"`
	CreatedAt          time.Time  `gorm:"not null" json:"createdAt"`
	CreatedBy          string     `gorm:"not null" json:"createdBy"`
	UpdatedAt          *time.Time `json:"updatedAt,omitempty"`
	UpdatedBy          string     `json:"updatedBy,omitempty"`
}

func (BusinessHours) TableName() string { return "business_hours" }

// Minutes returns the shift length in minutes, zero when the range is
// inverted or unparseable.
func (h BusinessHours) Minutes() int {
	return MinutesBetween(h.StartTime, h.EndTime)
}

// ValidateTimeRange fails when startTime >= endTime, regardless of the
// working flag. Evaluated per record before persistence, not only at
// the form level.
func (h BusinessHours) ValidateTimeRange() error {
	startMin, err := ParseClock(h.StartTime)
	if err != nil {
		return ErrInvalidTime
	}
	endMin, err := ParseClock(h.EndTime)
	if err != nil {
		return ErrInvalidTime
	}
	if startMin >= endMin {
		return ErrInvalidTimeRange
	}
	return nil
}

// BusinessHoliday is a dated exception to the weekly pattern. Dates are
// "YYYY-MM-DD" strings; partial-day holidays carry "HH:mm" bounds.
type BusinessHoliday struct {
	ID          string     `gorm:"primaryKey;column:id" json:"businessHolidayId"`
	CompanyID   string     `gorm:"not null;index" json:"companyId"`
	HolidayDate string     `gorm:"not null" json:"holidayDate"`
	HolidayName string     `gorm:"not null" json:"holidayName"`
	HolidayType string     `gorm:"not null;default:Public" json:"holidayType"`
	CountryID   *string    `json:"countryId,omitempty"`
	IsFullDay   bool       `gorm:"not null;default:true" json:"isFullDay"`
	StartTime   *string    `json:"startTime,omitempty"`
	EndTime     *string    `json:"endTime,omitempty"`
	Status      string     `gorm:"not null;default:Active" json:"status"`
	IsDeleted   bool       `gorm:"not null;default:false" json:"isDeleted"`
	CreatedAt   time.Time  `gorm:"not null" json:"createdAt"`
	CreatedBy   string     `gorm:"not null" json:"createdBy"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
	UpdatedBy   string     `json:"updatedBy,omitempty"`
}

func (BusinessHoliday) TableName() string { return "business_holidays" }

// IsValidHolidayType reports whether t is one of the three holiday kinds.
func IsValidHolidayType(t string) bool {
	switch t {
	case HolidayTypePublic, HolidayTypeCompany, HolidayTypeOptional:
		return true
	default:
		return false
	}
}
