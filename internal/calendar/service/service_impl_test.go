package service

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/smallbiznis/bizconf/internal/calendar/domain"
	"github.com/smallbiznis/bizconf/internal/calendar/repository"
	"github.com/smallbiznis/bizconf/internal/clock"
	"github.com/smallbiznis/bizconf/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (domain.Service, *gorm.DB, *clock.FakeClock) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.BusinessDay{},
		&domain.BusinessHours{},
		&domain.BusinessHoliday{},
	))

	fake := clock.NewFakeClock(time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC))
	svc := New(Params{
		DB:       db,
		Log:      zap.NewNop(),
		Repo:     repository.Provide(),
		Clock:    fake,
		Defaults: config.NewStaticCalendarConfigHolder(config.DefaultCalendarConfig()),
	})
	return svc, db, fake
}

func TestLoadBusinessDaysMaterializesDefaultWeek(t *testing.T) {
	svc, db, _ := newTestService(t)
	ctx := context.Background()

	days, err := svc.LoadBusinessDays(ctx, "cmp-1")
	require.NoError(t, err)
	require.Len(t, days, 7)

	for i, day := range days {
		assert.Equal(t, domain.DaysOfWeek[i], day.DayOfWeek)
		if day.DayOfWeek == "Saturday" || day.DayOfWeek == "Sunday" {
			assert.False(t, day.IsWorkingDay)
			assert.True(t, day.IsWeekend)
		} else {
			assert.True(t, day.IsWorkingDay)
			assert.False(t, day.IsWeekend)
		}
	}

	// Defaults are synthesized on read, never written back.
	var count int64
	require.NoError(t, db.Model(&domain.BusinessDay{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestLoadBusinessDaysForcesWeekendFromDayName(t *testing.T) {
	svc, db, _ := newTestService(t)
	ctx := context.Background()

	// Stored row contradicts the canonical weekend flag.
	require.NoError(t, db.Create(&domain.BusinessDay{
		ID:           "d1",
		CompanyID:    "cmp-1",
		DayOfWeek:    "Saturday",
		IsWorkingDay: true,
		IsWeekend:    false,
		Status:       domain.StatusActive,
		CreatedAt:    time.Now(),
		CreatedBy:    "system",
	}).Error)

	days, err := svc.LoadBusinessDays(ctx, "cmp-1")
	require.NoError(t, err)

	var saturday domain.BusinessDay
	for _, d := range days {
		if d.DayOfWeek == "Saturday" {
			saturday = d
		}
	}
	assert.True(t, saturday.IsWeekend, "weekend flag comes from the day name")
	assert.True(t, saturday.IsWorkingDay, "stored working flag is preserved")
}

func TestSaveBusinessDaysRequiresExactlySeven(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	days, err := svc.LoadBusinessDays(ctx, "cmp-1")
	require.NoError(t, err)

	_, err = svc.SaveBusinessDays(ctx, "cmp-1", days[:6])
	assert.ErrorIs(t, err, domain.ErrInvalidDaySet)

	duplicated := append([]domain.BusinessDay{}, days...)
	duplicated[6].DayOfWeek = duplicated[0].DayOfWeek
	_, err = svc.SaveBusinessDays(ctx, "cmp-1", duplicated)
	assert.ErrorIs(t, err, domain.ErrInvalidDaySet)

	saved, err := svc.SaveBusinessDays(ctx, "cmp-1", days)
	require.NoError(t, err)
	assert.Len(t, saved, 7)
}

func TestSaveBusinessDaysReplacesWholeSet(t *testing.T) {
	svc, db, _ := newTestService(t)
	ctx := context.Background()

	days, err := svc.LoadBusinessDays(ctx, "cmp-1")
	require.NoError(t, err)
	_, err = svc.SaveBusinessDays(ctx, "cmp-1", days)
	require.NoError(t, err)

	days[5].IsWorkingDay = true // Saturday becomes working
	saved, err := svc.SaveBusinessDays(ctx, "cmp-1", days)
	require.NoError(t, err)
	assert.Equal(t, 6, domain.CountWorkingDays(saved))

	var count int64
	require.NoError(t, db.Model(&domain.BusinessDay{}).Where("company_id = ?", "cmp-1").Count(&count).Error)
	assert.EqualValues(t, 7, count)
}

func TestLoadBusinessHoursSynthesizesDefaults(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	shifts, err := svc.LoadBusinessHours(ctx, "cmp-1")
	require.NoError(t, err)
	require.Len(t, shifts, 7)

	for _, shift := range shifts {
		assert.Equal(t, "09:00", shift.StartTime)
		assert.Equal(t, "17:00", shift.EndTime)
		if domain.IsWeekendDay(shift.DayOfWeek) {
			assert.Equal(t, "Closed", shift.ShiftName)
			assert.False(t, shift.IsWorkingShift)
			assert.Equal(t, "Weekend", shift.Remarks)
		} else {
			assert.Equal(t, "Standard", shift.ShiftName)
			assert.True(t, shift.IsWorkingShift)
		}
	}
}

func TestSaveBusinessHoursValidatesEveryRecord(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	shifts, err := svc.LoadBusinessHours(ctx, "cmp-1")
	require.NoError(t, err)

	// An inverted range on a non-working day still blocks the save.
	shifts[6].StartTime = "18:00"
	shifts[6].EndTime = "09:00"
	_, err = svc.SaveBusinessHours(ctx, "cmp-1", shifts)
	assert.ErrorIs(t, err, domain.ErrInvalidTimeRange)

	shifts[6].StartTime = "bad"
	_, err = svc.SaveBusinessHours(ctx, "cmp-1", shifts)
	assert.ErrorIs(t, err, domain.ErrInvalidTime)
}

func TestSaveBusinessHoursPersistsWorkingShiftsOnly(t *testing.T) {
	svc, db, _ := newTestService(t)
	ctx := context.Background()

	shifts, err := svc.LoadBusinessHours(ctx, "cmp-1")
	require.NoError(t, err)

	saved, err := svc.SaveBusinessHours(ctx, "cmp-1", shifts)
	require.NoError(t, err)
	assert.Len(t, saved, 5)

	var count int64
	require.NoError(t, db.Model(&domain.BusinessHours{}).Where("company_id = ?", "cmp-1").Count(&count).Error)
	assert.EqualValues(t, 5, count)
}

func TestSaveHolidayFullDayClearsTimes(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	start, end := "09:00", "13:00"
	holiday, err := svc.SaveHoliday(ctx, domain.SaveHolidayRequest{
		CompanyID:   "cmp-1",
		HolidayDate: "2025-12-25",
		HolidayName: "Christmas",
		IsFullDay:   true,
		StartTime:   &start,
		EndTime:     &end,
	})
	require.NoError(t, err)
	assert.Nil(t, holiday.StartTime)
	assert.Nil(t, holiday.EndTime)
	assert.Equal(t, domain.HolidayTypePublic, holiday.HolidayType)
}

func TestSaveHolidayPartialDayRequiresValidRange(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	req := domain.SaveHolidayRequest{
		CompanyID:   "cmp-1",
		HolidayDate: "2025-12-24",
		HolidayName: "Christmas Eve",
		IsFullDay:   false,
	}
	_, err := svc.SaveHoliday(ctx, req)
	assert.ErrorIs(t, err, domain.ErrMissingTimes)

	start, end := "14:00", "12:00"
	req.StartTime, req.EndTime = &start, &end
	_, err = svc.SaveHoliday(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidTimeRange)

	start, end = "12:00", "17:00"
	holiday, err := svc.SaveHoliday(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, holiday.StartTime)
	assert.Equal(t, "12:00", *holiday.StartTime)
	assert.Equal(t, "17:00", *holiday.EndTime)
}

func TestSaveHolidayRejectsBadInput(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.SaveHoliday(ctx, domain.SaveHolidayRequest{
		CompanyID:   "cmp-1",
		HolidayDate: "25-12-2025",
		HolidayName: "Christmas",
		IsFullDay:   true,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidHolidayDate)

	_, err = svc.SaveHoliday(ctx, domain.SaveHolidayRequest{
		CompanyID:   "cmp-1",
		HolidayDate: "2025-12-25",
		HolidayName: "",
		IsFullDay:   true,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidHolidayName)

	_, err = svc.SaveHoliday(ctx, domain.SaveHolidayRequest{
		CompanyID:   "cmp-1",
		HolidayDate: "2025-12-25",
		HolidayName: "Christmas",
		HolidayType: "Festival",
		IsFullDay:   true,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidHolidayType)
}

func TestSaveHolidayUpdatePreservesCreatedStamp(t *testing.T) {
	svc, _, fake := newTestService(t)
	ctx := context.Background()

	created, err := svc.SaveHoliday(ctx, domain.SaveHolidayRequest{
		CompanyID:   "cmp-1",
		HolidayDate: "2025-12-25",
		HolidayName: "Christmas",
		IsFullDay:   true,
	})
	require.NoError(t, err)

	fake.Advance(48 * time.Hour)
	updated, err := svc.SaveHoliday(ctx, domain.SaveHolidayRequest{
		ID:          created.ID,
		CompanyID:   "cmp-1",
		HolidayDate: "2025-12-26",
		HolidayName: "Boxing Day",
		IsFullDay:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	require.NotNil(t, updated.UpdatedAt)
	assert.True(t, updated.UpdatedAt.After(created.CreatedAt))
}

func TestDeleteHolidayTombstones(t *testing.T) {
	svc, db, _ := newTestService(t)
	ctx := context.Background()

	holiday, err := svc.SaveHoliday(ctx, domain.SaveHolidayRequest{
		CompanyID:   "cmp-1",
		HolidayDate: "2025-12-25",
		HolidayName: "Christmas",
		IsFullDay:   true,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteHoliday(ctx, holiday.ID))

	listed, err := svc.ListHolidays(ctx, "cmp-1")
	require.NoError(t, err)
	assert.Empty(t, listed)

	// The row itself survives as a tombstone.
	var count int64
	require.NoError(t, db.Model(&domain.BusinessHoliday{}).Where("id = ?", holiday.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	assert.ErrorIs(t, svc.DeleteHoliday(ctx, holiday.ID), domain.ErrNotFound)
	assert.ErrorIs(t, svc.DeleteHoliday(ctx, "missing"), domain.ErrNotFound)
}

func TestUpcomingHolidaysFiltersAndSorts(t *testing.T) {
	svc, _, fake := newTestService(t)
	ctx := context.Background()
	fake.Set(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC))

	for _, h := range []struct{ date, name string }{
		{"2025-01-01", "New Year"},
		{"2025-12-25", "Christmas"},
		{"2025-06-01", "Today"},
		{"2025-08-15", "Mid August"},
	} {
		_, err := svc.SaveHoliday(ctx, domain.SaveHolidayRequest{
			CompanyID:   "cmp-1",
			HolidayDate: h.date,
			HolidayName: h.name,
			IsFullDay:   true,
		})
		require.NoError(t, err)
	}

	upcoming, err := svc.UpcomingHolidays(ctx, "cmp-1")
	require.NoError(t, err)
	require.Len(t, upcoming, 3)
	assert.Equal(t, "Today", upcoming[0].HolidayName)
	assert.Equal(t, "Mid August", upcoming[1].HolidayName)
	assert.Equal(t, "Christmas", upcoming[2].HolidayName)
}

func TestBlankCompanyIDRejected(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.LoadBusinessDays(ctx, "  ")
	assert.ErrorIs(t, err, domain.ErrInvalidCompany)
	_, err = svc.SaveBusinessHours(ctx, "", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidCompany)
	_, err = svc.ListHolidays(ctx, "")
	assert.ErrorIs(t, err, domain.ErrInvalidCompany)
}
