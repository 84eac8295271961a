package domain

import "fmt"

// WeeklyStats are the derived values the hours editor shows, recomputed
// on every change.
type WeeklyStats struct {
	TotalShifts      int    `json:"totalShifts"`
	TotalWeeklyHours string `json:"totalWeeklyHours"`
	ActiveDays       int    `json:"activeDays"`
}

// ComputeWeeklyStats sums working shifts only. Total hours carry one
// decimal of precision.
func ComputeWeeklyStats(shifts []BusinessHours) WeeklyStats {
	totalMinutes := 0
	working := 0
	for _, shift := range shifts {
		if !shift.IsWorkingShift {
			continue
		}
		working++
		totalMinutes += shift.Minutes()
	}

	return WeeklyStats{
		TotalShifts:      working,
		TotalWeeklyHours: fmt.Sprintf("%.1f", float64(totalMinutes)/60),
		ActiveDays:       working,
	}
}

// CountWorkingDays counts entries with the working flag set.
func CountWorkingDays(days []BusinessDay) int {
	count := 0
	for _, d := range days {
		if d.IsWorkingDay {
			count++
		}
	}
	return count
}

// HolidayCounts are the type-filtered totals the holidays editor shows.
type HolidayCounts struct {
	Total    int `json:"total"`
	Public   int `json:"public"`
	Company  int `json:"company"`
	Optional int `json:"optional"`
}

func CountHolidays(holidays []BusinessHoliday) HolidayCounts {
	counts := HolidayCounts{Total: len(holidays)}
	for _, h := range holidays {
		switch h.HolidayType {
		case HolidayTypePublic:
			counts.Public++
		case HolidayTypeCompany:
			counts.Company++
		case HolidayTypeOptional:
			counts.Optional++
		}
	}
	return counts
}
