package domain

// DaysOfWeek is the canonical ordered week. Every per-day collection in
// the calendar is keyed by these names, Monday first.
var DaysOfWeek = [7]string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// IsWeekendDay reports whether the named day is a weekend day. Weekend
// identity is fixed per day name and never user-editable.
func IsWeekendDay(day string) bool {
	return day == "Saturday" || day == "Sunday"
}

// IsValidDay reports whether day is one of the seven canonical names.
func IsValidDay(day string) bool {
	for _, d := range DaysOfWeek {
		if d == day {
			return true
		}
	}
	return false
}

// DayIndex returns the position of day in the canonical week, or -1.
func DayIndex(day string) int {
	for i, d := range DaysOfWeek {
		if d == day {
			return i
		}
	}
	return -1
}
