package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Times cross the service boundary as 24-hour "HH:mm" strings with
// minute precision. Any date component a client control carried is
// discarded at the boundary.

// ParseClock parses an "HH:mm" string into minutes since midnight.
func ParseClock(value string) (int, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) < 2 {
		return 0, fmt.Errorf("invalid time %q", value)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid hour in %q", value)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid minute in %q", value)
	}

	return hour*60 + minute, nil
}

// FormatClock renders hour and minute as a zero-padded "HH:mm" string.
func FormatClock(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// ClockParts splits an "HH:mm" string into hour and minute. The
// conversion is lossless for minute granularity.
func ClockParts(value string) (hour, minute int, err error) {
	total, err := ParseClock(value)
	if err != nil {
		return 0, 0, err
	}
	return total / 60, total % 60, nil
}

// MinutesBetween returns end-start in minutes, floored at zero.
func MinutesBetween(start, end string) int {
	startMin, err := ParseClock(start)
	if err != nil {
		return 0
	}
	endMin, err := ParseClock(end)
	if err != nil {
		return 0
	}
	if endMin <= startMin {
		return 0
	}
	return endMin - startMin
}

// DurationLabel renders a minute count as "Xh Ym", or "Xh" when the
// minutes component is zero.
func DurationLabel(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	if m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dh", h)
}
