package availability

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// SlotStep is the spacing between candidate start times, in minutes.
const SlotStep = 30

// ParseDurationHours reads the leading integer of a "<N> hour(s)" string.
// Anything that does not start with a positive integer counts as one hour.
func ParseDurationHours(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil || n <= 0 {
		return 1
	}
	return n
}

// ParseClock converts a wall-clock string into minutes after midnight.
// It accepts "15:04", "15:04:05", "3:04 PM" and "3:04PM".
func ParseClock(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	meridiem := ""
	upper := strings.ToUpper(s)
	if strings.HasSuffix(upper, "AM") || strings.HasSuffix(upper, "PM") {
		meridiem = upper[len(upper)-2:]
		s = strings.TrimRightFunc(s[:len(s)-2], unicode.IsSpace)
	}

	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, false
	}

	switch meridiem {
	case "":
		if hour < 0 || hour > 24 || (hour == 24 && minute != 0) {
			return 0, false
		}
	default:
		if hour < 1 || hour > 12 {
			return 0, false
		}
		hour %= 12
		if meridiem == "PM" {
			hour += 12
		}
	}
	return hour*60 + minute, true
}

// parseHour keeps only the hour component of a "HH:MM" string.
func parseHour(s string) (int, bool) {
	head, _, _ := strings.Cut(strings.TrimSpace(s), ":")
	hour, err := strconv.Atoi(head)
	if err != nil || hour < 0 || hour > 24 {
		return 0, false
	}
	return hour * 60, true
}

// FormatClock renders minutes after midnight as a 12-hour label such as "2:30 PM".
func FormatClock(minutes int) string {
	hour := (minutes / 60) % 24
	minute := minutes % 60
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	hour %= 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour, minute, suffix)
}
