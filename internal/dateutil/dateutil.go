// Package dateutil provides date and wall-clock conversion utilities.
package dateutil

import (
	"errors"
	"fmt"
	"time"
)

// Validation errors.
var (
	ErrInvalidDateFormat  = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidTimeFormat  = errors.New("time must be in HH:MM format")
	ErrEndDateBeforeStart = errors.New("end date must be on or after start date")
)

// ToHHMM normalizes a raw time value to "HH:MM".
// It accepts already-short "HH:MM" strings, longer values such as
// "HH:MM:SS" or full timestamps containing a "T", and falls back to
// "00:00" for anything it cannot make sense of.
func ToHHMM(raw string) string {
	s := raw
	// Full timestamp: take the clock part after the date.
	for i := 0; i < len(s); i++ {
		if s[i] == 'T' || s[i] == ' ' {
			s = s[i+1:]
			break
		}
	}
	if len(s) >= 5 {
		s = s[:5]
	}
	if !validHHMM(s) {
		return "00:00"
	}
	return s
}

func validHHMM(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	hour := int(s[0]-'0')*10 + int(s[1]-'0')
	minute := int(s[3]-'0')*10 + int(s[4]-'0')
	return hour < 24 && minute < 60
}

// ValidateHHMM returns ErrInvalidTimeFormat unless s is a valid "HH:MM" time.
func ValidateHHMM(s string) error {
	if !validHHMM(s) {
		return ErrInvalidTimeFormat
	}
	return nil
}

// ToISODate formats t as "yyyy-mm-dd" using local calendar fields.
// Using Year/Month/Day directly (rather than converting through UTC)
// avoids off-by-one-day results near midnight.
func ToISODate(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

// ParseDate parses a date string in YYYY-MM-DD format.
// If the string is empty, returns today's date.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return TruncateToDay(time.Now()), nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}

// TruncateToDay returns t with time set to midnight.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WeekStart returns the Monday of the week containing t.
// Sunday maps back six days, never forward.
func WeekStart(t time.Time) time.Time {
	t = TruncateToDay(t)
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday becomes day 7 in ISO week
	}
	return t.AddDate(0, 0, -(weekday - 1))
}

// WeekdayIndex returns the Monday-based weekday index of t (0=Monday, 6=Sunday).
func WeekdayIndex(t time.Time) int {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return weekday - 1
}

// CombineDateTime composes a date and an "HH:MM" time into a timestamp
// carrying the local UTC offset, formatted per RFC 3339.
// The offset is computed from the instant being encoded, not cached, so
// values straddling a DST change encode their own offset correctly.
func CombineDateTime(date time.Time, hhmm string) (string, error) {
	if err := ValidateHHMM(hhmm); err != nil {
		return "", err
	}
	hour := int(hhmm[0]-'0')*10 + int(hhmm[1]-'0')
	minute := int(hhmm[3]-'0')*10 + int(hhmm[4]-'0')
	t := time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, time.Local)
	return t.Format(time.RFC3339), nil
}

// DateRange represents a validated inclusive date range.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange creates a DateRange with validation.
// startDate can be empty (defaults to today); endDate can be empty
// (defaults to startDate). Returns an error if endDate is before startDate.
func NewDateRange(startDate, endDate string) (*DateRange, error) {
	start, err := ParseDate(startDate)
	if err != nil {
		return nil, err
	}

	end := start
	if endDate != "" {
		end, err = ParseDate(endDate)
		if err != nil {
			return nil, err
		}
	}

	if end.Before(start) {
		return nil, ErrEndDateBeforeStart
	}

	return &DateRange{Start: start, End: end}, nil
}

// WeekdayName returns the name of the weekday (0=Monday).
func WeekdayName(weekday int) string {
	names := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	if weekday < 0 || weekday > 6 {
		return ""
	}
	return names[weekday]
}

// WeekdayShortName returns the short name of the weekday (0=Monday).
func WeekdayShortName(weekday int) string {
	names := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	if weekday < 0 || weekday > 6 {
		return ""
	}
	return names[weekday]
}
