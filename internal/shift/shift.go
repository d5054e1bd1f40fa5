// Package shift defines the core domain types for rota.
package shift

import (
	"errors"
	"fmt"
	"time"

	"github.com/rotacli/rota/internal/dateutil"
)

// Validation errors.
var (
	ErrNoStaffAssigned   = errors.New("shift must have at least one staff member assigned")
	ErrInvalidTimeFormat = errors.New("time must be in HH:MM format")
	ErrEndBeforeStart    = errors.New("end time must be after start time")
	ErrInvalidFrequency  = errors.New("frequency must be DAILY, WEEKLY, MONTHLY or CUSTOM")
)

// Domain errors.
var (
	ErrShiftNotFound = errors.New("shift not found")
	ErrStaffNotFound = errors.New("staff member not found")
)

// DefaultTitle is used when a shift is saved with a blank title.
const DefaultTitle = "Shift"

// Frequency represents the cadence of a recurring shift.
type Frequency string

const (
	FrequencyDaily   Frequency = "DAILY"
	FrequencyWeekly  Frequency = "WEEKLY"
	FrequencyMonthly Frequency = "MONTHLY"
	FrequencyCustom  Frequency = "CUSTOM"
)

// Valid returns true if the frequency is a known value.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyCustom:
		return true
	default:
		return false
	}
}

// TaskStub is a lightweight task attached to a shift, display-only.
type TaskStub struct {
	Title    string
	Priority string
}

// Shift represents a scheduled work block assigned to one or more staff.
// An ID of zero marks a transient shift that has not been persisted yet.
type Shift struct {
	ID    int64
	Title string
	Date  time.Time // calendar date, midnight local
	Start string    // "HH:MM", inclusive
	End   string    // "HH:MM", exclusive, strictly after Start (no cross-midnight)

	// StaffIDs is a non-empty ordered set; the first entry is the primary
	// staff member used for default coloring.
	StaffIDs []int64

	// Color is an optional explicit display color ("#rrggbb"). When empty,
	// the display color is derived from the primary staff id.
	Color string

	Tasks []TaskStub

	IsRecurring       bool
	RecurrenceGroupID string // shared uuid for all members of a series, "" for single shifts
	RecurrenceEndDate time.Time
	Frequency         Frequency
	DaysOfWeek        []int // Monday-based weekday indices, only meaningful for FrequencyCustom

	CreatedAt time.Time
}

// New creates a validated single Shift.
// date can be empty (defaults to today) or in YYYY-MM-DD format.
// start and end must be in HH:MM format with end strictly after start.
func New(title, date, start, end string, staffIDs []int64) (*Shift, error) {
	if title == "" {
		title = DefaultTitle
	}
	if len(staffIDs) == 0 {
		return nil, ErrNoStaffAssigned
	}

	day, err := dateutil.ParseDate(date)
	if err != nil {
		return nil, err
	}

	if err := dateutil.ValidateHHMM(start); err != nil {
		return nil, fmt.Errorf("start time: %w", ErrInvalidTimeFormat)
	}
	if err := dateutil.ValidateHHMM(end); err != nil {
		return nil, fmt.Errorf("end time: %w", ErrInvalidTimeFormat)
	}
	if end <= start {
		return nil, ErrEndBeforeStart
	}

	return &Shift{
		Title:     title,
		Date:      day,
		Start:     start,
		End:       end,
		StaffIDs:  append([]int64(nil), staffIDs...),
		CreatedAt: time.Now(),
	}, nil
}

// Validate checks the invariants a shift must satisfy before it is saved.
func (s *Shift) Validate() error {
	if len(s.StaffIDs) == 0 {
		return ErrNoStaffAssigned
	}
	if err := dateutil.ValidateHHMM(s.Start); err != nil {
		return fmt.Errorf("start time: %w", ErrInvalidTimeFormat)
	}
	if err := dateutil.ValidateHHMM(s.End); err != nil {
		return fmt.Errorf("end time: %w", ErrInvalidTimeFormat)
	}
	if s.End <= s.Start {
		return ErrEndBeforeStart
	}
	if s.IsRecurring {
		if !s.Frequency.Valid() {
			return ErrInvalidFrequency
		}
		if s.Frequency == FrequencyCustom && len(s.DaysOfWeek) == 0 {
			return ErrCustomNeedsWeekdays
		}
	}
	return nil
}

// IsSaved returns true if the shift has a persisted (non-temporary) id.
func (s *Shift) IsSaved() bool {
	return s.ID > 0
}

// DayIndex returns the Monday-based weekday index derived from Date.
// It is always derived, never stored.
func (s *Shift) DayIndex() int {
	return dateutil.WeekdayIndex(s.Date)
}

// PrimaryStaff returns the first assigned staff id, used for default coloring.
// Returns 0 when no staff is assigned.
func (s *Shift) PrimaryStaff() int64 {
	if len(s.StaffIDs) == 0 {
		return 0
	}
	return s.StaffIDs[0]
}

// HasStaff returns true if the given staff id is assigned to this shift.
func (s *Shift) HasStaff(staffID int64) bool {
	for _, id := range s.StaffIDs {
		if id == staffID {
			return true
		}
	}
	return false
}

// Duration returns the shift duration in minutes.
func (s *Shift) Duration() int {
	return TimeToMinutes(s.End) - TimeToMinutes(s.Start)
}

// OverlapsWith returns true if this shift overlaps another on the same day.
func (s *Shift) OverlapsWith(other *Shift) bool {
	if other == nil {
		return false
	}
	if !s.Date.Equal(other.Date) {
		return false
	}
	return TimesOverlap(s.Start, s.End, other.Start, other.End)
}

// SharesStaffWith returns true if both shifts have at least one staff
// member in common.
func (s *Shift) SharesStaffWith(other *Shift) bool {
	for _, id := range s.StaffIDs {
		if other.HasStaff(id) {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the shift.
func (s *Shift) Clone() *Shift {
	c := *s
	c.StaffIDs = append([]int64(nil), s.StaffIDs...)
	c.Tasks = append([]TaskStub(nil), s.Tasks...)
	c.DaysOfWeek = append([]int(nil), s.DaysOfWeek...)
	return &c
}
