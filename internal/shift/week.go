package shift

import (
	"sort"
	"time"

	"github.com/rotacli/rota/internal/dateutil"
)

// WeekSchedule holds one week's roster: the Monday-to-Sunday window,
// its publication state, and the shift collection for that range.
// It is the unit the store reads and writes, keyed by week start date.
type WeekSchedule struct {
	ID        int64
	WeekStart time.Time // Monday, midnight local
	WeekEnd   time.Time // Sunday
	Published bool
	Shifts    []*Shift
}

// NewWeekSchedule creates an empty WeekSchedule for the week containing date.
func NewWeekSchedule(date time.Time) *WeekSchedule {
	monday := dateutil.WeekStart(date)
	return &WeekSchedule{
		WeekStart: monday,
		WeekEnd:   monday.AddDate(0, 0, 6),
	}
}

// Contains returns true if the given date falls inside this week.
func (w *WeekSchedule) Contains(date time.Time) bool {
	d := dateutil.TruncateToDay(date)
	return !d.Before(w.WeekStart) && !d.After(w.WeekEnd)
}

// DayDate returns the date of the given weekday (0=Monday, 6=Sunday).
func (w *WeekSchedule) DayDate(weekday int) time.Time {
	return w.WeekStart.AddDate(0, 0, weekday)
}

// ShiftsOn returns the shifts on the given date sorted by start time,
// preserving collection order among equal starts.
func (w *WeekSchedule) ShiftsOn(date time.Time) []*Shift {
	d := dateutil.TruncateToDay(date)
	var result []*Shift
	for _, s := range w.Shifts {
		if s.Date.Equal(d) {
			result = append(result, s)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Start < result[j].Start
	})
	return result
}

// ShiftByID returns the shift with the given id, nil if absent.
func (w *WeekSchedule) ShiftByID(id int64) *Shift {
	for _, s := range w.Shifts {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// GroupMembers returns every shift belonging to the given recurrence group.
func (w *WeekSchedule) GroupMembers(groupID string) []*Shift {
	if groupID == "" {
		return nil
	}
	var result []*Shift
	for _, s := range w.Shifts {
		if s.RecurrenceGroupID == groupID {
			result = append(result, s)
		}
	}
	return result
}

// TotalMinutes returns the scheduled minutes across all shifts, counting a
// multi-staff shift once per assigned staff member.
func (w *WeekSchedule) TotalMinutes() int {
	total := 0
	for _, s := range w.Shifts {
		total += s.Duration() * len(s.StaffIDs)
	}
	return total
}
