package shift

import (
	"sort"
	"time"

	"github.com/rotacli/rota/internal/dateutil"
)

// DefaultHourHeight is the vertical units one hour occupies in the grid.
const DefaultHourHeight = 60

// Placed is a shift positioned for grid rendering: Top and Height are
// vertical units derived from the shift times and the hour height.
type Placed struct {
	*Shift
	Top    int
	Height int
}

// Views holds every derived grouping of one normalized shift collection.
// It never mutates the shifts; it only groups and positions them.
type Views struct {
	// ByDayIndex groups shifts per weekday (0=Monday) with computed
	// positions, for week and day grid rendering. A multi-staff shift
	// appears exactly once per day cell.
	ByDayIndex [7][]Placed

	// ByStaffByDate fans each shift out to every assigned staff member,
	// keyed by staff id then ISO date, for the timesheet matrix.
	ByStaffByDate map[int64]map[string][]*Shift

	// ByDate groups shifts by ISO date for month and list views.
	ByDate map[string][]*Shift
}

// BuildViews derives all view groupings for the shifts inside
// [rangeStart, rangeEnd] (inclusive dates). Day indices come from each
// shift's own weekday (0=Monday). Empty inputs yield empty (non-nil)
// maps and empty day slices.
func BuildViews(shifts []*Shift, rangeStart, rangeEnd time.Time, hourHeight int) *Views {
	if hourHeight <= 0 {
		hourHeight = DefaultHourHeight
	}

	v := &Views{
		ByStaffByDate: make(map[int64]map[string][]*Shift),
		ByDate:        make(map[string][]*Shift),
	}

	start := dateutil.TruncateToDay(rangeStart)
	end := dateutil.TruncateToDay(rangeEnd)
	if end.Before(start) {
		return v
	}

	for _, s := range shifts {
		d := dateutil.TruncateToDay(s.Date)
		if d.Before(start) || d.After(end) {
			continue
		}

		day := s.DayIndex()
		v.ByDayIndex[day] = append(v.ByDayIndex[day], Placed{
			Shift:  s,
			Top:    TimeToMinutes(s.Start) * hourHeight / 60,
			Height: s.Duration() * hourHeight / 60,
		})

		key := dateutil.ToISODate(d)
		v.ByDate[key] = append(v.ByDate[key], s)

		for _, staffID := range s.StaffIDs {
			byDate := v.ByStaffByDate[staffID]
			if byDate == nil {
				byDate = make(map[string][]*Shift)
				v.ByStaffByDate[staffID] = byDate
			}
			byDate[key] = append(byDate[key], s)
		}
	}

	for day := range v.ByDayIndex {
		placed := v.ByDayIndex[day]
		sort.SliceStable(placed, func(i, j int) bool {
			return placed[i].Start < placed[j].Start
		})
	}

	return v
}

// ShiftsForDay returns the positioned shifts for a weekday (0=Monday).
// Out-of-range days yield nil.
func (v *Views) ShiftsForDay(day int) []Placed {
	if day < 0 || day > 6 {
		return nil
	}
	return v.ByDayIndex[day]
}

// StaffMinutesOn returns the scheduled minutes for one staff member on one
// date, for timesheet totals.
func (v *Views) StaffMinutesOn(staffID int64, isoDate string) int {
	total := 0
	for _, s := range v.ByStaffByDate[staffID][isoDate] {
		total += s.Duration()
	}
	return total
}

// ViewCache memoizes BuildViews against the identity of its inputs.
// Views recompute only when the shift collection reference or the visible
// range changes, the same reference-equality contract the orchestrator
// relies on when it replaces the collection wholesale after a write.
type ViewCache struct {
	shifts     []*Shift
	rangeStart time.Time
	rangeEnd   time.Time
	hourHeight int
	views      *Views
}

// Get returns the cached views when the inputs are identical to the last
// call, rebuilding otherwise.
func (c *ViewCache) Get(shifts []*Shift, rangeStart, rangeEnd time.Time, hourHeight int) *Views {
	if c.views != nil &&
		sameCollection(c.shifts, shifts) &&
		c.rangeStart.Equal(rangeStart) &&
		c.rangeEnd.Equal(rangeEnd) &&
		c.hourHeight == hourHeight {
		return c.views
	}

	c.shifts = shifts
	c.rangeStart = rangeStart
	c.rangeEnd = rangeEnd
	c.hourHeight = hourHeight
	c.views = BuildViews(shifts, rangeStart, rangeEnd, hourHeight)
	return c.views
}

// Invalidate drops the cached views so the next Get rebuilds.
func (c *ViewCache) Invalidate() {
	c.views = nil
}

// sameCollection reports whether two slices are the same collection by
// identity: same length and same backing start.
func sameCollection(a, b []*Shift) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	return &a[0] == &b[0]
}
