package shift

import (
	"testing"
	"time"
)

func TestNewWeekSchedule(t *testing.T) {
	// Thursday 2026-08-27 belongs to the week of Monday the 24th.
	w := NewWeekSchedule(time.Date(2026, 8, 27, 14, 0, 0, 0, time.Local))

	if w.WeekStart.Weekday() != time.Monday {
		t.Errorf("week start is %v, want Monday", w.WeekStart.Weekday())
	}
	if w.WeekStart.Day() != 24 {
		t.Errorf("week start day = %d, want 24", w.WeekStart.Day())
	}
	if w.WeekEnd.Weekday() != time.Sunday {
		t.Errorf("week end is %v, want Sunday", w.WeekEnd.Weekday())
	}
	if w.Published {
		t.Error("new week must start as draft")
	}
}

func TestWeekContains(t *testing.T) {
	w := NewWeekSchedule(time.Date(2026, 8, 24, 0, 0, 0, 0, time.Local))

	if !w.Contains(time.Date(2026, 8, 30, 23, 0, 0, 0, time.Local)) {
		t.Error("sunday of the week should be contained")
	}
	if w.Contains(time.Date(2026, 8, 31, 0, 0, 0, 0, time.Local)) {
		t.Error("next monday should not be contained")
	}
}

func TestShiftsOn(t *testing.T) {
	w := NewWeekSchedule(time.Date(2026, 8, 24, 0, 0, 0, 0, time.Local))
	w.Shifts = []*Shift{
		mustShift(t, 1, "2026-08-24", "14:00", "17:00", 1),
		mustShift(t, 2, "2026-08-24", "09:00", "12:00", 2),
		mustShift(t, 3, "2026-08-25", "09:00", "12:00", 1),
	}

	monday := w.ShiftsOn(w.DayDate(0))
	if len(monday) != 2 {
		t.Fatalf("got %d shifts, want 2", len(monday))
	}
	if monday[0].ID != 2 || monday[1].ID != 1 {
		t.Errorf("not sorted by start: %d, %d", monday[0].ID, monday[1].ID)
	}

	if got := w.ShiftsOn(w.DayDate(6)); len(got) != 0 {
		t.Errorf("sunday should be empty, got %d", len(got))
	}
}

func TestGroupMembers(t *testing.T) {
	w := NewWeekSchedule(time.Date(2026, 8, 24, 0, 0, 0, 0, time.Local))
	a := mustShift(t, 1, "2026-08-24", "09:00", "12:00", 1)
	a.RecurrenceGroupID = "g1"
	b := mustShift(t, 2, "2026-08-26", "09:00", "12:00", 1)
	b.RecurrenceGroupID = "g1"
	c := mustShift(t, 3, "2026-08-25", "09:00", "12:00", 1)
	w.Shifts = []*Shift{a, b, c}

	if got := w.GroupMembers("g1"); len(got) != 2 {
		t.Errorf("got %d members, want 2", len(got))
	}
	if got := w.GroupMembers(""); got != nil {
		t.Error("empty group id must return nil")
	}
}

func TestTotalMinutes(t *testing.T) {
	w := NewWeekSchedule(time.Date(2026, 8, 24, 0, 0, 0, 0, time.Local))
	w.Shifts = []*Shift{
		mustShift(t, 1, "2026-08-24", "09:00", "12:00", 1),    // 180
		mustShift(t, 2, "2026-08-25", "09:00", "11:00", 1, 2), // 120 x 2 staff
	}
	if got := w.TotalMinutes(); got != 420 {
		t.Errorf("total = %d, want 420", got)
	}
}
