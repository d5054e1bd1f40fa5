package shift

import (
	"testing"
	"time"
)

func weekOf(t *testing.T, iso string) (time.Time, time.Time) {
	t.Helper()
	s := mustShift(t, 0, iso, "09:00", "10:00", 1)
	start := s.Date
	return start, start.AddDate(0, 0, 6)
}

func TestBuildViews(t *testing.T) {
	// Week of Monday 2026-08-24.
	rangeStart, rangeEnd := weekOf(t, "2026-08-24")

	shifts := []*Shift{
		mustShift(t, 1, "2026-08-24", "09:00", "17:00", 1),    // Monday
		mustShift(t, 2, "2026-08-24", "12:00", "20:00", 2),    // Monday, later start
		mustShift(t, 3, "2026-08-26", "08:00", "16:00", 1, 2), // Wednesday, two staff
		mustShift(t, 4, "2026-09-10", "09:00", "17:00", 1),    // outside range
	}

	v := BuildViews(shifts, rangeStart, rangeEnd, DefaultHourHeight)

	t.Run("day grouping and order", func(t *testing.T) {
		monday := v.ByDayIndex[0]
		if len(monday) != 2 {
			t.Fatalf("monday has %d shifts, want 2", len(monday))
		}
		if monday[0].ID != 1 || monday[1].ID != 2 {
			t.Errorf("monday not sorted by start: %d, %d", monday[0].ID, monday[1].ID)
		}
		if len(v.ByDayIndex[1]) != 0 {
			t.Errorf("tuesday should be empty")
		}
	})

	t.Run("positions from times", func(t *testing.T) {
		p := v.ByDayIndex[0][0] // 09:00-17:00 at 60 units/hour
		if p.Top != 540 {
			t.Errorf("top = %d, want 540", p.Top)
		}
		if p.Height != 480 {
			t.Errorf("height = %d, want 480", p.Height)
		}
	})

	t.Run("multi-staff shift appears once per day", func(t *testing.T) {
		wednesday := v.ByDayIndex[2]
		if len(wednesday) != 1 {
			t.Errorf("wednesday has %d entries, want 1", len(wednesday))
		}
	})

	t.Run("multi-staff shift fans out per staff", func(t *testing.T) {
		for _, staffID := range []int64{1, 2} {
			entries := v.ByStaffByDate[staffID]["2026-08-26"]
			if len(entries) != 1 || entries[0].ID != 3 {
				t.Errorf("staff %d missing fanned-out shift 3", staffID)
			}
		}
	})

	t.Run("out of range filtered", func(t *testing.T) {
		if len(v.ByDate["2026-09-10"]) != 0 {
			t.Error("shift outside the range leaked into views")
		}
	})

	t.Run("staff minutes", func(t *testing.T) {
		if got := v.StaffMinutesOn(1, "2026-08-24"); got != 480 {
			t.Errorf("staff 1 monday minutes = %d, want 480", got)
		}
		if got := v.StaffMinutesOn(2, "2026-08-24"); got != 480 {
			t.Errorf("staff 2 monday minutes = %d, want 480", got)
		}
		if got := v.StaffMinutesOn(9, "2026-08-24"); got != 0 {
			t.Errorf("unknown staff minutes = %d, want 0", got)
		}
	})
}

func TestBuildViewsEmpty(t *testing.T) {
	rangeStart, rangeEnd := weekOf(t, "2026-08-24")
	v := BuildViews(nil, rangeStart, rangeEnd, DefaultHourHeight)

	if v.ByDate == nil || v.ByStaffByDate == nil {
		t.Error("empty input must still yield non-nil maps")
	}
	for day := 0; day < 7; day++ {
		if len(v.ByDayIndex[day]) != 0 {
			t.Errorf("day %d not empty", day)
		}
	}
}

func TestViewCacheIdentity(t *testing.T) {
	rangeStart, rangeEnd := weekOf(t, "2026-08-24")
	shifts := []*Shift{
		mustShift(t, 1, "2026-08-24", "09:00", "17:00", 1),
	}

	var cache ViewCache

	first := cache.Get(shifts, rangeStart, rangeEnd, DefaultHourHeight)
	second := cache.Get(shifts, rangeStart, rangeEnd, DefaultHourHeight)
	if first != second {
		t.Error("same collection identity should reuse cached views")
	}

	// A new backing slice is a new collection, even with equal contents.
	replaced := append([]*Shift(nil), shifts...)
	third := cache.Get(replaced, rangeStart, rangeEnd, DefaultHourHeight)
	if third == first {
		t.Error("replaced collection should rebuild views")
	}

	// Range change rebuilds.
	fourth := cache.Get(replaced, rangeStart.AddDate(0, 0, 7), rangeEnd.AddDate(0, 0, 7), DefaultHourHeight)
	if fourth == third {
		t.Error("range change should rebuild views")
	}

	// Invalidate forces a rebuild on the next Get.
	cache.Invalidate()
	fifth := cache.Get(replaced, rangeStart.AddDate(0, 0, 7), rangeEnd.AddDate(0, 0, 7), DefaultHourHeight)
	if fifth == fourth {
		t.Error("Invalidate should drop the cached views")
	}
}
