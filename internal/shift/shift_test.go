package shift

import (
	"errors"
	"testing"
	"time"

	"github.com/rotacli/rota/internal/dateutil"
)

// mustShift builds a shift for tests, panicking on bad fixtures.
func mustShift(t *testing.T, id int64, date, start, end string, staff ...int64) *Shift {
	t.Helper()
	day, err := dateutil.ParseDate(date)
	if err != nil {
		t.Fatalf("bad fixture date %q: %v", date, err)
	}
	return &Shift{
		ID:       id,
		Title:    "Shift",
		Date:     day,
		Start:    start,
		End:      end,
		StaffIDs: staff,
	}
}

func TestNew(t *testing.T) {
	t.Run("valid shift", func(t *testing.T) {
		s, err := New("Morning till", "2026-09-01", "09:00", "17:00", []int64{3})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Title != "Morning till" {
			t.Errorf("got title %q", s.Title)
		}
		if s.IsSaved() {
			t.Error("new shift should be transient")
		}
		if s.DayIndex() != 1 { // 2026-09-01 is a Tuesday
			t.Errorf("got day index %d, want 1", s.DayIndex())
		}
	})

	t.Run("blank title defaults", func(t *testing.T) {
		s, err := New("", "2026-09-01", "09:00", "10:00", []int64{1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Title != DefaultTitle {
			t.Errorf("got title %q, want %q", s.Title, DefaultTitle)
		}
	})

	t.Run("no staff", func(t *testing.T) {
		_, err := New("x", "2026-09-01", "09:00", "10:00", nil)
		if !errors.Is(err, ErrNoStaffAssigned) {
			t.Errorf("got %v, want ErrNoStaffAssigned", err)
		}
	})

	t.Run("end before start", func(t *testing.T) {
		_, err := New("x", "2026-09-01", "17:00", "09:00", []int64{1})
		if !errors.Is(err, ErrEndBeforeStart) {
			t.Errorf("got %v, want ErrEndBeforeStart", err)
		}
	})

	t.Run("zero duration", func(t *testing.T) {
		_, err := New("x", "2026-09-01", "09:00", "09:00", []int64{1})
		if !errors.Is(err, ErrEndBeforeStart) {
			t.Errorf("got %v, want ErrEndBeforeStart", err)
		}
	})

	t.Run("bad time", func(t *testing.T) {
		_, err := New("x", "2026-09-01", "9am", "10:00", []int64{1})
		if !errors.Is(err, ErrInvalidTimeFormat) {
			t.Errorf("got %v, want ErrInvalidTimeFormat", err)
		}
	})
}

func TestValidateRecurrence(t *testing.T) {
	s := mustShift(t, 0, "2026-09-01", "09:00", "17:00", 1)
	s.IsRecurring = true
	s.Frequency = FrequencyCustom

	if err := s.Validate(); !errors.Is(err, ErrCustomNeedsWeekdays) {
		t.Errorf("got %v, want ErrCustomNeedsWeekdays", err)
	}

	s.DaysOfWeek = []int{0, 2}
	if err := s.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	s.Frequency = "YEARLY"
	if err := s.Validate(); !errors.Is(err, ErrInvalidFrequency) {
		t.Errorf("got %v, want ErrInvalidFrequency", err)
	}
}

func TestShiftHelpers(t *testing.T) {
	s := mustShift(t, 5, "2026-09-01", "09:30", "17:00", 3, 7)

	if s.PrimaryStaff() != 3 {
		t.Errorf("primary staff = %d, want 3", s.PrimaryStaff())
	}
	if !s.HasStaff(7) || s.HasStaff(9) {
		t.Error("HasStaff mismatch")
	}
	if s.Duration() != 450 {
		t.Errorf("duration = %d, want 450", s.Duration())
	}

	other := mustShift(t, 6, "2026-09-01", "16:00", "18:00", 7)
	if !s.OverlapsWith(other) {
		t.Error("expected same-day overlap")
	}
	if !s.SharesStaffWith(other) {
		t.Error("expected shared staff")
	}

	nextDay := mustShift(t, 7, "2026-09-02", "09:00", "17:00", 3)
	if s.OverlapsWith(nextDay) {
		t.Error("different days must not overlap")
	}
}

func TestClone(t *testing.T) {
	s := mustShift(t, 5, "2026-09-01", "09:00", "17:00", 3, 7)
	s.DaysOfWeek = []int{0, 4}
	s.Tasks = []TaskStub{{Title: "open up"}}

	c := s.Clone()
	c.StaffIDs[0] = 99
	c.DaysOfWeek[0] = 6
	c.Tasks[0].Title = "changed"

	if s.StaffIDs[0] != 3 || s.DaysOfWeek[0] != 0 || s.Tasks[0].Title != "open up" {
		t.Error("Clone shares backing arrays with the original")
	}
	if !c.Date.Equal(s.Date) {
		t.Error("Clone changed the date")
	}
}

func TestDayIndexDerived(t *testing.T) {
	// Monday through Sunday of one week.
	monday := time.Date(2026, 8, 24, 0, 0, 0, 0, time.Local)
	for i := 0; i < 7; i++ {
		s := &Shift{Date: monday.AddDate(0, 0, i)}
		if s.DayIndex() != i {
			t.Errorf("day %d: index %d", i, s.DayIndex())
		}
	}
}
