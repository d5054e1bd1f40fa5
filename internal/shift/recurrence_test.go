package shift

import (
	"errors"
	"testing"
	"time"

	"github.com/rotacli/rota/internal/dateutil"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestExpandRuleWeekly(t *testing.T) {
	// Mondays from 2024-01-01 through 2024-01-22 inclusive.
	dates, err := ExpandRule(Rule{
		Frequency: FrequencyWeekly,
		StartDate: date(2024, time.January, 1),
		EndDate:   date(2024, time.January, 22),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []time.Time{
		date(2024, time.January, 1),
		date(2024, time.January, 8),
		date(2024, time.January, 15),
		date(2024, time.January, 22),
	}
	if len(dates) != len(want) {
		t.Fatalf("got %d dates, want %d: %v", len(dates), len(want), dates)
	}
	for i := range want {
		if !dates[i].Equal(want[i]) {
			t.Errorf("date[%d] = %v, want %v", i, dates[i], want[i])
		}
	}
}

func TestExpandRuleDaily(t *testing.T) {
	dates, err := ExpandRule(Rule{
		Frequency: FrequencyDaily,
		StartDate: date(2026, time.September, 1),
		EndDate:   date(2026, time.September, 7),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dates) != 7 {
		t.Errorf("got %d dates, want 7", len(dates))
	}
}

func TestExpandRuleMonthlySkipsShortMonths(t *testing.T) {
	// Starting on the 31st: months without a 31st are skipped, not clamped.
	dates, err := ExpandRule(Rule{
		Frequency: FrequencyMonthly,
		StartDate: date(2024, time.January, 31),
		EndDate:   date(2024, time.April, 30),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []time.Time{
		date(2024, time.January, 31),
		date(2024, time.March, 31),
	}
	if len(dates) != len(want) {
		t.Fatalf("got %v, want %v", dates, want)
	}
	for i := range want {
		if !dates[i].Equal(want[i]) {
			t.Errorf("date[%d] = %v, want %v", i, dates[i], want[i])
		}
	}
}

func TestExpandRuleCustom(t *testing.T) {
	t.Run("expands listed weekdays", func(t *testing.T) {
		// Mon 2026-08-24 through Sun 2026-08-30, Mondays and Thursdays.
		dates, err := ExpandRule(Rule{
			Frequency:  FrequencyCustom,
			StartDate:  date(2026, time.August, 24),
			EndDate:    date(2026, time.August, 30),
			DaysOfWeek: []int{0, 3},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []time.Time{
			date(2026, time.August, 24),
			date(2026, time.August, 27),
		}
		if len(dates) != len(want) {
			t.Fatalf("got %v, want %v", dates, want)
		}
		for i := range want {
			if !dates[i].Equal(want[i]) {
				t.Errorf("date[%d] = %v, want %v", i, dates[i], want[i])
			}
		}
	})

	t.Run("requires weekdays", func(t *testing.T) {
		_, err := ExpandRule(Rule{
			Frequency: FrequencyCustom,
			StartDate: date(2026, time.August, 24),
			EndDate:   date(2026, time.August, 30),
		})
		if !errors.Is(err, ErrCustomNeedsWeekdays) {
			t.Errorf("got %v, want ErrCustomNeedsWeekdays", err)
		}
	})

	t.Run("weekday out of range", func(t *testing.T) {
		_, err := ExpandRule(Rule{
			Frequency:  FrequencyCustom,
			StartDate:  date(2026, time.August, 24),
			EndDate:    date(2026, time.August, 30),
			DaysOfWeek: []int{7},
		})
		if err == nil {
			t.Error("expected error for weekday 7")
		}
	})

	t.Run("no matching date in range", func(t *testing.T) {
		// Friday never occurs between Monday and Tuesday.
		_, err := ExpandRule(Rule{
			Frequency:  FrequencyCustom,
			StartDate:  date(2026, time.August, 24),
			EndDate:    date(2026, time.August, 25),
			DaysOfWeek: []int{4},
		})
		if !errors.Is(err, ErrEmptyRecurrence) {
			t.Errorf("got %v, want ErrEmptyRecurrence", err)
		}
	})
}

func TestExpandRuleValidation(t *testing.T) {
	t.Run("end before start", func(t *testing.T) {
		_, err := ExpandRule(Rule{
			Frequency: FrequencyDaily,
			StartDate: date(2026, time.September, 7),
			EndDate:   date(2026, time.September, 1),
		})
		if !errors.Is(err, dateutil.ErrEndDateBeforeStart) {
			t.Errorf("got %v, want ErrEndDateBeforeStart", err)
		}
	})

	t.Run("unknown frequency", func(t *testing.T) {
		_, err := ExpandRule(Rule{
			Frequency: "HOURLY",
			StartDate: date(2026, time.September, 1),
			EndDate:   date(2026, time.September, 7),
		})
		if !errors.Is(err, ErrInvalidFrequency) {
			t.Errorf("got %v, want ErrInvalidFrequency", err)
		}
	})
}

func TestMaterialize(t *testing.T) {
	template := mustShift(t, 42, "2024-01-01", "09:00", "17:00", 3)
	template.Title = "Weekly opener"

	rule := Rule{
		Frequency: FrequencyWeekly,
		StartDate: date(2024, time.January, 1),
		EndDate:   date(2024, time.January, 22),
	}

	instances, err := Materialize(template, rule, "group-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(instances) != 4 {
		t.Fatalf("got %d instances, want 4", len(instances))
	}

	for i, inst := range instances {
		if inst.ID != 0 {
			t.Errorf("instance %d carries persisted id %d", i, inst.ID)
		}
		if inst.RecurrenceGroupID != "group-1" {
			t.Errorf("instance %d group id %q", i, inst.RecurrenceGroupID)
		}
		if !inst.IsRecurring {
			t.Errorf("instance %d not marked recurring", i)
		}
		if inst.Title != "Weekly opener" || inst.Start != "09:00" || inst.End != "17:00" {
			t.Errorf("instance %d lost template fields", i)
		}
	}

	// Template itself is untouched.
	if template.ID != 42 || template.RecurrenceGroupID != "" {
		t.Error("Materialize mutated the template")
	}
}
