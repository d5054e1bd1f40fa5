package shift

import "testing"

func TestTimeToMinutes(t *testing.T) {
	tests := []struct {
		time string
		want int
	}{
		{"00:00", 0},
		{"09:30", 570},
		{"12:00", 720},
		{"23:59", 1439},
		{"24:00", 1440},
		{"bad", 0},
		{"", 0},
	}
	for _, tt := range tests {
		if got := TimeToMinutes(tt.time); got != tt.want {
			t.Errorf("TimeToMinutes(%q) = %d, want %d", tt.time, got, tt.want)
		}
	}
}

func TestMinutesToTime(t *testing.T) {
	tests := []struct {
		mins int
		want string
	}{
		{0, "00:00"},
		{570, "09:30"},
		{1439, "23:59"},
		{-10, "00:00"},
		{2000, "23:59"},
	}
	for _, tt := range tests {
		if got := MinutesToTime(tt.mins); got != tt.want {
			t.Errorf("MinutesToTime(%d) = %q, want %q", tt.mins, got, tt.want)
		}
	}
}

func TestHourToTime(t *testing.T) {
	if got := HourToTime(9); got != "09:00" {
		t.Errorf("got %q", got)
	}
	// Hour 24 stays "24:00" so full-day ranges remain end-exclusive.
	if got := HourToTime(24); got != "24:00" {
		t.Errorf("got %q, want 24:00", got)
	}
	if got := HourToTime(-1); got != "00:00" {
		t.Errorf("got %q, want 00:00", got)
	}
}

func TestRoundTrip(t *testing.T) {
	// Partial-hour times survive the string<->minutes round trip.
	for _, s := range []string{"09:30", "00:15", "23:45"} {
		if got := MinutesToTime(TimeToMinutes(s)); got != s {
			t.Errorf("round trip %q -> %q", s, got)
		}
	}
}

func TestTimesOverlap(t *testing.T) {
	tests := []struct {
		name                       string
		start1, end1, start2, end2 string
		want                       bool
	}{
		{"identical", "09:00", "17:00", "09:00", "17:00", true},
		{"partial", "09:00", "12:00", "11:00", "14:00", true},
		{"contained", "09:00", "17:00", "10:00", "11:00", true},
		{"adjacent ranges do not overlap", "09:00", "12:00", "12:00", "15:00", false},
		{"disjoint", "09:00", "10:00", "14:00", "15:00", false},
		{"half hour boundary", "09:30", "10:00", "10:00", "11:00", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TimesOverlap(tt.start1, tt.end1, tt.start2, tt.end2); got != tt.want {
				t.Errorf("TimesOverlap(%s-%s, %s-%s) = %v, want %v",
					tt.start1, tt.end1, tt.start2, tt.end2, got, tt.want)
			}
			// Overlap is symmetric.
			if got := TimesOverlap(tt.start2, tt.end2, tt.start1, tt.end1); got != tt.want {
				t.Errorf("overlap not symmetric for %s", tt.name)
			}
		})
	}
}

func TestOverlapMinutes(t *testing.T) {
	tests := []struct {
		name                       string
		start1, end1, start2, end2 string
		want                       int
	}{
		{"one hour overlap", "09:00", "12:00", "11:00", "14:00", 60},
		{"no overlap", "09:00", "10:00", "11:00", "12:00", 0},
		{"adjacent", "09:00", "12:00", "12:00", "13:00", 0},
		{"contained half hour", "09:00", "17:00", "09:30", "10:00", 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OverlapMinutes(tt.start1, tt.end1, tt.start2, tt.end2); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}
