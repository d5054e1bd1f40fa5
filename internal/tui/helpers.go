package tui

import (
	"time"

	"github.com/rotacli/rota/internal/dateutil"
)

// nowFunc is swappable in tests.
var nowFunc = time.Now

var zeroTime time.Time

func weekStartOf(t time.Time) time.Time {
	return dateutil.WeekStart(t)
}

func weekdayIdx(t time.Time) int {
	return dateutil.WeekdayIndex(t)
}

// dayDate returns the date of a weekday column in the current window.
func (m *Model) dayDate(day int) time.Time {
	return m.weekStart.AddDate(0, 0, day)
}

// truncateStr truncates a string to max length.
func truncateStr(s string, max int) string {
	if max <= 3 || len(s) <= max {
		if len(s) > max {
			return s[:max]
		}
		return s
	}
	return s[:max-3] + "..."
}
