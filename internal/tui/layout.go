package tui

// Grid geometry. The week grid is drawn inside the app container: the
// container padding and the header chrome sit above and left of the first
// hour row, and every hour is exactly one terminal line, so a terminal
// coordinate maps back to a (day, hour) cell with integer math.
const (
	gridPadLeft = 2 // AppStyle left padding
	gridPadTop  = 1 // AppStyle top padding
	timeGutter  = 6 // "HH:MM " time column
	chromeLines = 3 // title line, blank line, day header row
)

// gridOriginX returns the terminal column of the first day column.
func (m *Model) gridOriginX() int {
	return gridPadLeft + timeGutter
}

// gridOriginY returns the terminal row of the first hour row.
func (m *Model) gridOriginY() int {
	return gridPadTop + chromeLines
}

// visibleHours returns how many hour rows fit in the terminal, capped to
// the configured day window.
func (m *Model) visibleHours() int {
	total := m.dayEndHour - m.dayStartHour
	if total < 1 {
		total = 1
	}
	avail := m.height - m.gridOriginY() - footerLines
	if avail < 1 {
		avail = 1
	}
	if avail < total {
		return avail
	}
	return total
}

// footerLines is the chrome below the grid: blank, stats, status, help.
const footerLines = 4

// recalcLayout resizes the day columns to the terminal width.
func (m *Model) recalcLayout() {
	usable := m.width - gridPadLeft*2 - timeGutter
	w := usable / 7
	if w < 8 {
		w = 8
	}
	if w > 22 {
		w = 22
	}
	m.colWidth = w
	m.clampScroll()
}

// clampScroll keeps the scroll offset inside the day window.
func (m *Model) clampScroll() {
	maxOffset := (m.dayEndHour - m.dayStartHour) - m.visibleHours()
	if maxOffset < 0 {
		maxOffset = 0
	}
	if m.scrollOffset > maxOffset {
		m.scrollOffset = maxOffset
	}
	if m.scrollOffset < 0 {
		m.scrollOffset = 0
	}
}

// firstVisibleHour returns the hour rendered on the first grid row.
func (m *Model) firstVisibleHour() int {
	return m.dayStartHour + m.scrollOffset
}

// cellAt maps a terminal coordinate to a grid cell. ok is false for
// coordinates outside the hour grid (headers, gutter, footer).
func (m *Model) cellAt(x, y int) (day, hour int, ok bool) {
	col := x - m.gridOriginX()
	row := y - m.gridOriginY()
	if col < 0 || row < 0 || row >= m.visibleHours() {
		return 0, 0, false
	}
	day = col / m.colWidth
	if day > 6 {
		return 0, 0, false
	}
	hour = m.firstVisibleHour() + row
	if hour < 0 || hour > 23 {
		return 0, 0, false
	}
	return day, hour, true
}

// ensureCursorVisible scrolls the grid so the cursor's hour row is shown.
func (m *Model) ensureCursorVisible() {
	first := m.firstVisibleHour()
	last := first + m.visibleHours() - 1
	if m.cursor.Hour < first {
		m.scrollOffset = m.cursor.Hour - m.dayStartHour
	} else if m.cursor.Hour > last {
		m.scrollOffset = m.cursor.Hour - m.dayStartHour - m.visibleHours() + 1
	}
	m.clampScroll()
}
