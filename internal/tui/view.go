package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rotacli/rota/internal/dateutil"
	"github.com/rotacli/rota/internal/shift"
	"github.com/rotacli/rota/internal/tui/theme"
)

// View renders the full TUI.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.mode == ModeForm {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.viewForm())
	}
	if m.mode == ModeConfirm {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.viewConfirm())
	}

	var content string
	switch m.viewMode {
	case ViewDay:
		content = m.viewDaySchedule()
	case ViewMonth:
		content = m.viewMonth()
	case ViewTimesheet:
		content = m.viewTimesheet()
	case ViewList:
		content = m.viewList()
	default:
		content = m.viewWeekGrid()
	}

	var b strings.Builder
	b.WriteString(m.viewTitle())
	b.WriteString("\n\n")
	b.WriteString(content)
	b.WriteString("\n")
	b.WriteString(m.viewFooter())

	return m.styles.AppStyle.Render(b.String())
}

// viewTitle renders the top line: app name, week range, publish state.
func (m *Model) viewTitle() string {
	s := m.styles
	weekEnd := m.weekStart.AddDate(0, 0, 6)
	title := s.TitleStyle.Render("rota")
	rangeStr := s.HeaderStyle.Render(fmt.Sprintf("  %s – %s", dateutil.ToISODate(m.weekStart), dateutil.ToISODate(weekEnd)))

	badge := s.DraftStyle.Render("  draft")
	if m.week != nil && m.week.Published {
		badge = s.PublishedStyle.Render("  published")
	}
	mode := s.HelpStyle.Render("  " + viewModeName(m.viewMode))
	loading := ""
	if m.loading {
		loading = s.HelpStyle.Render("  loading...")
	}
	return title + rangeStr + badge + mode + loading
}

func viewModeName(v ViewMode) string {
	switch v {
	case ViewDay:
		return "[day]"
	case ViewMonth:
		return "[month]"
	case ViewTimesheet:
		return "[timesheet]"
	case ViewList:
		return "[list]"
	default:
		return "[week]"
	}
}

// viewWeekGrid renders the 7-day hour grid.
func (m *Model) viewWeekGrid() string {
	s := m.styles
	views := m.currentViews()
	sel, selecting := m.drag.Selection()
	today := nowFunc()

	var b strings.Builder

	// Day header row
	b.WriteString(s.TimeColumnStyle.Render(" "))
	for day := 0; day < 7; day++ {
		date := m.dayDate(day)
		label := fmt.Sprintf("%s %d", dateutil.WeekdayShortName(day), date.Day())
		style := s.DayHeaderStyleWidth(m.colWidth)
		if dateutil.ToISODate(date) == dateutil.ToISODate(today) {
			style = s.DayHeaderTodayStyleWidth(m.colWidth)
		}
		b.WriteString(style.Render(label))
	}
	b.WriteString("\n")

	first := m.firstVisibleHour()
	for row := 0; row < m.visibleHours(); row++ {
		hour := first + row
		b.WriteString(s.TimeColumnStyle.Render(shift.HourToTime(hour)))
		for day := 0; day < 7; day++ {
			b.WriteString(m.renderCell(views, day, hour, sel, selecting))
		}
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// renderCell renders one (day, hour) cell of the week grid.
func (m *Model) renderCell(views *shift.Views, day, hour int, sel DraftSelection, selecting bool) string {
	s := m.styles
	w := m.colWidth

	if selecting && day == sel.Day && hour >= sel.StartHour && hour < sel.EndHour {
		label := ""
		if hour == sel.StartHour {
			label = fmt.Sprintf(" %s-%s", sel.Start(), sel.End())
		}
		return s.DragSelectionStyleWidth(w).Render(truncateStr(label, w))
	}

	cellStart := shift.HourToTime(hour)
	cellEnd := shift.HourToTime(hour + 1)
	for _, p := range views.ByDayIndex[day] {
		sh := p.Shift
		if !shift.TimesOverlap(sh.Start, sh.End, cellStart, cellEnd) {
			continue
		}
		label := " "
		if shift.TimeToMinutes(sh.Start)/60 == hour {
			label = fmt.Sprintf(" %s %s-%s", sh.Title, sh.Start, sh.End)
			if sh.RecurrenceGroupID != "" {
				label += " ↻"
			}
		}
		if m.selectedID != 0 && sh.ID == m.selectedID {
			return s.ShiftSelectedStyle.Width(w).Render(truncateStr(label, w))
		}
		colorHex := sh.Color
		if colorHex == "" {
			colorHex = theme.StaffColorHex(sh.PrimaryStaff())
		}
		return s.ShiftStyleFor(colorHex, w).Render(truncateStr(label, w))
	}

	if m.cursor.Day == day && m.cursor.Hour == hour {
		return s.CursorStyleWidth(w).Render(" ·")
	}
	return s.EmptyCellStyleWidth(w).Render(" ")
}

// viewDaySchedule renders the cursor day's shifts as full-width rows.
func (m *Model) viewDaySchedule() string {
	s := m.styles
	views := m.currentViews()
	date := m.dayDate(m.cursor.Day)

	var b strings.Builder
	b.WriteString(s.HeaderStyle.Render(fmt.Sprintf("%s %s", dateutil.WeekdayName(m.cursor.Day), dateutil.ToISODate(date))))
	b.WriteString("\n\n")

	placed := views.ByDayIndex[m.cursor.Day]
	if len(placed) == 0 {
		b.WriteString(s.HelpStyle.Render("  no shifts"))
		return b.String()
	}
	for _, p := range placed {
		sh := p.Shift
		colorHex := sh.Color
		if colorHex == "" {
			colorHex = theme.StaffColorHex(sh.PrimaryStaff())
		}
		line := fmt.Sprintf(" %s-%s  %-20s %s", sh.Start, sh.End, truncateStr(sh.Title, 20), staffName(m.staff, sh.PrimaryStaff()))
		b.WriteString(s.ShiftStyleFor(colorHex, m.width-gridPadLeft*2).Render(line))
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// viewMonth renders a calendar of the month containing the week start,
// with shift counts for the days of the loaded week.
func (m *Model) viewMonth() string {
	s := m.styles
	views := m.currentViews()

	monthFirst := dateutil.TruncateToDay(m.weekStart).AddDate(0, 0, -(m.weekStart.Day() - 1))
	gridStart := weekStartOf(monthFirst)

	var b strings.Builder
	b.WriteString(s.HeaderStyle.Render(monthFirst.Format("January 2006")))
	b.WriteString("\n\n")

	cellW := 10
	for day := 0; day < 7; day++ {
		b.WriteString(s.DayHeaderStyleWidth(cellW).Render(dateutil.WeekdayShortName(day)))
	}
	b.WriteString("\n")

	for row := 0; row < 6; row++ {
		weekHasMonth := false
		var line strings.Builder
		for day := 0; day < 7; day++ {
			date := gridStart.AddDate(0, 0, row*7+day)
			if date.Month() != monthFirst.Month() {
				line.WriteString(s.EmptyCellStyleWidth(cellW).Render(" "))
				continue
			}
			weekHasMonth = true
			label := fmt.Sprintf(" %2d", date.Day())
			if n := len(views.ByDate[dateutil.ToISODate(date)]); n > 0 {
				label = fmt.Sprintf(" %2d ·%d", date.Day(), n)
			}
			style := s.EmptyCellStyleWidth(cellW)
			if date.Equal(dateutil.TruncateToDay(m.weekStart)) || (date.After(m.weekStart) && date.Before(m.weekStart.AddDate(0, 0, 7))) {
				style = s.StatsBarStyle.Width(cellW)
			}
			line.WriteString(style.Render(label))
		}
		if !weekHasMonth {
			break
		}
		b.WriteString(line.String())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(s.HelpStyle.Render("counts shown for the loaded week only"))
	return b.String()
}

// viewTimesheet renders per-staff scheduled hours for the week.
func (m *Model) viewTimesheet() string {
	return m.styles.TableStyle.Render(m.timesheetText())
}

// timesheetText builds the plain-text weekly timesheet, also used for
// clipboard export.
func (m *Model) timesheetText() string {
	views := m.currentViews()

	var b strings.Builder
	fmt.Fprintf(&b, "Timesheet %s – %s\n\n", dateutil.ToISODate(m.weekStart), dateutil.ToISODate(m.weekStart.AddDate(0, 0, 6)))
	fmt.Fprintf(&b, "%-20s", "Staff")
	for day := 0; day < 7; day++ {
		fmt.Fprintf(&b, "%6s", dateutil.WeekdayShortName(day))
	}
	fmt.Fprintf(&b, "%8s\n", "Total")

	for _, member := range m.staff {
		total := 0
		row := fmt.Sprintf("%-20s", truncateStr(member.Name, 20))
		for day := 0; day < 7; day++ {
			date := dateutil.ToISODate(m.dayDate(day))
			mins := views.StaffMinutesOn(member.ID, date)
			total += mins
			if mins == 0 {
				row += fmt.Sprintf("%6s", "-")
			} else {
				row += fmt.Sprintf("%6s", formatHours(mins))
			}
		}
		row += fmt.Sprintf("%8s", formatHours(total))
		b.WriteString(row)
		b.WriteString("\n")
	}

	if m.week != nil {
		fmt.Fprintf(&b, "\nTotal scheduled: %s\n", formatHours(m.week.TotalMinutes()))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// formatHours renders minutes as fractional hours, e.g. 450 -> "7.5h".
func formatHours(mins int) string {
	if mins%60 == 0 {
		return fmt.Sprintf("%dh", mins/60)
	}
	return fmt.Sprintf("%.1fh", float64(mins)/60)
}

// viewList renders the week's shifts in chronological order.
func (m *Model) viewList() string {
	s := m.styles
	shifts := m.weekShifts()
	if len(shifts) == 0 {
		return s.HelpStyle.Render("  no shifts this week")
	}

	var b strings.Builder
	for day := 0; day < 7; day++ {
		date := m.dayDate(day)
		dayShifts := m.week.ShiftsOn(date)
		if len(dayShifts) == 0 {
			continue
		}
		b.WriteString(s.HeaderStyle.Render(fmt.Sprintf("%s %s", dateutil.WeekdayShortName(day), dateutil.ToISODate(date))))
		b.WriteString("\n")
		for _, sh := range dayShifts {
			marker := " "
			if sh.RecurrenceGroupID != "" {
				marker = "↻"
			}
			line := fmt.Sprintf("  %s-%s %s %-24s %s", sh.Start, sh.End, marker, truncateStr(sh.Title, 24), staffName(m.staff, sh.PrimaryStaff()))
			b.WriteString(s.StatsBarStyle.Render(line))
			b.WriteString("\n")
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// viewFooter renders the stats bar, status line, and help line.
func (m *Model) viewFooter() string {
	s := m.styles
	var b strings.Builder

	if m.week != nil {
		total := m.week.TotalMinutes()
		b.WriteString(s.StatsBarStyle.Render(fmt.Sprintf("%d shifts · %s scheduled", len(m.week.Shifts), formatHours(total))))
	}
	b.WriteString("\n")

	if m.statusMsg != "" {
		if m.statusIsWarn {
			b.WriteString(s.WarningStyle.Render(m.statusMsg))
		} else {
			b.WriteString(s.StatusStyle.Render(m.statusMsg))
		}
	}
	b.WriteString("\n")
	b.WriteString(s.HelpStyle.Render("n new · enter open · d del · p publish · v view · y copy · ? help · q quit"))
	return b.String()
}
