package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rotacli/rota/internal/tui/commands"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg)

	// Global keys (work in all modes)
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch m.mode {
	case ModeForm:
		return m.handleFormKeys(msg)
	case ModeConfirm:
		return m.handleConfirmKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

// handleNormalKeys handles keys in normal mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		if msg.String() == "esc" {
			m.selectedID = 0
			return m, nil
		}
		return m, tea.Quit

	// Navigation
	case "h", "left":
		if m.cursor.Day > 0 {
			m.cursor.Day--
		} else {
			return m.gotoWeek(-1)
		}
	case "l", "right":
		if m.cursor.Day < 6 {
			m.cursor.Day++
		} else {
			return m.gotoWeek(1)
		}
	case "k", "up":
		if m.cursor.Hour > 0 {
			m.cursor.Hour--
			m.ensureCursorVisible()
		}
	case "j", "down":
		if m.cursor.Hour < 23 {
			m.cursor.Hour++
			m.ensureCursorVisible()
		}
	case "H", "pgup":
		return m.gotoWeek(-1)
	case "L", "pgdown":
		return m.gotoWeek(1)
	case "t":
		return m.gotoToday()

	// View modes
	case "v":
		m.viewMode = (m.viewMode + 1) % 5
	case "1":
		m.viewMode = ViewWeek
	case "2":
		m.viewMode = ViewDay
	case "3":
		m.viewMode = ViewMonth
	case "4":
		m.viewMode = ViewTimesheet
	case "5":
		m.viewMode = ViewList

	// Shift operations
	case "n":
		m.openCreateForm(DraftSelection{
			Day:       m.cursor.Day,
			StartHour: m.cursor.Hour,
			EndHour:   m.cursor.Hour + 1,
		})
	case "enter":
		if s := m.shiftAt(m.cursor.Day, m.cursor.Hour); s != nil {
			m.selectedID = s.ID
			m.openEditForm(s)
		} else {
			m.openCreateForm(DraftSelection{
				Day:       m.cursor.Day,
				StartHour: m.cursor.Hour,
				EndHour:   m.cursor.Hour + 1,
			})
		}
	case "d":
		if s := m.shiftAt(m.cursor.Day, m.cursor.Hour); s != nil {
			m.mode = ModeConfirm
			m.confirmShift = s
			m.confirmSeries = false
			m.confirmMessage = fmt.Sprintf("Delete shift %q %s-%s?", s.Title, s.Start, s.End)
		}
	case "D":
		if s := m.shiftAt(m.cursor.Day, m.cursor.Hour); s != nil && s.RecurrenceGroupID != "" {
			m.mode = ModeConfirm
			m.confirmShift = s
			m.confirmSeries = true
			m.confirmMessage = fmt.Sprintf("Delete the whole %q series?", s.Title)
		}

	case "p":
		if m.week != nil {
			m.loading = true
			return m, commands.PublishWeek(m.store, m.weekStart, !m.week.Published)
		}

	case "y":
		text := m.timesheetText()
		if err := clipboard.WriteAll(text); err != nil {
			m.setStatus(fmt.Sprintf("copy failed: %v", err), true)
		} else {
			m.setStatus("Timesheet copied to clipboard", false)
		}
		return m, commands.ClearStatusAfter(statusTimeout)

	case "r":
		m.loading = true
		return m, tea.Batch(
			commands.LoadWeek(m.store, m.weekStart),
			commands.LoadStaff(m.staffDir),
		)

	case "?":
		m.setStatus("n new  enter open  d/D delete  p publish  v views  y copy  H/L weeks  q quit", false)
		return m, commands.ClearStatusAfter(statusTimeout)
	}

	return m, nil
}

// gotoWeek moves the window by whole weeks and reloads.
func (m Model) gotoWeek(delta int) (tea.Model, tea.Cmd) {
	m.weekStart = m.weekStart.AddDate(0, 0, 7*delta)
	if delta < 0 {
		m.cursor.Day = 6
	} else {
		m.cursor.Day = 0
	}
	m.selectedID = 0
	m.loading = true
	return m, commands.LoadWeek(m.store, m.weekStart)
}

// gotoToday jumps back to the current week.
func (m Model) gotoToday() (tea.Model, tea.Cmd) {
	today := nowFunc()
	weekStart := weekStartOf(today)
	m.cursor = Position{Day: weekdayIdx(today), Hour: m.dayStartHour}
	m.selectedID = 0
	if weekStart.Equal(m.weekStart) {
		return m, nil
	}
	m.weekStart = weekStart
	m.loading = true
	return m, commands.LoadWeek(m.store, m.weekStart)
}

// handleConfirmKeys handles keys in the delete confirmation modal.
func (m Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		s := m.confirmShift
		series := m.confirmSeries
		m.mode = ModeNormal
		m.confirmShift = nil
		m.confirmMessage = ""
		if s == nil {
			return m, nil
		}
		if series {
			return m, commands.DeleteSeries(m.orch, s.RecurrenceGroupID)
		}
		return m, commands.DeleteShift(m.orch, s.ID)
	case "n", "esc", "q":
		m.mode = ModeNormal
		m.confirmShift = nil
		m.confirmMessage = ""
	}
	return m, nil
}
