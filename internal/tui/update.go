package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rotacli/rota/internal/shift"
	"github.com/rotacli/rota/internal/tui/commands"
)

const statusTimeout = 4 * time.Second

// Update handles all messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.recalcLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case commands.WeekLoadedMsg:
		m.week = msg.Week
		m.loading = false
		m.views.Invalidate()
		return m, nil

	case commands.StaffLoadedMsg:
		m.staff = msg.Staff
		if m.formStaffIdx >= len(m.staff) {
			m.formStaffIdx = 0
		}
		return m, nil

	case commands.ShiftSavedMsg:
		return m.handleSaved(msg)

	case commands.ShiftDeletedMsg:
		if msg.Series {
			m.setStatus("Series deleted", false)
		} else {
			m.setStatus("Shift deleted", false)
		}
		m.loading = true
		return m, tea.Batch(
			commands.LoadWeek(m.store, m.weekStart),
			commands.ClearStatusAfter(statusTimeout),
		)

	case commands.WeekPublishedMsg:
		if msg.Published {
			m.setStatus("Week published", false)
		} else {
			m.setStatus("Week unpublished", false)
		}
		m.loading = true
		return m, tea.Batch(
			commands.LoadWeek(m.store, m.weekStart),
			commands.ClearStatusAfter(statusTimeout),
		)

	case commands.ErrMsg:
		LogError(msg.Op, msg.Err)
		m.loading = false
		m.setStatus(fmt.Sprintf("%s: %v", msg.Op, msg.Err), true)
		return m, commands.ClearStatusAfter(statusTimeout)

	case commands.ClearStatusMsg:
		m.statusMsg = ""
		m.statusIsWarn = false
		return m, nil
	}

	return m, nil
}

// handleSaved processes a resolved save. Resolutions carrying a sequence
// older than the latest issued save are discarded: a newer save has
// already superseded them and applying their status would report on state
// that no longer exists.
func (m Model) handleSaved(msg commands.ShiftSavedMsg) (tea.Model, tea.Cmd) {
	res := msg.Result
	LogSaveResult(res)
	if res.Seq != m.latestSeq {
		return m, nil
	}

	switch res.Outcome {
	case shift.OutcomeSucceeded:
		status := "Saved"
		if res.CreatedCount > 1 {
			status = fmt.Sprintf("Saved %d shifts", res.CreatedCount)
		}
		if len(res.Conflicts) > 0 {
			c := res.Conflicts[0]
			status = fmt.Sprintf("%s (warning: %s overlaps %s-%s)", status, staffName(m.staff, c.StaffID), c.B.Start, c.B.End)
			m.setStatus(status, true)
		} else {
			m.setStatus(status, false)
		}
	case shift.OutcomePartiallyFailed:
		m.setStatus(fmt.Sprintf("Save partially failed: %v", res.Err), true)
	default:
		m.setStatus(fmt.Sprintf("Save failed: %v", res.Err), true)
	}

	m.loading = true
	return m, tea.Batch(
		commands.LoadWeek(m.store, m.weekStart),
		commands.ClearStatusAfter(statusTimeout),
	)
}

// handleMouseMsg routes pointer events into the drag controller.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	LogMouse(msg)

	// The pointer only drives the week grid.
	if m.mode != ModeNormal || m.viewMode != ViewWeek {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scrollOffset--
		m.clampScroll()
		return m, nil
	case tea.MouseButtonWheelDown:
		m.scrollOffset++
		m.clampScroll()
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		day, hour, ok := m.cellAt(msg.X, msg.Y)
		if !ok {
			return m, nil
		}
		m.cursor = Position{Day: day, Hour: hour}
		occupied := m.shiftAt(day, hour) != nil
		m.drag.PointerDown(day, hour, occupied)
		return m, nil

	case tea.MouseActionMotion:
		if !m.drag.IsSelecting() {
			return m, nil
		}
		if day, hour, ok := m.cellAt(msg.X, msg.Y); ok {
			m.drag.PointerEnter(day, hour)
		}
		return m, nil

	case tea.MouseActionRelease:
		day, hour, ok := m.cellAt(msg.X, msg.Y)
		if !ok {
			// Released outside the grid: resolve any in-flight drag
			// with no draft rather than leaving it stuck.
			m.drag.Cancel()
			// A click on an occupied cell never started a drag; treat
			// an out-of-grid release as a plain dismiss.
			return m, nil
		}
		if m.drag.IsSelecting() {
			draft, isDrag := m.drag.PointerUp(day, hour)
			if isDrag {
				m.openCreateForm(draft)
				return m, nil
			}
			// Plain click: resolve the cell in collection order. A free
			// cell opens creation for that single hour, same as enter.
			if s := m.shiftAt(day, hour); s != nil {
				m.selectedID = s.ID
				m.openEditForm(s)
			} else {
				m.openCreateForm(draft)
			}
			return m, nil
		}
		// The down landed on an occupied cell and never started a
		// selection: open the first shift covering the release cell.
		if s := m.shiftAt(day, hour); s != nil {
			m.selectedID = s.ID
			m.openEditForm(s)
		}
		return m, nil
	}

	return m, nil
}

// issueSave stamps a fresh sequence on a save and sends it through the
// orchestrator.
func (m *Model) issueSave(s *shift.Shift) tea.Cmd {
	seq := m.orch.NextSeq()
	m.latestSeq = seq
	return commands.SaveShift(m.orch, s, m.weekShifts(), seq)
}

func (m *Model) setStatus(msg string, warn bool) {
	m.statusMsg = msg
	m.statusIsWarn = warn
}

func staffName(staff []*shift.StaffMember, id int64) string {
	for _, s := range staff {
		if s.ID == id {
			return s.Name
		}
	}
	return fmt.Sprintf("staff %d", id)
}
