package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rotacli/rota/internal/dateutil"
	"github.com/rotacli/rota/internal/shift"
)

// openCreateForm opens the shift form for a new shift covering the draft
// range produced by a drag (or the cursor cell).
func (m *Model) openCreateForm(draft DraftSelection) {
	m.mode = ModeForm
	m.formShift = nil
	m.formDate = m.dayDate(draft.Day)
	m.formTitle.SetValue("")
	m.formStart.SetValue(draft.Start())
	m.formEnd.SetValue(draft.End())
	m.formUntil.SetValue("")
	m.formStaffIdx = 0
	m.formRecurring = false
	m.formFreq = shift.FrequencyWeekly
	m.formDays = [7]bool{}
	m.formErr = ""
	m.focusField(fieldTitle)
	LogModeChange(ModeNormal, ModeForm, "create form")
}

// openEditForm opens the shift form prefilled from an existing shift.
func (m *Model) openEditForm(s *shift.Shift) {
	m.mode = ModeForm
	m.formShift = s
	m.formDate = s.Date
	m.formTitle.SetValue(s.Title)
	m.formStart.SetValue(s.Start)
	m.formEnd.SetValue(s.End)
	m.formStaffIdx = m.staffIndexOf(s.PrimaryStaff())
	m.formRecurring = s.IsRecurring
	m.formFreq = s.Frequency
	if m.formFreq == "" {
		m.formFreq = shift.FrequencyWeekly
	}
	if s.RecurrenceEndDate.IsZero() {
		m.formUntil.SetValue("")
	} else {
		m.formUntil.SetValue(dateutil.ToISODate(s.RecurrenceEndDate))
	}
	m.formDays = [7]bool{}
	for _, d := range s.DaysOfWeek {
		if d >= 0 && d < 7 {
			m.formDays[d] = true
		}
	}
	m.formErr = ""
	m.focusField(fieldTitle)
	LogModeChange(ModeNormal, ModeForm, "edit form")
}

func (m *Model) staffIndexOf(id int64) int {
	for i, s := range m.staff {
		if s.ID == id {
			return i
		}
	}
	return 0
}

// focusField moves focus to the given field, wrapping around and skipping
// recurrence fields when the recurring toggle is off.
func (m *Model) focusField(f int) {
	limit := fieldRecurring + 1
	if m.formRecurring {
		limit = fieldCount
	}
	if f >= limit {
		f = fieldTitle
	}
	if f < 0 {
		f = limit - 1
	}
	m.formFocus = f

	m.formTitle.Blur()
	m.formStart.Blur()
	m.formEnd.Blur()
	m.formUntil.Blur()
	switch f {
	case fieldTitle:
		m.formTitle.Focus()
	case fieldStart:
		m.formStart.Focus()
	case fieldEnd:
		m.formEnd.Focus()
	case fieldUntil:
		m.formUntil.Focus()
	}
}

// handleFormKeys handles keys in the shift form modal.
func (m Model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeNormal
		m.formShift = nil
		LogModeChange(ModeForm, ModeNormal, "cancel form")
		return m, nil

	case "tab", "down":
		m.focusField(m.formFocus + 1)
		return m, nil
	case "shift+tab", "up":
		m.focusField(m.formFocus - 1)
		return m, nil

	case "enter", "ctrl+s":
		return m.submitForm()
	}

	switch m.formFocus {
	case fieldStaff:
		switch msg.String() {
		case "left", "h":
			if m.formStaffIdx > 0 {
				m.formStaffIdx--
			}
		case "right", "l":
			if m.formStaffIdx < len(m.staff)-1 {
				m.formStaffIdx++
			}
		}
		return m, nil

	case fieldRecurring:
		if msg.String() == " " || msg.String() == "left" || msg.String() == "right" {
			m.formRecurring = !m.formRecurring
		}
		return m, nil

	case fieldFrequency:
		freqs := []shift.Frequency{shift.FrequencyDaily, shift.FrequencyWeekly, shift.FrequencyMonthly, shift.FrequencyCustom}
		idx := 0
		for i, f := range freqs {
			if f == m.formFreq {
				idx = i
			}
		}
		switch msg.String() {
		case "left", "h":
			idx = (idx + len(freqs) - 1) % len(freqs)
		case "right", "l":
			idx = (idx + 1) % len(freqs)
		}
		m.formFreq = freqs[idx]
		return m, nil

	case fieldWeekdays:
		k := msg.String()
		if len(k) == 1 && k[0] >= '1' && k[0] <= '7' {
			d := int(k[0] - '1')
			m.formDays[d] = !m.formDays[d]
		}
		return m, nil
	}

	// Text fields
	var cmd tea.Cmd
	switch m.formFocus {
	case fieldTitle:
		m.formTitle, cmd = m.formTitle.Update(msg)
	case fieldStart:
		m.formStart, cmd = m.formStart.Update(msg)
	case fieldEnd:
		m.formEnd, cmd = m.formEnd.Update(msg)
	case fieldUntil:
		m.formUntil, cmd = m.formUntil.Update(msg)
	}
	return m, cmd
}

// formToShift builds and validates a shift from the form state.
func (m *Model) formToShift() (*shift.Shift, error) {
	if len(m.staff) == 0 {
		return nil, fmt.Errorf("no staff on file: add staff with `rota staff add` first")
	}

	var s *shift.Shift
	if m.formShift != nil {
		s = m.formShift.Clone()
	} else {
		s = &shift.Shift{Date: dateutil.TruncateToDay(m.formDate)}
	}

	s.Title = strings.TrimSpace(m.formTitle.Value())
	s.Start = strings.TrimSpace(m.formStart.Value())
	s.End = strings.TrimSpace(m.formEnd.Value())
	s.Color = ""

	// Changing the staff selection reassigns the shift. An untouched
	// selection keeps co-assigned staff beyond the primary, which the
	// form shows but does not edit.
	sel := m.staff[m.formStaffIdx].ID
	if m.formShift == nil || sel != m.formShift.PrimaryStaff() {
		s.StaffIDs = []int64{sel}
	}

	s.IsRecurring = m.formRecurring
	if m.formRecurring {
		s.Frequency = m.formFreq
		until := strings.TrimSpace(m.formUntil.Value())
		if until == "" {
			return nil, fmt.Errorf("recurring shifts need an end date")
		}
		end, err := dateutil.ParseDate(until)
		if err != nil {
			return nil, fmt.Errorf("end date: %v", err)
		}
		s.RecurrenceEndDate = end
		s.DaysOfWeek = nil
		if m.formFreq == shift.FrequencyCustom {
			for d := 0; d < 7; d++ {
				if m.formDays[d] {
					s.DaysOfWeek = append(s.DaysOfWeek, d)
				}
			}
		}
	} else {
		s.Frequency = ""
		s.RecurrenceEndDate = zeroTime
		s.DaysOfWeek = nil
	}

	if s.Title == "" {
		s.Title = shift.DefaultTitle
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// submitForm validates the form and issues the save.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	s, err := m.formToShift()
	if err != nil {
		m.formErr = err.Error()
		return m, nil
	}

	cmd := m.issueSave(s)
	m.mode = ModeNormal
	m.formShift = nil
	m.setStatus("Saving...", false)
	LogModeChange(ModeForm, ModeNormal, "submit form")
	return m, cmd
}

// viewForm renders the shift form modal.
func (m *Model) viewForm() string {
	s := m.styles
	var b strings.Builder

	title := "New shift"
	if m.formShift != nil {
		title = "Edit shift"
	}
	b.WriteString(s.ModalTitleStyle.Render(title))
	b.WriteString("  ")
	b.WriteString(s.ModalHintStyle.Render(dateutil.ToISODate(m.formDate) + " (" + dateutil.WeekdayName(weekdayIdx(m.formDate)) + ")"))
	b.WriteString("\n\n")

	b.WriteString(m.formField(fieldTitle, "Title", m.formTitle.View()))
	b.WriteString(m.formField(fieldStart, "Start", m.formStart.View()))
	b.WriteString(m.formField(fieldEnd, "End", m.formEnd.View()))

	staffVal := "(none)"
	if len(m.staff) > 0 {
		member := m.staff[m.formStaffIdx]
		staffVal = fmt.Sprintf("< %s >", member.Name)
	}
	b.WriteString(m.formField(fieldStaff, "Staff", staffVal))

	rec := "off"
	if m.formRecurring {
		rec = "on"
	}
	b.WriteString(m.formField(fieldRecurring, "Repeats", rec))

	if m.formRecurring {
		b.WriteString(m.formField(fieldFrequency, "Frequency", fmt.Sprintf("< %s >", string(m.formFreq))))
		b.WriteString(m.formField(fieldUntil, "Until", m.formUntil.View()))
		b.WriteString(m.formField(fieldWeekdays, "Days", m.weekdayToggles()))
	}

	if m.formErr != "" {
		b.WriteString("\n")
		b.WriteString(s.WarningStyle.Render(m.formErr))
	}
	b.WriteString("\n")
	b.WriteString(s.ModalHintStyle.Render("enter save · tab next field · esc cancel"))

	return s.ModalStyle.Render(b.String())
}

func (m *Model) formField(field int, label, value string) string {
	s := m.styles
	labelStr := s.ModalLabelStyle.Render(label)
	valStr := s.ModalValueStyle.Render(value)
	if m.formFocus == field {
		valStr = s.ModalInputTextStyle.Bold(true).Render("> ") + valStr
	} else {
		valStr = "  " + valStr
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStr, valStr) + "\n"
}

// weekdayToggles renders the CUSTOM weekday picker.
func (m *Model) weekdayToggles() string {
	s := m.styles
	parts := make([]string, 0, 7)
	for d := 0; d < 7; d++ {
		name := dateutil.WeekdayShortName(d)
		if m.formDays[d] {
			parts = append(parts, s.ToggleActiveStyle.Render(name))
		} else {
			parts = append(parts, s.ToggleInactiveStyle.Render(name))
		}
	}
	return strings.Join(parts, " ")
}

// viewConfirm renders the delete confirmation modal.
func (m *Model) viewConfirm() string {
	s := m.styles
	body := s.ModalTitleStyle.Render("Confirm") + "\n\n" +
		s.ModalValueStyle.Render(m.confirmMessage) + "\n\n" +
		s.ModalHintStyle.Render("y confirm · n cancel")
	return s.ModalStyle.Render(body)
}
