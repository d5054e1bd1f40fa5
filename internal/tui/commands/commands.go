// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rotacli/rota/internal/shift"
)

// WeekLoadedMsg is sent when a week's schedule is loaded.
type WeekLoadedMsg struct {
	Week *shift.WeekSchedule
}

// StaffLoadedMsg is sent when the staff directory is loaded.
type StaffLoadedMsg struct {
	Staff []*shift.StaffMember
}

// ShiftSavedMsg is sent when a save resolves, successfully or not.
// Seq carries the orchestrator sequence number so the model can discard
// resolutions older than the latest issued save.
type ShiftSavedMsg struct {
	Result shift.SaveResult
}

// ShiftDeletedMsg is sent when a single shift or a whole series was deleted.
type ShiftDeletedMsg struct {
	Series bool
}

// WeekPublishedMsg is sent when a week's published flag was flipped.
type WeekPublishedMsg struct {
	Published bool
}

// ErrMsg is sent when an operation fails.
type ErrMsg struct {
	Op  string
	Err error
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// LoadWeek loads the schedule for the week starting at weekStart.
func LoadWeek(store shift.Store, weekStart time.Time) tea.Cmd {
	return func() tea.Msg {
		week, err := store.ListWeek(context.Background(), weekStart)
		if err != nil {
			return ErrMsg{Op: "load week", Err: err}
		}
		return WeekLoadedMsg{Week: week}
	}
}

// LoadStaff loads the staff directory.
func LoadStaff(dir shift.StaffDirectory) tea.Cmd {
	return func() tea.Msg {
		staff, err := dir.ListStaff(context.Background())
		if err != nil {
			return ErrMsg{Op: "load staff", Err: err}
		}
		return StaffLoadedMsg{Staff: staff}
	}
}

// SaveShift classifies and executes one save through the orchestrator.
// existing is the current same-day collection for advisory conflict
// detection; seq must come from orch.NextSeq at issue time so the model
// can fence stale resolutions.
func SaveShift(orch *shift.Orchestrator, s *shift.Shift, existing []*shift.Shift, seq uint64) tea.Cmd {
	return func() tea.Msg {
		result := orch.Save(context.Background(), s, existing, seq)
		return ShiftSavedMsg{Result: result}
	}
}

// DeleteShift deletes a single shift by id.
func DeleteShift(orch *shift.Orchestrator, id int64) tea.Cmd {
	return func() tea.Msg {
		if err := orch.DeleteSingle(context.Background(), id); err != nil {
			return ErrMsg{Op: "delete shift", Err: err}
		}
		return ShiftDeletedMsg{}
	}
}

// DeleteSeries deletes every member of a recurrence group.
func DeleteSeries(orch *shift.Orchestrator, groupID string) tea.Cmd {
	return func() tea.Msg {
		if err := orch.DeleteSeries(context.Background(), groupID); err != nil {
			return ErrMsg{Op: "delete series", Err: err}
		}
		return ShiftDeletedMsg{Series: true}
	}
}

// PublishWeek flips the published flag on a week.
func PublishWeek(store shift.Store, weekStart time.Time, published bool) tea.Cmd {
	return func() tea.Msg {
		if err := store.SetPublished(context.Background(), weekStart, published); err != nil {
			return ErrMsg{Op: "publish week", Err: err}
		}
		return WeekPublishedMsg{Published: published}
	}
}

// ClearStatusAfter clears the status line after the given delay.
func ClearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
