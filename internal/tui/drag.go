package tui

import (
	"github.com/rotacli/rota/internal/shift"
)

// DragState identifies the drag controller's state.
type DragState int

const (
	// DragIdle means no drag is in progress.
	DragIdle DragState = iota
	// DragSelecting means the pointer went down on an empty cell and a
	// selection is being extended.
	DragSelecting
)

// DraftSelection is the ephemeral day/hour range produced by a completed
// drag. EndHour is exclusive.
type DraftSelection struct {
	Day       int
	StartHour int
	EndHour   int
}

// Start returns the draft's start as "HH:MM".
func (d DraftSelection) Start() string {
	return shift.HourToTime(d.StartHour)
}

// End returns the draft's exclusive end as "HH:MM".
func (d DraftSelection) End() string {
	return shift.HourToTime(d.EndHour)
}

// DragController converts pointer-down/enter/up events over grid cells
// into a draft shift range. It is a two-state machine (Idle, Selecting)
// and never errors: events that do not apply in the current state are
// ignored.
type DragController struct {
	state  DragState
	anchor cell
	cursor cell
	moved  bool // true once the cursor left the anchor cell
}

type cell struct {
	day  int
	hour int
}

// NewDragController creates a controller in the Idle state.
func NewDragController() *DragController {
	return &DragController{}
}

// State returns the current state.
func (c *DragController) State() DragState {
	return c.state
}

// IsSelecting returns true while a drag is in progress.
func (c *DragController) IsSelecting() bool {
	return c.state == DragSelecting
}

// PointerDown starts a selection anchored at the given cell. occupied
// reports whether an existing shift covers the cell; a drag must start on
// empty space so a gesture cannot corrupt an existing shift.
func (c *DragController) PointerDown(day, hour int, occupied bool) {
	if c.state != DragIdle || occupied {
		return
	}
	if day < 0 || day > 6 || hour < 0 || hour > 23 {
		return
	}
	c.state = DragSelecting
	c.anchor = cell{day: day, hour: hour}
	c.cursor = c.anchor
	c.moved = false
}

// PointerEnter extends the selection to a new cell. Drags are constrained
// to the anchor's day column; entering another day is ignored.
func (c *DragController) PointerEnter(day, hour int) {
	if c.state != DragSelecting {
		return
	}
	if day != c.anchor.day {
		return
	}
	if hour < 0 || hour > 23 {
		return
	}
	if hour != c.anchor.hour {
		c.moved = true
	}
	c.cursor = cell{day: day, hour: hour}
}

// PointerUp resolves the selection at the given cell. It returns the
// draft covering [min(anchor,cursor), max(anchor,cursor)+1) and whether a
// drag (as opposed to a plain click) produced it. A down+up on the anchor
// cell with no intervening movement is a click: the caller routes it
// through the overlap resolver instead of the draft path.
func (c *DragController) PointerUp(day, hour int) (draft DraftSelection, isDrag bool) {
	if c.state != DragSelecting {
		return DraftSelection{}, false
	}
	c.PointerEnter(day, hour)
	return c.finish()
}

// Cancel is the document-level safety net: any pointer release outside
// the grid resolves a Selecting state back to Idle with no draft, so a
// release beyond the grid bounds cannot leave a stuck drag.
func (c *DragController) Cancel() {
	c.state = DragIdle
	c.moved = false
}

// finish computes the draft and returns to Idle.
func (c *DragController) finish() (DraftSelection, bool) {
	startHour := min(c.anchor.hour, c.cursor.hour)
	endHour := max(c.anchor.hour, c.cursor.hour) + 1 // inclusive of the cell under the cursor

	draft := DraftSelection{
		Day:       c.anchor.day,
		StartHour: startHour,
		EndHour:   endHour,
	}
	isDrag := c.moved

	c.state = DragIdle
	c.moved = false
	return draft, isDrag
}

// Selection returns the in-progress range for rendering the drag
// highlight. ok is false when no drag is active.
func (c *DragController) Selection() (d DraftSelection, ok bool) {
	if c.state != DragSelecting {
		return DraftSelection{}, false
	}
	return DraftSelection{
		Day:       c.anchor.day,
		StartHour: min(c.anchor.hour, c.cursor.hour),
		EndHour:   max(c.anchor.hour, c.cursor.hour) + 1,
	}, true
}
