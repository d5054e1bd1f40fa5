package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rotacli/rota/internal/config"
	"github.com/rotacli/rota/internal/dateutil"
	"github.com/rotacli/rota/internal/shift"
	"github.com/rotacli/rota/internal/tui/commands"
	"github.com/rotacli/rota/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeForm        // Shift form modal (create or edit)
	ModeConfirm
)

// ViewMode selects which rendering of the schedule is shown.
type ViewMode int

const (
	ViewWeek ViewMode = iota
	ViewDay
	ViewMonth
	ViewTimesheet
	ViewList
)

// Form field indices, in focus order.
const (
	fieldTitle = iota
	fieldStart
	fieldEnd
	fieldStaff
	fieldRecurring
	fieldFrequency
	fieldUntil
	fieldWeekdays
	fieldCount
)

// Position represents a cursor position in the grid.
type Position struct {
	Day  int // 0=Monday, 6=Sunday
	Hour int // 0-23
}

// Model is the main TUI model.
type Model struct {
	// Dependencies
	store    shift.Store
	staffDir shift.StaffDirectory
	orch     *shift.Orchestrator
	config   *config.Config

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// State
	weekStart time.Time // Monday of current week
	week      *shift.WeekSchedule
	staff     []*shift.StaffMember
	views     *shift.ViewCache
	cursor    Position
	mode      Mode
	viewMode  ViewMode
	loading   bool

	// Drag gesture state
	drag *DragController

	// Shift selected by click or cursor, 0 when none
	selectedID int64

	// Sequence of the most recently issued save; older resolutions are
	// discarded.
	latestSeq uint64

	// Form modal state
	formShift     *shift.Shift // shift being edited, nil for new
	formDate      time.Time
	formTitle     textinput.Model
	formStart     textinput.Model
	formEnd       textinput.Model
	formUntil     textinput.Model
	formStaffIdx  int
	formRecurring bool
	formFreq      shift.Frequency
	formDays      [7]bool
	formFocus     int
	formErr       string

	// Confirm modal state
	confirmMessage string
	confirmShift   *shift.Shift
	confirmSeries  bool

	// Terminal dimensions and layout
	width        int
	height       int
	colWidth     int
	scrollOffset int // First visible hour row offset from dayStartHour

	// Visible hour window, from config
	dayStartHour int
	dayEndHour   int

	// Messages
	statusMsg    string
	statusIsWarn bool
}

// New creates a new TUI model.
func New(store shift.Store, staffDir shift.StaffDirectory, orch *shift.Orchestrator, cfg *config.Config) *Model {
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load("mocha")
	}
	styles := NewStyles(t)

	m := &Model{
		store:        store,
		staffDir:     staffDir,
		orch:         orch,
		config:       cfg,
		theme:        t,
		styles:       styles,
		weekStart:    dateutil.WeekStart(nowFunc()),
		views:        &shift.ViewCache{},
		cursor:       Position{Day: dateutil.WeekdayIndex(nowFunc()), Hour: startHourOf(cfg)},
		mode:         ModeNormal,
		viewMode:     ViewWeek,
		drag:         NewDragController(),
		colWidth:     defaultColWidth,
		dayStartHour: startHourOf(cfg),
		dayEndHour:   endHourOf(cfg),
		loading:      true,
	}
	m.initFormInputs()
	return m
}

func startHourOf(cfg *config.Config) int {
	return shift.TimeToMinutes(cfg.Schedule.DayStart) / 60
}

func endHourOf(cfg *config.Config) int {
	h := shift.TimeToMinutes(cfg.Schedule.DayEnd) / 60
	if h <= 0 {
		h = 24
	}
	return h
}

func (m *Model) initFormInputs() {
	title := textinput.New()
	title.Placeholder = "Shift title"
	title.CharLimit = 128
	title.Width = 36

	start := textinput.New()
	start.Placeholder = "09:00"
	start.CharLimit = 5
	start.Width = 8

	end := textinput.New()
	end.Placeholder = "17:00"
	end.CharLimit = 5
	end.Width = 8

	until := textinput.New()
	until.Placeholder = "2026-12-31"
	until.CharLimit = 10
	until.Width = 12

	for _, ti := range []*textinput.Model{&title, &start, &end, &until} {
		ti.PlaceholderStyle = m.styles.ModalPlaceholderStyle
		ti.TextStyle = m.styles.ModalInputTextStyle
		ti.PromptStyle = m.styles.ModalInputTextStyle
		ti.Cursor.Style = m.styles.ModalInputCursorStyle
	}

	m.formTitle = title
	m.formStart = start
	m.formEnd = end
	m.formUntil = until
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		commands.LoadWeek(m.store, m.weekStart),
		commands.LoadStaff(m.staffDir),
	)
}

// weekShifts returns the loaded week's shift collection, nil while loading.
func (m *Model) weekShifts() []*shift.Shift {
	if m.week == nil {
		return nil
	}
	return m.week.Shifts
}

// currentViews builds (or reuses) the aggregated views for the loaded week.
func (m *Model) currentViews() *shift.Views {
	hh := m.config.Schedule.HourHeight
	if m.week == nil {
		return m.views.Get(nil, m.weekStart, m.weekStart.AddDate(0, 0, 6), hh)
	}
	return m.views.Get(m.week.Shifts, m.week.WeekStart, m.week.WeekEnd, hh)
}

// shiftAt returns the first shift covering the given grid cell, resolved
// in collection order.
func (m *Model) shiftAt(day, hour int) *shift.Shift {
	views := m.currentViews()
	start := shift.HourToTime(hour)
	end := shift.HourToTime(hour + 1)
	for _, p := range views.ByDayIndex[day] {
		if shift.TimesOverlap(p.Shift.Start, p.Shift.End, start, end) {
			return p.Shift
		}
	}
	return nil
}

// Run starts the TUI.
func Run(store shift.Store, staffDir shift.StaffDirectory, orch *shift.Orchestrator, cfg *config.Config) error {
	return RunWithDebug(store, staffDir, orch, cfg, false)
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(store shift.Store, staffDir shift.StaffDirectory, orch *shift.Orchestrator, cfg *config.Config, debug bool) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	model := New(store, staffDir, orch, cfg)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}
