// Package tui provides the terminal user interface for rota.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rotacli/rota/internal/tui/theme"
)

// Default column width - will be recalculated dynamically.
const defaultColWidth = 16

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	palette *theme.Palette

	colorBg          lipgloss.Color
	colorBgHighlight lipgloss.Color
	colorBgSelection lipgloss.Color
	colorFg          lipgloss.Color
	colorFgMuted     lipgloss.Color
	colorAccent      lipgloss.Color
	colorCurrent     lipgloss.Color
	colorWarning     lipgloss.Color

	// Title style
	TitleStyle lipgloss.Style

	// Header styles
	HeaderStyle         lipgloss.Style
	DayHeaderStyle      lipgloss.Style
	DayHeaderTodayStyle lipgloss.Style

	// Time column
	TimeColumnStyle lipgloss.Style

	// Shift cell styles
	ShiftCellStyle     lipgloss.Style
	ShiftSelectedStyle lipgloss.Style

	// Drag selection highlight
	DragSelectionStyle lipgloss.Style

	// Empty cell
	EmptyCellStyle lipgloss.Style

	// Cursor style
	CursorStyle lipgloss.Style

	// Stats bar
	StatsBarStyle lipgloss.Style

	// Published / draft badges
	PublishedStyle lipgloss.Style
	DraftStyle     lipgloss.Style

	// Status message
	StatusStyle  lipgloss.Style
	WarningStyle lipgloss.Style

	// Help text
	HelpStyle lipgloss.Style

	// Modal styles
	ModalStyle             lipgloss.Style
	ModalTitleStyle        lipgloss.Style
	ModalLabelStyle        lipgloss.Style
	ModalValueStyle        lipgloss.Style
	ModalInputStyle        lipgloss.Style
	ModalInputFocusedStyle lipgloss.Style
	ModalInputTextStyle    lipgloss.Style
	ModalInputCursorStyle  lipgloss.Style
	ModalPlaceholderStyle  lipgloss.Style
	ModalHintStyle         lipgloss.Style
	ToggleActiveStyle      lipgloss.Style
	ToggleInactiveStyle    lipgloss.Style

	// Table container
	TableStyle lipgloss.Style

	// App container
	AppStyle lipgloss.Style

	// Separator style
	SeparatorStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{}
	palette := theme.NewPalette(t)
	s.palette = palette

	s.colorBg = palette.Bg
	s.colorBgHighlight = palette.BgHighlight
	s.colorBgSelection = palette.BgSelection
	s.colorFg = palette.Fg
	s.colorFgMuted = palette.FgMuted
	s.colorAccent = palette.Accent
	s.colorCurrent = palette.Current
	s.colorWarning = palette.Warning

	s.TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorAccent).
		Background(s.colorBg)

	s.HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorAccent).
		Background(s.colorBg)

	s.DayHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Align(lipgloss.Center).
		Foreground(s.colorFg).
		Background(s.colorBg).
		Width(defaultColWidth)

	s.DayHeaderTodayStyle = s.DayHeaderStyle.
		Foreground(s.colorCurrent).
		Bold(true)

	s.TimeColumnStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Background(s.colorBg).
		Width(6)

	s.ShiftCellStyle = lipgloss.NewStyle().
		Width(defaultColWidth).
		Align(lipgloss.Left).
		Bold(true)

	s.ShiftSelectedStyle = s.ShiftCellStyle.
		Background(s.colorWarning).
		Foreground(palette.TextOnWarning)

	s.DragSelectionStyle = lipgloss.NewStyle().
		Width(defaultColWidth).
		Background(s.colorBgSelection).
		Foreground(s.colorAccent).
		Bold(true)

	s.EmptyCellStyle = lipgloss.NewStyle().
		Width(defaultColWidth).
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	s.CursorStyle = lipgloss.NewStyle().
		Width(defaultColWidth).
		Background(s.colorBgSelection).
		Foreground(s.colorAccent).
		Bold(true)

	s.StatsBarStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBg)

	s.PublishedStyle = lipgloss.NewStyle().
		Foreground(s.colorCurrent).
		Background(s.colorBg).
		Bold(true)

	s.DraftStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBg).
		Bold(true)

	s.WarningStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning).
		Background(s.colorBg).
		Bold(true)

	s.HelpStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	s.ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorAccent).
		Background(s.colorBg).
		Foreground(s.colorFg).
		Padding(1, 2).
		Width(60)

	s.ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorAccent).
		Background(s.colorBg)

	s.ModalLabelStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Bold(true).
		Width(12).
		Background(s.colorBg)

	s.ModalValueStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBg)

	s.ModalInputStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(s.colorFgMuted).
		Background(s.colorBg).
		Foreground(s.colorFg).
		Padding(0, 1).
		Width(40)

	s.ModalInputFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(s.colorAccent).
		Background(s.colorBgHighlight).
		Foreground(s.colorFg).
		Padding(0, 1).
		Width(40)

	s.ModalInputTextStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBg)

	s.ModalInputCursorStyle = lipgloss.NewStyle().
		Foreground(s.colorBg).
		Background(s.colorAccent)

	s.ModalPlaceholderStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	s.ModalHintStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	s.ToggleActiveStyle = lipgloss.NewStyle().
		Background(s.colorAccent).
		Foreground(palette.TextOnAccent).
		Bold(true).
		Padding(0, 1)

	s.ToggleInactiveStyle = lipgloss.NewStyle().
		Background(s.colorBgHighlight).
		Foreground(s.colorFgMuted).
		Padding(0, 1)

	s.TableStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorAccent).
		Background(s.colorBg).
		Padding(0, 1)

	s.AppStyle = lipgloss.NewStyle().
		Background(s.colorBg).
		PaddingTop(1).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingBottom(1)

	s.SeparatorStyle = lipgloss.NewStyle().
		Foreground(s.colorBgSelection).
		Background(s.colorBg)

	return s
}

// ShiftStyleFor builds the cell style for a shift block from the staff
// member's stable color.
func (s *Styles) ShiftStyleFor(colorHex string, width int) lipgloss.Style {
	return s.ShiftCellStyle.
		Width(width).
		Background(s.palette.ShiftBg(colorHex)).
		Foreground(s.palette.TextOn(colorHex))
}

// EmptyCellStyleWidth returns the empty cell style with specified width.
func (s *Styles) EmptyCellStyleWidth(width int) lipgloss.Style {
	return s.EmptyCellStyle.Width(width)
}

// CursorStyleWidth returns the cursor style with specified width.
func (s *Styles) CursorStyleWidth(width int) lipgloss.Style {
	return s.CursorStyle.Width(width)
}

// DragSelectionStyleWidth returns the drag highlight style with specified width.
func (s *Styles) DragSelectionStyleWidth(width int) lipgloss.Style {
	return s.DragSelectionStyle.Width(width)
}

// DayHeaderStyleWidth returns the day header style with specified width.
func (s *Styles) DayHeaderStyleWidth(width int) lipgloss.Style {
	return s.DayHeaderStyle.Width(width)
}

// DayHeaderTodayStyleWidth returns the today header style with specified width.
func (s *Styles) DayHeaderTodayStyleWidth(width int) lipgloss.Style {
	return s.DayHeaderTodayStyle.Width(width)
}
