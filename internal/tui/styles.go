// Package tui provides the terminal user interface for moim.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/moimlab/moim/internal/tui/theme"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	palette *theme.Palette

	// Chrome
	TitleStyle  lipgloss.Style
	StepStyle   lipgloss.Style // inactive step tab
	StepActive  lipgloss.Style // active step tab
	StepDone    lipgloss.Style // completed step tab
	FooterStyle lipgloss.Style
	StatusStyle lipgloss.Style
	ErrorStyle  lipgloss.Style

	// Fields
	LabelStyle        lipgloss.Style
	LabelFocusedStyle lipgloss.Style
	FieldStyle        lipgloss.Style
	FieldFocusedStyle lipgloss.Style
	FieldInvalidStyle lipgloss.Style
	HintStyle         lipgloss.Style
	CounterStyle      lipgloss.Style

	// Category chips
	ChipStyle         lipgloss.Style
	ChipSelectedStyle lipgloss.Style
	ChipCursorStyle   lipgloss.Style

	// Image slots
	SlotStyle       lipgloss.Style
	SlotFilledStyle lipgloss.Style
	SlotCursorStyle lipgloss.Style

	// Session cards
	CardStyle        lipgloss.Style
	CardFocusedStyle lipgloss.Style

	// Calendar popup
	PopupStyle       lipgloss.Style
	CalHeaderStyle   lipgloss.Style
	CalWeekdayStyle  lipgloss.Style
	CalDayStyle      lipgloss.Style
	CalDisabledStyle lipgloss.Style
	CalTodayStyle    lipgloss.Style
	CalSelectedStyle lipgloss.Style
	CalCursorStyle   lipgloss.Style
	CalPadStyle      lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t *theme.Theme) *Styles {
	p := theme.NewPalette(t)

	s := &Styles{palette: p}

	s.TitleStyle = lipgloss.NewStyle().
		Foreground(p.Accent).
		Bold(true)

	s.StepStyle = lipgloss.NewStyle().
		Foreground(p.FgMuted).
		Padding(0, 1)
	s.StepActive = s.StepStyle.
		Foreground(p.TextOnAccent).
		Background(p.Accent).
		Bold(true)
	s.StepDone = s.StepStyle.
		Foreground(p.Success)

	s.FooterStyle = lipgloss.NewStyle().
		Foreground(p.FgMuted)
	s.StatusStyle = lipgloss.NewStyle().
		Foreground(p.Warning)
	s.ErrorStyle = lipgloss.NewStyle().
		Foreground(p.Error)

	s.LabelStyle = lipgloss.NewStyle().
		Foreground(p.FgMuted)
	s.LabelFocusedStyle = lipgloss.NewStyle().
		Foreground(p.Accent).
		Bold(true)

	s.FieldStyle = lipgloss.NewStyle().
		Foreground(p.Fg).
		Background(p.BgHighlight).
		Padding(0, 1)
	s.FieldFocusedStyle = s.FieldStyle.
		Background(p.BgSelection)
	s.FieldInvalidStyle = s.FieldStyle.
		Foreground(p.Error)

	s.HintStyle = lipgloss.NewStyle().
		Foreground(p.FgMuted).
		Italic(true)
	s.CounterStyle = lipgloss.NewStyle().
		Foreground(p.FgMuted)

	s.ChipStyle = lipgloss.NewStyle().
		Foreground(p.Fg).
		Background(p.BgHighlight).
		Padding(0, 1).
		MarginRight(1)
	s.ChipSelectedStyle = s.ChipStyle.
		Foreground(p.TextOnAccent).
		Background(p.Accent)
	s.ChipCursorStyle = s.ChipStyle.
		Background(p.BgSelection).
		Bold(true)

	s.SlotStyle = lipgloss.NewStyle().
		Foreground(p.FgMuted).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.FgMuted).
		Padding(0, 1).
		MarginRight(1)
	s.SlotFilledStyle = s.SlotStyle.
		Foreground(p.Success).
		BorderForeground(p.Success)
	s.SlotCursorStyle = s.SlotStyle.
		BorderForeground(p.Accent).
		Bold(true)

	s.CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.FgMuted).
		Padding(0, 1)
	s.CardFocusedStyle = s.CardStyle.
		BorderForeground(p.Accent)

	s.PopupStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.PopupBorder).
		Background(p.PopupBg).
		Padding(0, 1)

	s.CalHeaderStyle = lipgloss.NewStyle().
		Foreground(p.Accent).
		Background(p.PopupBg).
		Bold(true)
	s.CalWeekdayStyle = lipgloss.NewStyle().
		Foreground(p.FgMuted).
		Background(p.PopupBg)
	s.CalDayStyle = lipgloss.NewStyle().
		Foreground(p.Fg).
		Background(p.PopupBg)
	s.CalDisabledStyle = lipgloss.NewStyle().
		Foreground(p.DisabledFg).
		Background(p.PopupBg)
	s.CalTodayStyle = lipgloss.NewStyle().
		Foreground(p.Fg).
		Background(p.TodayBg)
	s.CalSelectedStyle = lipgloss.NewStyle().
		Foreground(p.TextOnAccent).
		Background(p.Accent).
		Bold(true)
	s.CalCursorStyle = lipgloss.NewStyle().
		Foreground(p.Fg).
		Background(p.BgSelection).
		Bold(true)
	s.CalPadStyle = s.CalDisabledStyle

	return s
}

// Palette exposes the derived palette for callers that need raw colors.
func (s *Styles) Palette() *theme.Palette {
	return s.palette
}
