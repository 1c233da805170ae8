package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/moimlab/moim/internal/dateutil"
)

// CalendarState is the widget's open/closed state.
type CalendarState int

const (
	StateClosed CalendarState = iota
	StateOpen
)

// CellKind distinguishes padding cells from selectable month days.
type CellKind int

const (
	// CellLeading is a trailing day of the previous month padding the first row.
	CellLeading CellKind = iota
	// CellDay is a day of the displayed month.
	CellDay
	// CellTrailing is a leading day of the next month padding the last row.
	CellTrailing
)

// Cell is one slot in the month grid.
type Cell struct {
	Day      int
	Kind     CellKind
	Date     time.Time
	Disabled bool
	Today    bool
	Selected bool
}

// CalendarOptions configures a calendar at construction time.
type CalendarOptions struct {
	MinDate       time.Time
	MaxDate       time.Time
	DisabledDates map[string]struct{}
	OnSelect      func(time.Time)
	// Now overrides the clock, for tests. Defaults to time.Now.
	Now func() time.Time
}

// Calendar is a month-grid date picker bound to one text field. It owns
// its open/closed state, displayed month, and selection; the bound field
// only changes on confirm.
type Calendar struct {
	registry *PopupRegistry
	field    *textinput.Model
	opts     CalendarOptions

	state     CalendarState
	built     bool
	destroyed bool

	displayed   time.Time // first day of the rendered month
	selected    time.Time
	hasSelected bool

	cells  []Cell
	cursor int // index into cells, -1 when no day cell is enabled
}

// NewCalendar creates a calendar bound to field and registers it for
// popup exclusivity. The grid itself is built lazily on first open.
func NewCalendar(registry *PopupRegistry, field *textinput.Model, opts CalendarOptions) *Calendar {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.MinDate.IsZero() {
		opts.MinDate = dateutil.TruncateToDay(opts.Now())
	} else {
		opts.MinDate = dateutil.TruncateToDay(opts.MinDate)
	}
	if opts.MaxDate.IsZero() {
		opts.MaxDate = dateutil.FarFuture()
	} else {
		opts.MaxDate = dateutil.TruncateToDay(opts.MaxDate)
	}

	c := &Calendar{
		registry: registry,
		field:    field,
		opts:     opts,
		cursor:   -1,
	}
	if registry != nil {
		registry.Register(c)
	}
	return c
}

// SetConstraints replaces the date constraints, typically after a sibling
// session's date changed. The selection is kept even if it falls outside
// the new range; the grid just renders it disabled.
func (c *Calendar) SetConstraints(minDate, maxDate time.Time, disabled map[string]struct{}) {
	if c.destroyed {
		return
	}
	if minDate.IsZero() {
		minDate = dateutil.TruncateToDay(c.opts.Now())
	}
	if maxDate.IsZero() {
		maxDate = dateutil.FarFuture()
	}
	c.opts.MinDate = dateutil.TruncateToDay(minDate)
	c.opts.MaxDate = dateutil.TruncateToDay(maxDate)
	c.opts.DisabledDates = disabled
	if c.built {
		c.rebuildGrid()
	}
}

// State returns the widget state.
func (c *Calendar) State() CalendarState {
	return c.state
}

// IsOpen reports whether the popup is visible.
func (c *Calendar) IsOpen() bool {
	return c.state == StateOpen
}

// Open shows the popup, closing any other open popup first. If the bound
// field holds a parseable display date it becomes the selection and sets
// the displayed month; malformed text is ignored and the widget falls
// back to the selection's month, or the minimum date's month.
func (c *Calendar) Open() {
	if c.destroyed || c.state == StateOpen {
		return
	}
	if c.registry != nil {
		c.registry.WillOpen(c)
	}
	c.state = StateOpen

	if c.field != nil {
		if t, err := dateutil.ParseDisplay(c.field.Value()); err == nil {
			c.selected = t
			c.hasSelected = true
		}
	}

	switch {
	case c.hasSelected:
		c.displayed = dateutil.MonthStart(c.selected)
	default:
		c.displayed = dateutil.MonthStart(c.opts.MinDate)
	}

	c.built = true
	c.rebuildGrid()
	c.placeCursor()
}

// ClosePopup hides the popup without committing. The selection is kept
// for the next open.
func (c *Calendar) ClosePopup() {
	if c.state == StateClosed {
		return
	}
	c.state = StateClosed
	if c.registry != nil {
		c.registry.DidClose(c)
	}
}

// Dismiss closes the popup without committing, as an outside click would.
func (c *Calendar) Dismiss() {
	c.ClosePopup()
}

// Confirm writes the selection into the bound field, fires OnSelect with
// the chosen date at local midnight, and closes. Without a selection it
// is a silent no-op.
func (c *Calendar) Confirm() {
	if c.destroyed || c.state != StateOpen || !c.hasSelected {
		return
	}
	if c.field != nil {
		c.field.SetValue(dateutil.FormatDisplay(c.selected))
	}
	if c.opts.OnSelect != nil {
		c.opts.OnSelect(c.selected)
	}
	c.ClosePopup()
}

// PrevMonth shifts the displayed month back by one. Selection is untouched.
func (c *Calendar) PrevMonth() {
	if c.destroyed || c.state != StateOpen {
		return
	}
	c.displayed = c.displayed.AddDate(0, -1, 0)
	c.rebuildGrid()
	c.placeCursor()
}

// NextMonth shifts the displayed month forward by one. Selection is untouched.
func (c *Calendar) NextMonth() {
	if c.destroyed || c.state != StateOpen {
		return
	}
	c.displayed = c.displayed.AddDate(0, 1, 0)
	c.rebuildGrid()
	c.placeCursor()
}

// MoveCursor moves the keyboard cursor by dx columns and dy rows,
// clamped to the displayed month's day cells.
func (c *Calendar) MoveCursor(dx, dy int) {
	if c.destroyed || c.state != StateOpen || c.cursor < 0 {
		return
	}
	next := c.cursor + dx + dy*7
	for next >= 0 && next < len(c.cells) && c.cells[next].Kind != CellDay {
		if dx+dy*7 > 0 {
			next++
		} else {
			next--
		}
	}
	if next < 0 || next >= len(c.cells) || c.cells[next].Kind != CellDay {
		return
	}
	c.cursor = next
}

// Select picks the day cell under the cursor. Disabled and padding cells
// are ignored. Only the selection highlighting is recomputed.
func (c *Calendar) Select() {
	if c.destroyed || c.state != StateOpen || c.cursor < 0 || c.cursor >= len(c.cells) {
		return
	}
	cell := c.cells[c.cursor]
	if cell.Kind != CellDay || cell.Disabled {
		return
	}
	c.selected = cell.Date
	c.hasSelected = true
	c.updateSelection()
}

// SelectDate picks a specific day of the displayed month, as a mouse
// click on its cell would.
func (c *Calendar) SelectDate(day int) {
	if c.destroyed || c.state != StateOpen {
		return
	}
	for i, cell := range c.cells {
		if cell.Kind == CellDay && cell.Day == day {
			c.cursor = i
			c.Select()
			return
		}
	}
}

// Destroy unhooks the calendar from the registry and closes it.
// Safe to call more than once.
func (c *Calendar) Destroy() {
	if c.destroyed {
		return
	}
	c.ClosePopup()
	if c.registry != nil {
		c.registry.Unregister(c)
	}
	c.destroyed = true
}

// Destroyed reports whether Destroy has run.
func (c *Calendar) Destroyed() bool {
	return c.destroyed
}

// Selected returns the current selection, if any.
func (c *Calendar) Selected() (time.Time, bool) {
	return c.selected, c.hasSelected
}

// Cursor returns the cell index under the keyboard cursor, or -1.
func (c *Calendar) Cursor() int {
	return c.cursor
}

// HeaderLabel returns the displayed month's label, e.g. "2025년 6월".
func (c *Calendar) HeaderLabel() string {
	return dateutil.FormatMonthYear(c.displayed)
}

// DisplayedMonth returns the first day of the rendered month.
func (c *Calendar) DisplayedMonth() time.Time {
	return c.displayed
}

// Cells returns the flat cell slice, length a multiple of 7.
func (c *Calendar) Cells() []Cell {
	return c.cells
}

// Grid returns the cells as complete weeks of 7.
func (c *Calendar) Grid() [][]Cell {
	rows := make([][]Cell, 0, len(c.cells)/7)
	for i := 0; i+7 <= len(c.cells); i += 7 {
		rows = append(rows, c.cells[i:i+7])
	}
	return rows
}

// rebuildGrid recomputes every cell for the displayed month. Leading and
// trailing padding cells are always disabled; day cells apply the range
// check first, then the disabled set, and only an enabled cell may carry
// the today mark.
func (c *Calendar) rebuildGrid() {
	first := dateutil.MonthStart(c.displayed)
	c.displayed = first

	lead := int(first.Weekday())
	days := dateutil.DaysIn(first)
	prev := first.AddDate(0, -1, 0)
	prevDays := dateutil.DaysIn(prev)
	today := dateutil.TruncateToDay(c.opts.Now())

	total := lead + days
	if rem := total % 7; rem != 0 {
		total += 7 - rem
	}

	cells := make([]Cell, 0, total)
	for i := 0; i < lead; i++ {
		cells = append(cells, Cell{
			Day:      prevDays - lead + 1 + i,
			Kind:     CellLeading,
			Disabled: true,
		})
	}
	for day := 1; day <= days; day++ {
		date := first.AddDate(0, 0, day-1)
		cell := Cell{Day: day, Kind: CellDay, Date: date}
		cell.Disabled = c.dateDisabled(date)
		if !cell.Disabled {
			cell.Today = dateutil.SameDay(date, today)
		}
		cell.Selected = c.hasSelected && dateutil.SameDay(date, c.selected)
		cells = append(cells, cell)
	}
	for day := 1; len(cells) < total; day++ {
		cells = append(cells, Cell{
			Day:      day,
			Kind:     CellTrailing,
			Disabled: true,
		})
	}

	c.cells = cells
}

// dateDisabled applies the range bound first, then the disabled set.
// A min bound above the max disables every day without failing.
func (c *Calendar) dateDisabled(date time.Time) bool {
	if date.Before(c.opts.MinDate) || date.After(c.opts.MaxDate) {
		return true
	}
	if c.opts.DisabledDates != nil {
		if _, ok := c.opts.DisabledDates[dateutil.FormatISO(date)]; ok {
			return true
		}
	}
	return false
}

// updateSelection retags the selected cell without rebuilding the grid.
func (c *Calendar) updateSelection() {
	for i := range c.cells {
		cell := &c.cells[i]
		cell.Selected = cell.Kind == CellDay && c.hasSelected && dateutil.SameDay(cell.Date, c.selected)
	}
}

// placeCursor puts the cursor on the selected day when visible, else the
// first enabled day, else -1 for a fully disabled month.
func (c *Calendar) placeCursor() {
	c.cursor = -1
	for i, cell := range c.cells {
		if cell.Kind != CellDay || cell.Disabled {
			continue
		}
		if c.cursor == -1 {
			c.cursor = i
		}
		if cell.Selected {
			c.cursor = i
			return
		}
	}
}
