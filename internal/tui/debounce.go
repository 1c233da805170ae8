package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DebounceMsg fires when a debounce window elapses. It is only acted on
// when Seq still matches the debouncer's latest sequence.
type DebounceMsg struct {
	ID  int
	Seq int
}

// Debouncer coalesces bursts of input into one trailing action using
// a sequence counter. Each Trigger invalidates any timer still in
// flight, so only the tick carrying the latest sequence survives.
type Debouncer struct {
	id    int
	seq   int
	armed bool
	delay time.Duration
}

// NewDebouncer creates a debouncer with a unique id and quiet period.
func NewDebouncer(id int, delay time.Duration) *Debouncer {
	return &Debouncer{id: id, delay: delay}
}

// Trigger starts a new debounce window and returns the command that
// will deliver its DebounceMsg.
func (d *Debouncer) Trigger() tea.Cmd {
	d.seq++
	d.armed = true
	id, seq := d.id, d.seq
	return tea.Tick(d.delay, func(time.Time) tea.Msg {
		return DebounceMsg{ID: id, Seq: seq}
	})
}

// Matches reports whether msg belongs to this debouncer and is still
// the latest trigger. A match disarms the debouncer.
func (d *Debouncer) Matches(msg DebounceMsg) bool {
	if msg.ID != d.id || msg.Seq != d.seq || !d.armed {
		return false
	}
	d.armed = false
	return true
}

// Cancel invalidates any pending debounce window.
func (d *Debouncer) Cancel() {
	d.seq++
	d.armed = false
}

// Pending reports whether a debounce window is still in flight.
func (d *Debouncer) Pending() bool {
	return d.armed
}
