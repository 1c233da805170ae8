package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/moimlab/moim/internal/session"
)

// ReconcileOutcome says what a debounced reconciliation pass did.
type ReconcileOutcome int

const (
	ReconcileNone     ReconcileOutcome = iota // message was stale or not ours
	ReconcileFollowed                         // end time re-derived from start
	ReconcileAccepted                         // end time kept as entered
	ReconcileClamped                          // end time clamped to 23:59
	ReconcileReverted                         // end time reset, user should be told
)

// TimeReconciler keeps one session's end time consistent with its start
// time. Start edits re-derive the end after a quiet period; end edits are
// validated only, so the user is never overwritten mid-keystroke. Each
// card owns its own reconciler, so edits on one card never cancel
// another card's pending pass.
type TimeReconciler struct {
	sess  *session.Session
	start *Debouncer
	end   *Debouncer
}

// NewTimeReconciler creates a reconciler for one session card. The two
// debouncer ids must be unique across the whole form.
func NewTimeReconciler(sess *session.Session, startID, endID int, delay time.Duration) *TimeReconciler {
	return &TimeReconciler{
		sess:  sess,
		start: NewDebouncer(startID, delay),
		end:   NewDebouncer(endID, delay),
	}
}

// StartChanged schedules an auto-follow pass after the quiet period.
// A pending end validation is dropped, the follow-up would overwrite
// its result anyway.
func (r *TimeReconciler) StartChanged() tea.Cmd {
	r.end.Cancel()
	return r.start.Trigger()
}

// EndChanged schedules an end-time validation after the quiet period.
func (r *TimeReconciler) EndChanged() tea.Cmd {
	return r.end.Trigger()
}

// HandleDebounce runs the pass a DebounceMsg stands for. Stale messages
// and messages belonging to other reconcilers report ReconcileNone.
func (r *TimeReconciler) HandleDebounce(msg DebounceMsg) ReconcileOutcome {
	switch {
	case r.start.Matches(msg):
		session.AutoFollowEnd(r.sess)
		return ReconcileFollowed
	case r.end.Matches(msg):
		return r.validateEnd()
	default:
		return ReconcileNone
	}
}

// validateEnd applies the end-time rules to the session's current fields.
func (r *TimeReconciler) validateEnd() ReconcileOutcome {
	start := r.sess.StartMinutes()
	end, rev := session.ReviseEndMinutes(start, r.sess.EndMinutes())
	switch rev {
	case session.EndAccepted:
		return ReconcileAccepted
	case session.EndClamped:
		r.sess.SetEnd(session.FromAbsoluteMinutes(end))
		return ReconcileClamped
	default:
		r.sess.SetEnd(session.FromAbsoluteMinutes(end))
		return ReconcileReverted
	}
}

// Flush cancels pending passes and applies auto-follow immediately.
// Used when a card is about to be validated or persisted.
func (r *TimeReconciler) Flush() {
	if r.start.Pending() {
		r.start.Cancel()
		session.AutoFollowEnd(r.sess)
	}
	if r.end.Pending() {
		r.end.Cancel()
		r.validateEnd()
	}
}

// Session returns the session this reconciler manages.
func (r *TimeReconciler) Session() *session.Session {
	return r.sess
}
