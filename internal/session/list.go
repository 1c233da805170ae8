package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/moimlab/moim/internal/dateutil"
)

// List errors.
var (
	ErrIndexOutOfRange = errors.New("session index out of range")
	ErrLastSession     = errors.New("cannot remove the last remaining session")
)

// Range is the allowed date window for one session, squeezed by its
// immediate neighbors. Disabled dates are every other session's date,
// redundant with the window for direct neighbors but load-bearing for
// sessions further away when the window is wide.
type Range struct {
	MinDate       time.Time
	MaxDate       time.Time
	DisabledDates map[string]struct{}
}

// Disabled reports whether the ISO date string is excluded.
func (r Range) Disabled(iso string) bool {
	_, ok := r.DisabledDates[iso]
	return ok
}

// Contains reports whether d (compared at midnight precision) is inside
// the min/max window.
func (r Range) Contains(d time.Time) bool {
	d = dateutil.TruncateToDay(d)
	return !d.Before(dateutil.TruncateToDay(r.MinDate)) && !d.After(dateutil.TruncateToDay(r.MaxDate))
}

// Allows reports whether d is both inside the window and not disabled.
func (r Range) Allows(d time.Time) bool {
	return r.Contains(d) && !r.Disabled(dateutil.FormatISO(d))
}

// List is the ordered collection of sessions for one listing.
// The strict ordering invariant date[i] < date[i+1] holds by construction:
// every date is picked from RangeFor, which is re-evaluated for all
// sessions after each change.
type List struct {
	sessions []*Session
}

// NewList creates a list with a single default session.
func NewList() *List {
	return &List{sessions: []*Session{NewSession()}}
}

// NewListOf wraps existing sessions, e.g. when resuming a draft.
// An empty argument list behaves like NewList.
func NewListOf(sessions ...*Session) *List {
	if len(sessions) == 0 {
		return NewList()
	}
	l := &List{sessions: make([]*Session, len(sessions))}
	copy(l.sessions, sessions)
	return l
}

// Len returns the number of sessions.
func (l *List) Len() int {
	return len(l.sessions)
}

// At returns the session at index i, or nil if out of range.
func (l *List) At(i int) *Session {
	if i < 0 || i >= len(l.sessions) {
		return nil
	}
	return l.sessions[i]
}

// Sessions returns a copy of the session slice.
func (l *List) Sessions() []*Session {
	out := make([]*Session, len(l.sessions))
	copy(out, l.sessions)
	return out
}

// Add appends a new default session and returns it.
func (l *List) Add() *Session {
	s := NewSession()
	l.sessions = append(l.sessions, s)
	return s
}

// Remove deletes the session at index i.
// The list never shrinks below one session.
func (l *List) Remove(i int) error {
	if i < 0 || i >= len(l.sessions) {
		return ErrIndexOutOfRange
	}
	if len(l.sessions) == 1 {
		return ErrLastSession
	}
	l.sessions = append(l.sessions[:i], l.sessions[i+1:]...)
	return nil
}

// RangeFor computes the allowed date window for the session at index i.
// Defaults span the given today through the 2099 ceiling; a dated previous
// session raises the floor to its date+1 and a dated next session lowers
// the ceiling to its date-1. Callers with an injected clock pass its now.
func (l *List) RangeFor(i int, today time.Time) Range {
	r := Range{
		MinDate:       dateutil.TruncateToDay(today),
		MaxDate:       dateutil.FarFuture(),
		DisabledDates: make(map[string]struct{}),
	}

	if i > 0 && i-1 < len(l.sessions) && l.sessions[i-1].Date != "" {
		if prev, err := dateutil.ParseISO(l.sessions[i-1].Date); err == nil {
			r.MinDate = prev.AddDate(0, 0, 1)
		}
	}
	if i >= 0 && i+1 < len(l.sessions) && l.sessions[i+1].Date != "" {
		if next, err := dateutil.ParseISO(l.sessions[i+1].Date); err == nil {
			r.MaxDate = next.AddDate(0, 0, -1)
		}
	}

	for idx, s := range l.sessions {
		if idx != i && s.Date != "" {
			r.DisabledDates[s.Date] = struct{}{}
		}
	}

	return r
}

// SetDate records a chosen date for the session at index i.
func (l *List) SetDate(i int, d time.Time) error {
	if i < 0 || i >= len(l.sessions) {
		return ErrIndexOutOfRange
	}
	l.sessions[i].Date = dateutil.FormatISO(d)
	return nil
}

// Validate runs the submit-time rules over every session in order.
// It returns the zero-based index of the first failing session along with
// the failure, or (-1, nil) when all sessions pass.
func (l *List) Validate() (int, error) {
	for i, s := range l.sessions {
		if err := s.Validate(); err != nil {
			return i, fmt.Errorf("session %d: %w", i+1, err)
		}
	}
	return -1, nil
}

// Complete reports whether every session passes the advisory
// completeness check.
func (l *List) Complete() bool {
	for _, s := range l.sessions {
		if !s.Complete() {
			return false
		}
	}
	return true
}
