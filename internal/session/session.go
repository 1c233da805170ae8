// Package session defines the session domain: 12-hour time arithmetic,
// the ordered session list, date range policy, and time reconciliation rules.
package session

import (
	"errors"
	"strconv"
	"strings"
)

// Validation errors.
var (
	ErrDateNotSet       = errors.New("session date is not set")
	ErrStartTimeNotSet  = errors.New("session start time is not set")
	ErrEndTimeNotSet    = errors.New("session end time is not set")
	ErrEndNotAfterStart = errors.New("end time must be after start time")
	ErrContentEmpty     = errors.New("session content is empty")
	ErrContentTooShort  = errors.New("session content is too short")
)

// Default start time for a new session: 오전 10:00 running to 오전 11:00.
const (
	defaultStartHour   = "10"
	defaultStartMinute = "00"
	defaultEndHour     = "11"
	defaultEndMinute   = "00"
)

// Session is one calendar entry of a listing.
// Hour and minute fields stay strings because they mirror text inputs;
// Minute fields are zero-padded, Hour fields are not.
type Session struct {
	Date        string // YYYY-MM-DD, empty until a date is chosen
	StartPeriod Period
	StartHour   string
	StartMinute string
	EndPeriod   Period
	EndHour     string
	EndMinute   string
	Content     string
}

// NewSession returns a session with the default time range and no date.
func NewSession() *Session {
	return &Session{
		StartPeriod: PeriodAM,
		StartHour:   defaultStartHour,
		StartMinute: defaultStartMinute,
		EndPeriod:   PeriodAM,
		EndHour:     defaultEndHour,
		EndMinute:   defaultEndMinute,
	}
}

// StartMinutes returns the start time as minutes since midnight.
func (s *Session) StartMinutes() int {
	return ToAbsoluteMinutes(s.StartPeriod, s.StartHour, s.StartMinute)
}

// EndMinutes returns the end time as minutes since midnight.
func (s *Session) EndMinutes() int {
	return ToAbsoluteMinutes(s.EndPeriod, s.EndHour, s.EndMinute)
}

// SetStart overwrites the start time fields from a display clock.
func (s *Session) SetStart(c Clock12) {
	s.StartPeriod = c.Period
	s.StartHour = strconv.Itoa(c.Hour)
	s.StartMinute = c.Minute
}

// SetEnd overwrites the end time fields from a display clock.
func (s *Session) SetEnd(c Clock12) {
	s.EndPeriod = c.Period
	s.EndHour = strconv.Itoa(c.Hour)
	s.EndMinute = c.Minute
}

// Validate applies the submit-time rules for a single session.
// Editing-time checks are advisory; this is the strict gate.
func (s *Session) Validate() error {
	if s.Date == "" {
		return ErrDateNotSet
	}
	if s.StartHour == "" || s.StartMinute == "" {
		return ErrStartTimeNotSet
	}
	if s.EndHour == "" || s.EndMinute == "" {
		return ErrEndTimeNotSet
	}
	if s.EndMinutes() <= s.StartMinutes() {
		return ErrEndNotAfterStart
	}
	trimmed := strings.TrimSpace(s.Content)
	if trimmed == "" {
		return ErrContentEmpty
	}
	if GraphemeLength(trimmed) < MinContentLength {
		return ErrContentTooShort
	}
	return nil
}

// Complete reports whether the session passes the advisory completeness
// check used to gate form progression.
func (s *Session) Complete() bool {
	return s.Date != "" &&
		s.StartHour != "" && s.StartMinute != "" &&
		s.EndHour != "" && s.EndMinute != "" &&
		GraphemeLength(strings.TrimSpace(s.Content)) >= MinContentLength
}
