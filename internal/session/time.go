package session

import (
	"fmt"
	"strconv"
	"strings"
)

// Period represents the half of the day in the 12-hour display form.
// Values carry the localized labels directly.
type Period string

const (
	PeriodAM Period = "오전"
	PeriodPM Period = "오후"
)

// Valid returns true if the period is a known value.
func (p Period) Valid() bool {
	return p == PeriodAM || p == PeriodPM
}

// Toggle returns the opposite period.
func (p Period) Toggle() Period {
	if p == PeriodAM {
		return PeriodPM
	}
	return PeriodAM
}

const (
	minutesPerDay = 24 * 60

	// MaxDayMinute is the last representable minute of a day (23:59).
	MaxDayMinute = 23*60 + 59
)

// Clock12 is the 12-hour display form of a time of day.
// Minute is kept zero-padded because it mirrors directly into input fields.
type Clock12 struct {
	Period Period
	Hour   int    // 1-12
	Minute string // "00"-"59"
}

// String renders the clock for messages and summaries, e.g. "오전 10:00".
func (c Clock12) String() string {
	return fmt.Sprintf("%s %d:%s", c.Period, c.Hour, c.Minute)
}

// ToAbsoluteMinutes converts a 12-hour labeled time to minutes since midnight.
// PM adds 12 hours unless the hour is 12; 12 AM maps to hour 0.
// This is a display-layer convenience, not a strict parser: non-numeric or
// missing fields count as 0, and callers validate ranges beforehand.
func ToAbsoluteMinutes(period Period, hour, minute string) int {
	h, err := strconv.Atoi(strings.TrimSpace(hour))
	if err != nil {
		h = 0
	}
	if period == PeriodPM && h != 12 {
		h += 12
	} else if period == PeriodAM && h == 12 {
		h = 0
	}
	m, err := strconv.Atoi(strings.TrimSpace(minute))
	if err != nil {
		m = 0
	}
	return h*60 + m
}

// FromAbsoluteMinutes converts minutes since midnight to the 12-hour form.
// Out-of-range input wraps modulo one day before converting; current callers
// clamp to MaxDayMinute first, so the wrap is not expected to trigger.
func FromAbsoluteMinutes(minutes int) Clock12 {
	minutes %= minutesPerDay
	if minutes < 0 {
		minutes += minutesPerDay
	}

	h := minutes / 60
	m := minutes % 60

	period := PeriodAM
	if h >= 12 {
		period = PeriodPM
	}
	if h > 12 {
		h -= 12
	}
	if h == 0 {
		h = 12
	}

	return Clock12{
		Period: period,
		Hour:   h,
		Minute: fmt.Sprintf("%02d", m),
	}
}
