// Package dateutil provides date parsing and formatting utilities.
package dateutil

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Validation errors.
var (
	ErrInvalidDateFormat = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidDisplay    = errors.New("display date does not match expected pattern")
)

// displayPattern matches the localized display form, e.g. "2025년 6월 3일".
var displayPattern = regexp.MustCompile(`(\d{4})년\s+(\d{1,2})월\s+(\d{1,2})일`)

// ParseISO parses a date string in YYYY-MM-DD format.
// The returned time is midnight in the local zone.
func ParseISO(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}

// FormatISO formats a date as YYYY-MM-DD.
func FormatISO(t time.Time) string {
	return t.Format("2006-01-02")
}

// ParseDisplay parses the localized display form "{y}년 {m}월 {d}일".
// Extra surrounding text is ignored; only the first match is used.
func ParseDisplay(s string) (time.Time, error) {
	m := displayPattern.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, ErrInvalidDisplay
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	// Reject normalized overflows such as "2025년 13월 40일".
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, ErrInvalidDisplay
	}
	return t, nil
}

// FormatDisplay formats a date in the localized display form, e.g. "2025년 6월 3일".
func FormatDisplay(t time.Time) string {
	return fmt.Sprintf("%d년 %d월 %d일", t.Year(), int(t.Month()), t.Day())
}

// FormatMonthYear formats the calendar header form, e.g. "2025년 6월".
func FormatMonthYear(t time.Time) string {
	return fmt.Sprintf("%d년 %d월", t.Year(), int(t.Month()))
}

// TruncateToDay returns t with the time component set to midnight.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// FarFuture returns the scheduling ceiling, the last day of year 2099.
func FarFuture() time.Time {
	return time.Date(2099, time.December, 31, 0, 0, 0, 0, time.Local)
}

// MonthStart returns the first day of the month containing t.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// DaysIn returns the number of days in the month containing t.
func DaysIn(t time.Time) int {
	return MonthStart(t).AddDate(0, 1, -1).Day()
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
