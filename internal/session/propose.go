package session

import (
	"time"

	"github.com/moimlab/moim/internal/dateutil"
)

// proposeHorizonDays bounds the forward scan so a fully blocked window
// cannot spin until 2099.
const proposeHorizonDays = 366

// ProposeDate suggests the earliest date the session at index i could take:
// the first day inside its allowed window that no sibling occupies.
// Returns false when the window is empty or fully blocked within a year.
func ProposeDate(l *List, i int, today time.Time) (time.Time, bool) {
	r := l.RangeFor(i, today)
	min := dateutil.TruncateToDay(r.MinDate)
	max := dateutil.TruncateToDay(r.MaxDate)
	if max.Before(min) {
		return time.Time{}, false
	}

	d := min
	for range proposeHorizonDays {
		if d.After(max) {
			return time.Time{}, false
		}
		if !r.Disabled(dateutil.FormatISO(d)) {
			return d, true
		}
		d = d.AddDate(0, 0, 1)
	}
	return time.Time{}, false
}
