package session

import "strconv"

// AutoFollowGap is how far the end time trails the start time, in minutes.
const AutoFollowGap = 60

// AutoEndMinutes returns the end time derived from a start time: one hour
// later, clamped at the day boundary.
func AutoEndMinutes(startMinutes int) int {
	end := startMinutes + AutoFollowGap
	if end > MaxDayMinute {
		end = MaxDayMinute
	}
	return end
}

// EndRevision describes what ReviseEndMinutes did to a user-entered end time.
type EndRevision int

const (
	EndAccepted EndRevision = iota // end time kept as entered
	EndClamped                     // end time exceeded 23:59 and was clamped
	EndReverted                    // end time was <= start and reset to auto-follow
)

// ReviseEndMinutes validates a user-entered end time against the start time.
// End times past the day boundary clamp to 23:59; end times at or before the
// start revert to the auto-follow value. The start value is never touched.
func ReviseEndMinutes(startMinutes, endMinutes int) (int, EndRevision) {
	if endMinutes > MaxDayMinute {
		return MaxDayMinute, EndClamped
	}
	if endMinutes <= startMinutes {
		return AutoEndMinutes(startMinutes), EndReverted
	}
	return endMinutes, EndAccepted
}

// AutoFollowEnd applies the auto-follow rule to a session, overwriting its
// end time fields from its current start time.
func AutoFollowEnd(s *Session) {
	s.SetEnd(FromAbsoluteMinutes(AutoEndMinutes(s.StartMinutes())))
}

// SanitizeTimeField normalizes raw text committed to an hour or minute input.
// Non-digits are stripped; an empty result is allowed (the user is still
// typing); more than two digits keep only the most recent two; the numeric
// value clamps to [min, max]. Clamped values lose their zero padding, which
// matches how the bound inputs behave.
func SanitizeTimeField(raw string, min, max int) string {
	digits := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] >= '0' && raw[i] <= '9' {
			digits = append(digits, raw[i])
		}
	}
	if len(digits) == 0 {
		return ""
	}
	if len(digits) > 2 {
		digits = digits[len(digits)-2:]
	}
	n, _ := strconv.Atoi(string(digits))
	if n < min {
		return strconv.Itoa(min)
	}
	if n > max {
		return strconv.Itoa(max)
	}
	return string(digits)
}
