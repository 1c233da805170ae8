package session

import "testing"

func TestAutoEndMinutes(t *testing.T) {
	tests := []struct {
		name  string
		start int
		want  int
	}{
		{name: "morning", start: 600, want: 660},
		{name: "midnight", start: 0, want: 60},
		{name: "clamps at day boundary", start: 1430, want: MaxDayMinute},
		{name: "exactly at boundary", start: MaxDayMinute, want: MaxDayMinute},
		{name: "one hour before boundary", start: 1379, want: MaxDayMinute},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AutoEndMinutes(tt.start); got != tt.want {
				t.Errorf("AutoEndMinutes(%d) = %d, want %d", tt.start, got, tt.want)
			}
		})
	}
}

func TestReviseEndMinutes(t *testing.T) {
	tests := []struct {
		name       string
		start, end int
		want       int
		wantRev    EndRevision
	}{
		{name: "valid end kept", start: 600, end: 700, want: 700, wantRev: EndAccepted},
		{name: "end past boundary clamps", start: 600, end: 1500, want: MaxDayMinute, wantRev: EndClamped},
		{name: "end equal to start reverts", start: 600, end: 600, want: 660, wantRev: EndReverted},
		{name: "end before start reverts", start: 600, end: 500, want: 660, wantRev: EndReverted},
		{name: "revert near boundary clamps", start: 1430, end: 1400, want: MaxDayMinute, wantRev: EndReverted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, rev := ReviseEndMinutes(tt.start, tt.end)
			if got != tt.want || rev != tt.wantRev {
				t.Errorf("ReviseEndMinutes(%d, %d) = (%d, %d), want (%d, %d)",
					tt.start, tt.end, got, rev, tt.want, tt.wantRev)
			}
		})
	}
}

func TestAutoFollowEnd(t *testing.T) {
	s := NewSession()
	s.StartPeriod = PeriodPM
	s.StartHour = "11"
	s.StartMinute = "30" // 23:30

	AutoFollowEnd(s)

	if s.EndPeriod != PeriodPM || s.EndHour != "11" || s.EndMinute != "59" {
		t.Errorf("end = %s %s:%s, want 오후 11:59", s.EndPeriod, s.EndHour, s.EndMinute)
	}
}

func TestSanitizeTimeField(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		min, max int
		want     string
	}{
		{name: "empty stays empty", raw: "", min: 1, max: 12, want: ""},
		{name: "letters stripped to empty", raw: "ab", min: 1, max: 12, want: ""},
		{name: "valid hour", raw: "9", min: 1, max: 12, want: "9"},
		{name: "valid padded minute", raw: "05", min: 0, max: 59, want: "05"},
		{name: "third digit keeps last two", raw: "109", min: 0, max: 59, want: "09"},
		{name: "overflow clamps to max", raw: "75", min: 0, max: 59, want: "59"},
		{name: "hour overflow clamps", raw: "13", min: 1, max: 12, want: "12"},
		{name: "below min clamps up", raw: "0", min: 1, max: 12, want: "1"},
		{name: "mixed digits and letters", raw: "1a2", min: 1, max: 12, want: "12"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeTimeField(tt.raw, tt.min, tt.max); got != tt.want {
				t.Errorf("SanitizeTimeField(%q, %d, %d) = %q, want %q",
					tt.raw, tt.min, tt.max, got, tt.want)
			}
		})
	}
}
