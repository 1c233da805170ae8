package session

import (
	"errors"
	"testing"
	"time"

	"github.com/moimlab/moim/internal/dateutil"
)

func fixedToday() time.Time {
	return time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local)
}

func dated(iso string) *Session {
	s := NewSession()
	s.Date = iso
	return s
}

func TestNewList(t *testing.T) {
	l := NewList()
	if l.Len() != 1 {
		t.Fatalf("Len = %d, want 1", l.Len())
	}
	s := l.At(0)
	if s.StartPeriod != PeriodAM || s.StartHour != "10" || s.StartMinute != "00" {
		t.Errorf("default start = %s %s:%s, want 오전 10:00", s.StartPeriod, s.StartHour, s.StartMinute)
	}
	if s.EndPeriod != PeriodAM || s.EndHour != "11" || s.EndMinute != "00" {
		t.Errorf("default end = %s %s:%s, want 오전 11:00", s.EndPeriod, s.EndHour, s.EndMinute)
	}
	if s.Date != "" {
		t.Errorf("default date = %q, want empty", s.Date)
	}
}

func TestAddRemove(t *testing.T) {
	l := NewList()
	l.Add()
	l.Add()
	if l.Len() != 3 {
		t.Fatalf("Len = %d, want 3", l.Len())
	}

	if err := l.Remove(1); err != nil {
		t.Fatalf("Remove(1): %v", err)
	}
	if l.Len() != 2 {
		t.Fatalf("Len after remove = %d, want 2", l.Len())
	}

	if err := l.Remove(5); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Remove(5) error = %v, want ErrIndexOutOfRange", err)
	}

	if err := l.Remove(0); err != nil {
		t.Fatalf("Remove(0): %v", err)
	}
	if err := l.Remove(0); !errors.Is(err, ErrLastSession) {
		t.Errorf("removing last session error = %v, want ErrLastSession", err)
	}
}

// The 3-session policy case: dates 2025-06-10, <unset>, 2025-06-20.
// The middle window is squeezed to the 11th..19th, and the neighbor dates
// are additionally excluded via the disabled set even though the window
// already rejects them.
func TestRangeForMiddleSession(t *testing.T) {
	l := NewListOf(dated("2025-06-10"), NewSession(), dated("2025-06-20"))

	r := l.RangeFor(1, fixedToday())

	wantMin := time.Date(2025, 6, 11, 0, 0, 0, 0, time.Local)
	wantMax := time.Date(2025, 6, 19, 0, 0, 0, 0, time.Local)
	if !r.MinDate.Equal(wantMin) {
		t.Errorf("MinDate = %v, want %v", r.MinDate, wantMin)
	}
	if !r.MaxDate.Equal(wantMax) {
		t.Errorf("MaxDate = %v, want %v", r.MaxDate, wantMax)
	}

	if !r.Disabled("2025-06-10") || !r.Disabled("2025-06-20") {
		t.Error("neighbor dates must appear in the disabled set")
	}
	if r.Disabled("2025-06-15") {
		t.Error("free date must not be disabled")
	}

	// Both rejection paths must independently exclude the neighbors.
	for _, iso := range []string{"2025-06-10", "2025-06-20"} {
		d, _ := dateutil.ParseISO(iso)
		if r.Contains(d) {
			t.Errorf("window must reject %s", iso)
		}
		if r.Allows(d) {
			t.Errorf("Allows(%s) = true, want false", iso)
		}
	}
	mid, _ := dateutil.ParseISO("2025-06-15")
	if !r.Allows(mid) {
		t.Error("Allows(2025-06-15) = false, want true")
	}
}

func TestRangeForDefaults(t *testing.T) {
	l := NewList()
	// A mid-day clock value truncates to that day's midnight floor.
	r := l.RangeFor(0, time.Date(2025, 6, 1, 15, 4, 5, 0, time.Local))

	if !r.MinDate.Equal(fixedToday()) {
		t.Errorf("MinDate = %v, want %v", r.MinDate, fixedToday())
	}
	if !r.MaxDate.Equal(dateutil.FarFuture()) {
		t.Errorf("MaxDate = %v, want 2099-12-31", r.MaxDate)
	}
	if len(r.DisabledDates) != 0 {
		t.Errorf("DisabledDates = %v, want empty", r.DisabledDates)
	}
}

func TestRangeForFirstAndLast(t *testing.T) {
	l := NewListOf(NewSession(), dated("2025-06-20"))

	first := l.RangeFor(0, fixedToday())
	wantMax := time.Date(2025, 6, 19, 0, 0, 0, 0, time.Local)
	if !first.MaxDate.Equal(wantMax) {
		t.Errorf("first MaxDate = %v, want %v", first.MaxDate, wantMax)
	}
	if !first.MinDate.Equal(fixedToday()) {
		t.Errorf("first MinDate = %v, want %v", first.MinDate, fixedToday())
	}

	l = NewListOf(dated("2025-06-10"), NewSession())
	last := l.RangeFor(1, fixedToday())
	wantMin := time.Date(2025, 6, 11, 0, 0, 0, 0, time.Local)
	if !last.MinDate.Equal(wantMin) {
		t.Errorf("last MinDate = %v, want %v", last.MinDate, wantMin)
	}
	if !last.MaxDate.Equal(dateutil.FarFuture()) {
		t.Errorf("last MaxDate = %v, want 2099-12-31", last.MaxDate)
	}
}

// Re-evaluating RangeFor for every index after each date change keeps the
// whole sequence strictly increasing.
func TestOrderingInvariantByConstruction(t *testing.T) {
	l := NewListOf(dated("2025-06-10"), dated("2025-06-15"), dated("2025-06-20"))

	for i := 0; i < l.Len(); i++ {
		r := l.RangeFor(i, fixedToday())
		for j := 0; j < l.Len(); j++ {
			if i == j {
				continue
			}
			d, _ := dateutil.ParseISO(l.At(j).Date)
			if r.Allows(d) {
				t.Errorf("session %d window allows sibling date %s", i, l.At(j).Date)
			}
		}
	}
}

func TestSetDate(t *testing.T) {
	l := NewList()
	d := time.Date(2025, 6, 10, 0, 0, 0, 0, time.Local)
	if err := l.SetDate(0, d); err != nil {
		t.Fatalf("SetDate: %v", err)
	}
	if l.At(0).Date != "2025-06-10" {
		t.Errorf("Date = %q, want 2025-06-10", l.At(0).Date)
	}
	if err := l.SetDate(3, d); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("SetDate(3) error = %v, want ErrIndexOutOfRange", err)
	}
}

func TestListValidate(t *testing.T) {
	ok := dated("2025-06-10")
	ok.Content = "주말 한강 러닝 모임입니다"

	bad := dated("2025-06-11")
	bad.Content = "짧음"

	l := NewListOf(ok, bad)
	idx, err := l.Validate()
	if idx != 1 {
		t.Errorf("failing index = %d, want 1", idx)
	}
	if !errors.Is(err, ErrContentTooShort) {
		t.Errorf("error = %v, want ErrContentTooShort", err)
	}

	bad.Content = "이번에는 충분히 긴 활동 설명입니다"
	idx, err = l.Validate()
	if idx != -1 || err != nil {
		t.Errorf("Validate = (%d, %v), want (-1, nil)", idx, err)
	}
}
