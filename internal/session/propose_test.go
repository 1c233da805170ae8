package session

import (
	"testing"
	"time"
)

func TestProposeDate(t *testing.T) {
	l := NewListOf(dated("2025-06-10"), NewSession(), dated("2025-06-20"))

	got, ok := ProposeDate(l, 1, fixedToday())
	if !ok {
		t.Fatal("ProposeDate returned no date")
	}
	want := time.Date(2025, 6, 11, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("ProposeDate = %v, want %v", got, want)
	}
}

func TestProposeDateTightWindow(t *testing.T) {
	l := NewListOf(dated("2025-06-10"), NewSession(), dated("2025-06-12"))
	got, ok := ProposeDate(l, 1, fixedToday())
	if !ok {
		t.Fatal("ProposeDate returned no date")
	}
	want := time.Date(2025, 6, 11, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("ProposeDate = %v, want %v", got, want)
	}
}

func TestProposeDateEmptyWindow(t *testing.T) {
	// Adjacent neighbors leave no free day in between.
	l := NewListOf(dated("2025-06-10"), NewSession(), dated("2025-06-11"))
	if _, ok := ProposeDate(l, 1, fixedToday()); ok {
		t.Error("ProposeDate should fail when the window is empty")
	}
}

func TestProposeDateFirstSession(t *testing.T) {
	l := NewList()
	got, ok := ProposeDate(l, 0, fixedToday())
	if !ok {
		t.Fatal("ProposeDate returned no date")
	}
	if !got.Equal(fixedToday()) {
		t.Errorf("ProposeDate = %v, want %v", got, fixedToday())
	}
}
