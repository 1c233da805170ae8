package tui

import (
	"strings"
	"testing"
)

func baseScreen(width, height int) string {
	row := strings.Repeat(".", width)
	rows := make([]string, height)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

func TestComposePopupSplicesAtAnchor(t *testing.T) {
	base := baseScreen(10, 5)
	popup := "AAA\nBBB"

	got := ComposePopup(base, popup, 10, 5, 1, 2)
	lines := strings.Split(got, "\n")

	want := []string{
		"..........",
		"..AAA.....",
		"..BBB.....",
		"..........",
		"..........",
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line %d = %q, want %q", i, lines[i], w)
		}
	}
}

func TestComposePopupClampsIntoViewport(t *testing.T) {
	base := baseScreen(8, 4)
	popup := "XXX\nYYY"

	// Anchor past the bottom-right corner gets pulled back inside.
	got := ComposePopup(base, popup, 8, 4, 10, 10)
	lines := strings.Split(got, "\n")

	if lines[2] != ".....XXX" || lines[3] != ".....YYY" {
		t.Errorf("popup not clamped to corner:\n%s", got)
	}
}

func TestComposePopupPadsRaggedLines(t *testing.T) {
	base := baseScreen(10, 3)
	popup := "AAAA\nB"

	got := ComposePopup(base, popup, 10, 3, 0, 0)
	lines := strings.Split(got, "\n")

	// The short popup line is padded to the box width so it still
	// covers the base underneath.
	if lines[1] != "B   ......" {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestComposePopupEmptyPopupReturnsBase(t *testing.T) {
	base := baseScreen(6, 2)
	if got := ComposePopup(base, "", 6, 2, 0, 0); got != base {
		t.Error("empty popup should leave the base untouched")
	}
}

func TestComposePopupNormalizesShortBase(t *testing.T) {
	got := ComposePopup("hi", "ZZ", 5, 3, 2, 1)
	lines := strings.Split(got, "\n")

	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if lines[0] != "hi   " {
		t.Errorf("line 0 = %q, want padded base", lines[0])
	}
	if lines[2] != " ZZ  " {
		t.Errorf("line 2 = %q, want popup row", lines[2])
	}
}

func TestComposePopupWiderThanViewport(t *testing.T) {
	base := baseScreen(4, 2)
	got := ComposePopup(base, "ABCDEFGH", 4, 2, 0, 0)
	lines := strings.Split(got, "\n")

	if lines[0] != "ABCD" {
		t.Errorf("line 0 = %q, want truncated popup", lines[0])
	}
}
