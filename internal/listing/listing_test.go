package listing

import (
	"errors"
	"strings"
	"testing"

	"github.com/moimlab/moim/internal/session"
)

func validListing() *Listing {
	l := New()
	l.Title = "주말 아침 한강 러닝 모임"
	l.Categories = []string{"건강/운동"}
	l.ActivityType = ActivityOffline
	_ = l.Images.Commit(-1, l.Images.Begin(), Image{Path: "cover.jpg", Size: 1024})
	return l
}

func TestToggleCategory(t *testing.T) {
	l := New()

	if err := l.ToggleCategory("건강/운동"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := l.ToggleCategory("그림"); err != nil {
		t.Fatalf("select second: %v", err)
	}
	if err := l.ToggleCategory("외국어"); !errors.Is(err, ErrTooManyCategories) {
		t.Errorf("third selection error = %v, want ErrTooManyCategories", err)
	}
	if len(l.Categories) != 2 {
		t.Fatalf("categories = %v, want 2 entries", l.Categories)
	}

	// Deselecting works even at the cap.
	if err := l.ToggleCategory("그림"); err != nil {
		t.Fatalf("deselect: %v", err)
	}
	if l.HasCategory("그림") {
		t.Error("그림 should be deselected")
	}

	if err := l.ToggleCategory("없는카테고리"); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("unknown category error = %v, want ErrUnknownCategory", err)
	}
}

func TestSetTitle(t *testing.T) {
	l := New()

	got, ok := l.SetTitle("주말 러닝 모임")
	if !ok || got != "주말 러닝 모임" {
		t.Fatalf("SetTitle = (%q, %v)", got, ok)
	}

	// Consecutive spaces revert to the previous value.
	got, ok = l.SetTitle("주말  러닝")
	if ok {
		t.Error("consecutive spaces should be rejected")
	}
	if got != "주말 러닝 모임" {
		t.Errorf("rejected edit returned %q, want previous title", got)
	}
	if l.Title != "주말 러닝 모임" {
		t.Errorf("title mutated to %q on rejected edit", l.Title)
	}

	// Over-long input truncates at the grapheme limit.
	long := strings.Repeat("가", MaxTitleLength+10)
	got, ok = l.SetTitle(long)
	if !ok {
		t.Fatal("long title should be accepted after truncation")
	}
	if n := session.GraphemeLength(got); n != MaxTitleLength {
		t.Errorf("truncated length = %d, want %d", n, MaxTitleLength)
	}
}

func TestListingValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Listing)
		wantErr error
	}{
		{name: "valid", mutate: func(*Listing) {}, wantErr: nil},
		{name: "empty title", mutate: func(l *Listing) { l.Title = "" }, wantErr: ErrTitleEmpty},
		{name: "short title", mutate: func(l *Listing) { l.Title = "짧은제목" }, wantErr: ErrTitleTooShort},
		{name: "no category", mutate: func(l *Listing) { l.Categories = nil }, wantErr: ErrNoCategory},
		{name: "unknown category", mutate: func(l *Listing) { l.Categories = []string{"x"} }, wantErr: ErrUnknownCategory},
		{name: "no activity type", mutate: func(l *Listing) { l.ActivityType = ActivityNone }, wantErr: ErrNoActivityType},
		{name: "no cover", mutate: func(l *Listing) { _ = l.Images.Clear(-1) }, wantErr: ErrNoCoverImage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := validListing()
			tt.mutate(l)
			err := l.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestReadyToSubmit(t *testing.T) {
	l := validListing()

	incomplete := session.NewList()
	if l.ReadyToSubmit(incomplete) {
		t.Error("incomplete sessions should block submission")
	}

	s := incomplete.At(0)
	s.Date = "2025-06-10"
	s.Content = "주말 아침 한강 러닝 모임입니다"
	if !l.ReadyToSubmit(incomplete) {
		t.Error("complete form should be submittable")
	}

	l.Title = "짧음"
	if l.ReadyToSubmit(incomplete) {
		t.Error("short title should block submission")
	}
}

func TestReset(t *testing.T) {
	l := validListing()
	l.Reset()
	if l.Title != "" || len(l.Categories) != 0 || l.ActivityType != ActivityNone || l.Images.HasCover() {
		t.Errorf("Reset left state behind: %+v", l)
	}
}
