package draft

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/moimlab/moim/internal/listing"
	"github.com/moimlab/moim/internal/session"
)

func testRepo(t *testing.T) *SQLite {
	t.Helper()
	repo, err := New(filepath.Join(t.TempDir(), "moim.db"))
	if err != nil {
		t.Fatalf("creating repo: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func testDraft() *listing.Draft {
	l := listing.New()
	l.Title = "주말 아침 한강 러닝 모임"
	l.Categories = []string{"건강/운동", "동기부여/성장"}
	l.ActivityType = listing.ActivityOffline
	_ = l.Images.Commit(-1, l.Images.Begin(), listing.Image{Path: "cover.jpg", Size: 2048})
	_ = l.Images.Commit(1, l.Images.Begin(), listing.Image{Path: "extra.png", Size: 512})

	s1 := session.NewSession()
	s1.Date = "2025-06-10"
	s1.Content = "첫 회차 오리엔테이션과 가벼운 러닝"

	s2 := session.NewSession()
	s2.Date = "2025-06-17"
	s2.StartPeriod = session.PeriodPM
	s2.StartHour = "2"
	s2.StartMinute = "30"
	s2.EndPeriod = session.PeriodPM
	s2.EndHour = "3"
	s2.EndMinute = "30"
	s2.Content = "두번째 회차 인터벌 트레이닝"

	return &listing.Draft{Listing: *l, Sessions: []*session.Session{s1, s2}}
}

func TestSaveAndGetDraft(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	d := testDraft()
	if err := repo.SaveDraft(ctx, d); err != nil {
		t.Fatalf("SaveDraft: %v", err)
	}
	if d.ID == 0 {
		t.Fatal("SaveDraft did not assign an id")
	}

	got, err := repo.GetDraft(ctx, d.ID)
	if err != nil {
		t.Fatalf("GetDraft: %v", err)
	}

	if got.Listing.Title != d.Listing.Title {
		t.Errorf("title = %q, want %q", got.Listing.Title, d.Listing.Title)
	}
	if len(got.Listing.Categories) != 2 || got.Listing.Categories[0] != "건강/운동" {
		t.Errorf("categories = %v", got.Listing.Categories)
	}
	if got.Listing.ActivityType != listing.ActivityOffline {
		t.Errorf("activity type = %q", got.Listing.ActivityType)
	}
	if !got.Listing.Images.HasCover() || got.Listing.Images.Cover().Path != "cover.jpg" {
		t.Error("cover image not restored")
	}
	if img := got.Listing.Images.Extra(1); img == nil || img.Path != "extra.png" {
		t.Error("extra image not restored in its slot")
	}

	if len(got.Sessions) != 2 {
		t.Fatalf("sessions = %d, want 2", len(got.Sessions))
	}
	if got.Sessions[0].Date != "2025-06-10" || got.Sessions[1].Date != "2025-06-17" {
		t.Errorf("session dates = %q, %q", got.Sessions[0].Date, got.Sessions[1].Date)
	}
	if got.Sessions[1].StartPeriod != session.PeriodPM || got.Sessions[1].StartHour != "2" {
		t.Errorf("session 2 start = %s %s", got.Sessions[1].StartPeriod, got.Sessions[1].StartHour)
	}
	if got.Sessions[1].Content != "두번째 회차 인터벌 트레이닝" {
		t.Errorf("session 2 content = %q", got.Sessions[1].Content)
	}
}

func TestSaveDraftUpdate(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	d := testDraft()
	if err := repo.SaveDraft(ctx, d); err != nil {
		t.Fatalf("SaveDraft: %v", err)
	}
	id := d.ID

	d.Listing.Title = "평일 저녁 러닝 모임으로 변경"
	d.Sessions = d.Sessions[:1]
	if err := repo.SaveDraft(ctx, d); err != nil {
		t.Fatalf("SaveDraft update: %v", err)
	}
	if d.ID != id {
		t.Errorf("update changed id from %d to %d", id, d.ID)
	}

	got, err := repo.GetDraft(ctx, id)
	if err != nil {
		t.Fatalf("GetDraft: %v", err)
	}
	if got.Listing.Title != d.Listing.Title {
		t.Errorf("title = %q, want updated title", got.Listing.Title)
	}
	if len(got.Sessions) != 1 {
		t.Errorf("sessions = %d, want 1 after update", len(got.Sessions))
	}
}

func TestGetDraftNotFound(t *testing.T) {
	repo := testRepo(t)
	if _, err := repo.GetDraft(context.Background(), 999); !errors.Is(err, listing.ErrDraftNotFound) {
		t.Errorf("GetDraft(999) error = %v, want ErrDraftNotFound", err)
	}
}

func TestListDrafts(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	first := testDraft()
	if err := repo.SaveDraft(ctx, first); err != nil {
		t.Fatalf("SaveDraft: %v", err)
	}
	second := testDraft()
	second.Listing.Title = "두번째 모임 초안입니다"
	if err := repo.SaveDraft(ctx, second); err != nil {
		t.Fatalf("SaveDraft: %v", err)
	}

	drafts, err := repo.ListDrafts(ctx)
	if err != nil {
		t.Fatalf("ListDrafts: %v", err)
	}
	if len(drafts) != 2 {
		t.Fatalf("ListDrafts = %d drafts, want 2", len(drafts))
	}
	// Sessions are not loaded by ListDrafts.
	if len(drafts[0].Sessions) != 0 {
		t.Error("ListDrafts should not load sessions")
	}
}

func TestDeleteDraft(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	d := testDraft()
	if err := repo.SaveDraft(ctx, d); err != nil {
		t.Fatalf("SaveDraft: %v", err)
	}
	if err := repo.DeleteDraft(ctx, d.ID); err != nil {
		t.Fatalf("DeleteDraft: %v", err)
	}
	if _, err := repo.GetDraft(ctx, d.ID); !errors.Is(err, listing.ErrDraftNotFound) {
		t.Errorf("GetDraft after delete error = %v, want ErrDraftNotFound", err)
	}
	if err := repo.DeleteDraft(ctx, d.ID); !errors.Is(err, listing.ErrDraftNotFound) {
		t.Errorf("second DeleteDraft error = %v, want ErrDraftNotFound", err)
	}
}
