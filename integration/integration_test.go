package integration

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/moimlab/moim/internal/draft"
	"github.com/moimlab/moim/internal/export"
	"github.com/moimlab/moim/internal/listing"
	"github.com/moimlab/moim/internal/session"
)

// openRepo creates a fresh repository for each test with automatic cleanup.
func openRepo(t *testing.T) *draft.SQLite {
	t.Helper()
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")
	repo, err := draft.New(dbPath)
	if err != nil {
		t.Fatalf("failed to open repo: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

// sampleDraft builds a two-session draft the way the form would.
func sampleDraft(t *testing.T) *listing.Draft {
	t.Helper()
	first := session.NewSession()
	first.Date = "2026-06-13"
	first.Content = "오리엔테이션과 자기소개를 합니다"

	second := session.NewSession()
	second.Date = "2026-06-20"
	second.SetStart(session.Clock12{Period: session.PeriodPM, Hour: 2, Minute: "00"})
	second.SetEnd(session.Clock12{Period: session.PeriodPM, Hour: 4, Minute: "30"})
	second.Content = "첫 번째 챕터를 같이 읽어요"

	lst := listing.Listing{
		Title:        "주말 독서 모임",
		Categories:   []string{"글쓰기/독서", "취미힐링"},
		ActivityType: listing.ActivityOffline,
	}

	return &listing.Draft{
		Listing:  lst,
		Sessions: []*session.Session{first, second},
	}
}

func TestSaveAndReloadDraft(t *testing.T) {
	repo := openRepo(t)
	ctx := context.Background()

	d := sampleDraft(t)
	if err := repo.SaveDraft(ctx, d); err != nil {
		t.Fatalf("failed to save draft: %v", err)
	}
	if d.ID == 0 {
		t.Fatal("expected draft ID to be set after insert")
	}

	got, err := repo.GetDraft(ctx, d.ID)
	if err != nil {
		t.Fatalf("failed to get draft: %v", err)
	}
	if got.Listing.Title != "주말 독서 모임" {
		t.Errorf("Title: got %q", got.Listing.Title)
	}
	if len(got.Listing.Categories) != 2 {
		t.Errorf("Categories: got %v", got.Listing.Categories)
	}
	if got.Listing.ActivityType != listing.ActivityOffline {
		t.Errorf("ActivityType: got %q", got.Listing.ActivityType)
	}
	if len(got.Sessions) != 2 {
		t.Fatalf("Sessions: got %d, want 2", len(got.Sessions))
	}
	if got.Sessions[0].Date != "2026-06-13" {
		t.Errorf("first session date: got %q", got.Sessions[0].Date)
	}
	if got.Sessions[1].StartPeriod != session.PeriodPM || got.Sessions[1].StartHour != "2" {
		t.Errorf("second session start: got %s %s:%s",
			got.Sessions[1].StartPeriod, got.Sessions[1].StartHour, got.Sessions[1].StartMinute)
	}
}

func TestResaveReplacesSessions(t *testing.T) {
	repo := openRepo(t)
	ctx := context.Background()

	d := sampleDraft(t)
	if err := repo.SaveDraft(ctx, d); err != nil {
		t.Fatalf("save: %v", err)
	}

	// Drop a session and save again under the same id.
	d.Sessions = d.Sessions[:1]
	d.Listing.Title = "주말 독서 모임 2기"
	if err := repo.SaveDraft(ctx, d); err != nil {
		t.Fatalf("resave: %v", err)
	}

	got, err := repo.GetDraft(ctx, d.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Listing.Title != "주말 독서 모임 2기" {
		t.Errorf("Title: got %q", got.Listing.Title)
	}
	if len(got.Sessions) != 1 {
		t.Errorf("Sessions: got %d, want 1", len(got.Sessions))
	}
}

func TestListDraftsNewestFirst(t *testing.T) {
	repo := openRepo(t)
	ctx := context.Background()

	first := sampleDraft(t)
	if err := repo.SaveDraft(ctx, first); err != nil {
		t.Fatalf("save first: %v", err)
	}
	second := sampleDraft(t)
	second.Listing.Title = "새 모임"
	if err := repo.SaveDraft(ctx, second); err != nil {
		t.Fatalf("save second: %v", err)
	}

	drafts, err := repo.ListDrafts(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(drafts) != 2 {
		t.Fatalf("got %d drafts, want 2", len(drafts))
	}
	if drafts[0].ID != second.ID {
		t.Errorf("newest draft first: got id %d, want %d", drafts[0].ID, second.ID)
	}
}

func TestDeleteDraft(t *testing.T) {
	repo := openRepo(t)
	ctx := context.Background()

	d := sampleDraft(t)
	if err := repo.SaveDraft(ctx, d); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.DeleteDraft(ctx, d.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := repo.GetDraft(ctx, d.ID); !errors.Is(err, listing.ErrDraftNotFound) {
		t.Errorf("get after delete: %v, want ErrDraftNotFound", err)
	}
	if err := repo.DeleteDraft(ctx, d.ID); !errors.Is(err, listing.ErrDraftNotFound) {
		t.Errorf("double delete: %v, want ErrDraftNotFound", err)
	}
}

func TestExportRoundTrip(t *testing.T) {
	repo := openRepo(t)
	ctx := context.Background()

	d := sampleDraft(t)
	if err := repo.SaveDraft(ctx, d); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := repo.GetDraft(ctx, d.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	text := export.Render(got)
	for _, want := range []string{
		"주말 독서 모임",
		"2026년 6월 13일",
		"오후 2:00 ~ 오후 4:30",
		"오프라인",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("export missing %q in:\n%s", want, text)
		}
	}
}
