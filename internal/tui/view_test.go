package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

// Styled output is compared after stripping escape codes, so the
// assertions hold under any color profile. The profile is still pinned
// to keep lipgloss from degrading styles in CI.
func init() {
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func plain(s string) string {
	return ansi.Strip(s)
}

func TestViewShowsStepTabs(t *testing.T) {
	m := testModel(t)
	m.width = 80
	m.height = 30

	out := plain(m.View())
	for _, want := range []string{"기본 정보", "사진", "일정", "확인"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing step tab %q", want)
		}
	}
}

func TestRenderCalendarHeaderAndWeekdays(t *testing.T) {
	m := testModel(t)
	m.openCalendar(0)

	out := plain(m.renderCalendar(m.cards[0].calendar))
	if !strings.Contains(out, "2026년 4월") {
		t.Error("calendar header missing")
	}
	for _, label := range weekdayLabels {
		if !strings.Contains(out, label) {
			t.Errorf("weekday %q missing", label)
		}
	}
}

func TestViewComposesCalendarPopup(t *testing.T) {
	m := testModel(t)
	m.width = 100
	m.height = 40
	m.step = StepSessions
	m.openCalendar(0)

	out := plain(m.View())
	if !strings.Contains(out, "2026년 4월") {
		t.Error("calendar popup not composed over the base view")
	}
}

func TestRenderCardShowsTimesAndContent(t *testing.T) {
	m := testModel(t)
	sess := m.cards[0].sess
	sess.Date = "2026-04-18"
	sess.Content = "정기 모임 안내입니다"
	m.cards[0].dateField.SetValue("2026년 4월 18일")
	m.cards[0].content.SetValue(sess.Content)

	out := plain(m.renderCard(0, m.cards[0], true))
	for _, want := range []string{"2026년 4월 18일", "오전", "10", "11", "정기 모임 안내입니다"} {
		if !strings.Contains(out, want) {
			t.Errorf("card missing %q in:\n%s", want, out)
		}
	}
}

func TestRenderReviewReflectsValidation(t *testing.T) {
	m := testModel(t)

	out := plain(m.renderReview())
	if !strings.Contains(out, "✗") {
		t.Error("empty form should show failing checks")
	}

	m.lst.Title = "주말 러닝 크루 모집"
	if err := m.lst.ToggleCategory("건강/운동"); err != nil {
		t.Fatal(err)
	}
	m.lst.ActivityType = "offline"
	sess := m.sessions.At(0)
	sess.Date = "2026-04-18"
	sess.Content = "한강에서 가볍게 뛰어요"

	out = plain(m.renderReview())
	if !strings.Contains(out, "✓") {
		t.Error("complete form should show passing checks")
	}
}

func TestRenderFooterShowsTransientStatus(t *testing.T) {
	clock := fixedNow(2026, time.April, 1)
	m := testModel(t)
	m.now = clock

	m.setStatus("임시 저장했어요")
	out := plain(m.renderFooter())
	if !strings.Contains(out, "임시 저장했어요") {
		t.Error("status message missing from footer")
	}
}

func TestTruncatePath(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{name: "short path unchanged", in: "a/b.jpg", max: 20, want: "a/b.jpg"},
		{name: "long path keeps tail", in: "/very/long/path/to/photo.jpg", max: 12, want: "…to/photo.jpg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncatePath(tt.in, tt.max); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
