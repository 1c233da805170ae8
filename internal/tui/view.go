package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/moimlab/moim/internal/listing"
	"github.com/moimlab/moim/internal/session"
)

var weekdayLabels = []string{"일", "월", "화", "수", "목", "금", "토"}

// View renders the form.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.TitleStyle.Render("moim — 모임 만들기"))
	b.WriteString("\n")
	b.WriteString(m.renderStepTabs())
	b.WriteString("\n\n")

	switch m.step {
	case StepBasics:
		b.WriteString(m.renderBasics())
	case StepPhotos:
		b.WriteString(m.renderPhotos())
	case StepSessions:
		b.WriteString(m.renderSessions())
	default:
		b.WriteString(m.renderReview())
	}

	b.WriteString("\n\n")
	b.WriteString(m.renderFooter())

	base := b.String()

	if m.mode == ModeCalendar && m.cardCursor < len(m.cards) {
		if cal := m.cards[m.cardCursor].calendar; cal != nil && cal.IsOpen() {
			popup := m.renderCalendar(cal)
			// Anchor roughly under the focused card's date field.
			top := 4 + m.cardCursor*3
			return ComposePopup(base, popup, m.width, m.height, top, 8)
		}
	}

	return base
}

// renderStepTabs draws the four-step progress strip.
func (m *Model) renderStepTabs() string {
	labels := []string{"① 기본 정보", "② 사진", "③ 일정", "④ 확인"}
	parts := make([]string, 0, len(labels))
	for i, label := range labels {
		style := m.styles.StepStyle
		switch {
		case Step(i) == m.step:
			style = m.styles.StepActive
		case Step(i) < m.step:
			style = m.styles.StepDone
		}
		parts = append(parts, style.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// renderBasics draws the title, category chips, and activity selector.
func (m *Model) renderBasics() string {
	var b strings.Builder

	b.WriteString(m.fieldLabel("제목", m.basicFocus == 0))
	b.WriteString("\n")
	b.WriteString(m.title.View())
	count := session.GraphemeLength(m.lst.Title)
	b.WriteString(m.styles.CounterStyle.Render(fmt.Sprintf("  %d/%d", count, listing.MaxTitleLength)))
	if m.lst.Title != "" && !m.lst.TitleOK() {
		b.WriteString(m.styles.ErrorStyle.Render(fmt.Sprintf("  %d자 이상 입력해 주세요", listing.MinTitleLength)))
	}
	b.WriteString("\n\n")

	b.WriteString(m.fieldLabel(fmt.Sprintf("카테고리 (최대 %d개)", listing.MaxCategories), m.basicFocus == 1))
	b.WriteString("\n")
	chips := make([]string, 0, len(listing.Categories))
	for i, name := range listing.Categories {
		style := m.styles.ChipStyle
		if m.lst.HasCategory(name) {
			style = m.styles.ChipSelectedStyle
		}
		if m.basicFocus == 1 && i == m.catCursor {
			style = style.Underline(true)
		}
		chips = append(chips, style.Render(name))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, chips...))
	b.WriteString("\n\n")

	b.WriteString(m.fieldLabel("진행 방식", m.basicFocus == 2))
	b.WriteString("\n")
	for _, at := range []listing.ActivityType{listing.ActivityOnline, listing.ActivityOffline} {
		style := m.styles.ChipStyle
		if m.lst.ActivityType == at {
			style = m.styles.ChipSelectedStyle
		}
		b.WriteString(style.Render(at.Label()))
	}

	return b.String()
}

// renderPhotos draws the cover slot and the extra slots.
func (m *Model) renderPhotos() string {
	var b strings.Builder
	b.WriteString(m.fieldLabel("사진 (대표 1장 + 추가 4장, 장당 15MB 이하)", true))
	b.WriteString("\n")

	slots := make([]string, 0, listing.ExtraImageSlots+1)
	for i := 0; i <= listing.ExtraImageSlots; i++ {
		label := "대표"
		var img *listing.Image
		if i == 0 {
			img = m.lst.Images.Cover()
		} else {
			label = fmt.Sprintf("추가 %d", i)
			img = m.lst.Images.Extra(i - 1)
		}

		text := label + "\n비어 있음"
		style := m.styles.SlotStyle
		if img != nil {
			text = label + "\n" + truncatePath(img.Path, 10)
			style = m.styles.SlotFilledStyle
		}
		if i == m.slotCursor {
			style = m.styles.SlotCursorStyle
		}
		slots = append(slots, style.Render(text))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, slots...))

	if m.mode == ModePrompt {
		b.WriteString("\n\n")
		b.WriteString(m.pathPrompt.View())
		b.WriteString("\n")
		b.WriteString(m.styles.HintStyle.Render("tab 자동완성 · enter 추가 · esc 취소"))
	}

	return b.String()
}

// renderSessions draws every session card, the focused one expanded.
func (m *Model) renderSessions() string {
	parts := make([]string, 0, len(m.cards))
	for i, card := range m.cards {
		style := m.styles.CardStyle
		if i == m.cardCursor {
			style = m.styles.CardFocusedStyle
		}
		parts = append(parts, style.Render(m.renderCard(i, card, i == m.cardCursor)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderCard draws one session card.
func (m *Model) renderCard(i int, card *sessionCard, focused bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "세션 %d\n", i+1)

	date := card.dateField.Value()
	if date == "" {
		date = card.dateField.Placeholder
	}
	dateStyle := m.styles.FieldStyle
	if focused && card.field == fieldDate {
		dateStyle = m.styles.FieldFocusedStyle
	}
	b.WriteString(dateStyle.Render(date))
	b.WriteString("  ")

	b.WriteString(m.periodChip(string(card.sess.StartPeriod), focused && card.field == fieldStartPeriod))
	b.WriteString(m.timeBox(&card.startHour, focused && card.field == fieldStartHour))
	b.WriteString(":")
	b.WriteString(m.timeBox(&card.startMin, focused && card.field == fieldStartMinute))
	b.WriteString(" ~ ")
	b.WriteString(m.periodChip(string(card.sess.EndPeriod), focused && card.field == fieldEndPeriod))
	b.WriteString(m.timeBox(&card.endHour, focused && card.field == fieldEndHour))
	b.WriteString(":")
	b.WriteString(m.timeBox(&card.endMin, focused && card.field == fieldEndMinute))
	b.WriteString("\n")

	if focused {
		b.WriteString(card.content.View())
		count := session.GraphemeLength(card.sess.Content)
		b.WriteString("\n")
		b.WriteString(m.styles.CounterStyle.Render(fmt.Sprintf("%d/%d", count, session.MaxContentLength)))
	} else {
		preview := card.sess.Content
		if preview == "" {
			preview = "소개 없음"
		}
		b.WriteString(m.styles.HintStyle.Render(session.TruncateGraphemes(strings.ReplaceAll(preview, "\n", " "), 40)))
	}

	return b.String()
}

func (m *Model) periodChip(label string, focused bool) string {
	style := m.styles.ChipStyle
	if focused {
		style = m.styles.ChipCursorStyle
	}
	return style.Render(label)
}

func (m *Model) timeBox(field *textinput.Model, focused bool) string {
	if focused {
		return m.styles.FieldFocusedStyle.Render(field.View())
	}
	v := field.Value()
	if v == "" {
		v = "--"
	}
	if len(v) == 1 {
		v = "0" + v
	}
	return m.styles.FieldStyle.Render(v)
}

// renderCalendar draws the popup for an open calendar.
func (m *Model) renderCalendar(cal *Calendar) string {
	var b strings.Builder

	b.WriteString(m.styles.CalHeaderStyle.Render("◀ " + cal.HeaderLabel() + " ▶"))
	b.WriteString("\n")

	for _, label := range weekdayLabels {
		b.WriteString(m.styles.CalWeekdayStyle.Render(" " + label + " "))
	}
	b.WriteString("\n")

	cells := cal.Cells()
	for i, cell := range cells {
		b.WriteString(m.renderCell(cell, i == cal.Cursor()))
		if (i+1)%7 == 0 && i+1 < len(cells) {
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(m.styles.HintStyle.Render("[/] 월 이동 · enter 선택/확인 · esc 닫기"))

	return m.styles.PopupStyle.Render(b.String())
}

// renderCell styles one grid cell. Disabled wins over today.
func (m *Model) renderCell(cell Cell, cursor bool) string {
	text := fmt.Sprintf(" %2d ", cell.Day)

	style := m.styles.CalDayStyle
	switch {
	case cell.Kind != CellDay:
		style = m.styles.CalPadStyle
	case cell.Selected:
		style = m.styles.CalSelectedStyle
	case cell.Disabled:
		style = m.styles.CalDisabledStyle
	case cell.Today:
		style = m.styles.CalTodayStyle
	}
	if cursor {
		style = m.styles.CalCursorStyle
		if cell.Selected {
			style = style.Underline(true)
		}
	}
	return style.Render(text)
}

// renderReview draws the submit checklist.
func (m *Model) renderReview() string {
	var b strings.Builder
	b.WriteString(m.fieldLabel("확인 후 enter 로 등록", true))
	b.WriteString("\n\n")

	checks := []struct {
		label string
		err   error
	}{
		{"기본 정보", m.lst.Validate()},
		{"일정", sessionsErr(m.sessions)},
	}
	for _, c := range checks {
		if c.err == nil {
			b.WriteString(m.styles.StepDone.Render("✓ " + c.label))
		} else {
			b.WriteString(m.styles.ErrorStyle.Render("✗ " + c.label + ": " + reviewMessage(c.err)))
		}
		b.WriteString("\n")
	}

	if m.lst.ReadyToSubmit(m.sessions) {
		b.WriteString("\n")
		b.WriteString(m.styles.StepDone.Render("등록할 준비가 됐어요"))
	}

	return b.String()
}

func sessionsErr(l *session.List) error {
	_, err := l.Validate()
	return err
}

func (m *Model) fieldLabel(text string, focused bool) string {
	if focused {
		return m.styles.LabelFocusedStyle.Render(text)
	}
	return m.styles.LabelStyle.Render(text)
}

// renderFooter draws key hints plus the transient status line.
func (m *Model) renderFooter() string {
	hints := "ctrl+n/p 단계 이동 · tab 입력 이동 · ctrl+s 임시 저장 · ctrl+c 종료"
	if m.step == StepSessions {
		hints = "tab 입력 이동 · ctrl+a 세션 추가 · ctrl+d 삭제 · p 빠른 날짜 · ctrl+g 소개글 제안"
	}

	footer := m.styles.FooterStyle.Render(hints)
	if m.statusMsg != "" && m.now().Before(m.statusTime) {
		footer += "\n" + m.styles.StatusStyle.Render(m.statusMsg)
	}
	return footer
}

// reviewMessage maps validation sentinels to user-facing text.
func reviewMessage(err error) string {
	switch {
	case errors.Is(err, listing.ErrTitleEmpty):
		return "제목을 입력해 주세요"
	case errors.Is(err, listing.ErrTitleTooShort):
		return fmt.Sprintf("제목은 %d자 이상이어야 해요", listing.MinTitleLength)
	case errors.Is(err, listing.ErrNoCategory):
		return "카테고리를 선택해 주세요"
	case errors.Is(err, listing.ErrNoActivityType):
		return "진행 방식을 선택해 주세요"
	case errors.Is(err, listing.ErrNoCoverImage):
		return "대표 사진을 추가해 주세요"
	case errors.Is(err, session.ErrDateNotSet):
		return "날짜를 선택해 주세요"
	case errors.Is(err, session.ErrEndNotAfterStart):
		return "종료 시간은 시작 시간보다 늦어야 해요"
	case errors.Is(err, session.ErrContentEmpty):
		return "세션 소개를 입력해 주세요"
	case errors.Is(err, session.ErrContentTooShort):
		return fmt.Sprintf("세션 소개는 %d자 이상이어야 해요", session.MinContentLength)
	default:
		return err.Error()
	}
}

// truncatePath keeps the tail of a path for slot labels.
func truncatePath(path string, max int) string {
	if len(path) <= max {
		return path
	}
	return "…" + path[len(path)-max:]
}
