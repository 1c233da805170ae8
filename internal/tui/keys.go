package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/moimlab/moim/internal/dateutil"
	"github.com/moimlab/moim/internal/listing"
	"github.com/moimlab/moim/internal/session"
	"github.com/moimlab/moim/internal/suggest"
	"github.com/moimlab/moim/internal/tui/commands"
	"github.com/moimlab/moim/internal/tui/input"
)

// handleKeyMsg routes a key press by mode, then by step.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg)

	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeCalendar:
		return m.handleCalendarKeys(msg)
	case ModePrompt:
		return m.handlePromptKeys(msg)
	}

	switch msg.String() {
	case "ctrl+s":
		return m, commands.SaveDraft(m.repo, m.buildDraft())
	case "ctrl+r":
		// Revert to the last saved state of this draft.
		if m.draftID == 0 {
			m.setStatus("저장된 내용이 없어요")
			return m, nil
		}
		return m, commands.LoadDraft(m.repo, m.draftID)
	case "ctrl+pgdown", "ctrl+n":
		m.gotoStep(m.step + 1)
		return m, nil
	case "ctrl+pgup", "ctrl+p":
		m.gotoStep(m.step - 1)
		return m, nil
	}

	switch m.step {
	case StepBasics:
		return m.handleBasicsKeys(msg)
	case StepPhotos:
		return m.handlePhotosKeys(msg)
	case StepSessions:
		return m.handleSessionsKeys(msg)
	default:
		return m.handleReviewKeys(msg)
	}
}

// gotoStep moves between form pages, clamped to the step range.
func (m *Model) gotoStep(s Step) {
	if s < StepBasics {
		s = StepBasics
	}
	if s >= stepCount {
		s = stepCount - 1
	}
	if s == m.step {
		return
	}
	LogStepChange(m.step, s, "nav")
	m.registry.CloseAll()
	m.syncCards()
	m.step = s
	m.title.Blur()
	if s == StepBasics && m.basicFocus == 0 {
		m.title.Focus()
	}
}

// handleCalendarKeys drives the open calendar popup.
func (m *Model) handleCalendarKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	card := m.cards[m.cardCursor]
	cal := card.calendar
	if cal == nil || !cal.IsOpen() {
		m.mode = ModeForm
		return m, nil
	}

	switch msg.String() {
	case "esc":
		cal.Dismiss()
		m.mode = ModeForm
		LogPopup(m.cardCursor, "dismiss")
	case "[":
		cal.PrevMonth()
	case "]":
		cal.NextMonth()
	case "left", "h":
		cal.MoveCursor(-1, 0)
	case "right", "l":
		cal.MoveCursor(1, 0)
	case "up", "k":
		cal.MoveCursor(0, -1)
	case "down", "j":
		cal.MoveCursor(0, 1)
	case " ":
		cal.Select()
	case "enter":
		// Enter picks the cell; on an already-picked cell it confirms.
		if cur := cal.Cursor(); cur >= 0 && cur < len(cal.Cells()) && cal.Cells()[cur].Selected {
			cal.Confirm()
			if !cal.IsOpen() {
				m.mode = ModeForm
				LogPopup(m.cardCursor, "confirm")
			}
		} else {
			cal.Select()
		}
	}
	return m, nil
}

// handlePromptKeys drives the image path prompt.
func (m *Model) handlePromptKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pathPrompt.Blur()
		m.pathPrompt.SetValue("")
		m.promptSlot = -1
		m.mode = ModeForm
		return m, nil
	case "tab":
		if completed, ok := input.CompletePath(m.pathPrompt.Value()); ok {
			m.pathPrompt.SetValue(completed)
			m.pathPrompt.CursorEnd()
		}
		return m, nil
	case "enter":
		path := m.pathPrompt.Value()
		slot := m.promptSlot
		m.pathPrompt.Blur()
		m.pathPrompt.SetValue("")
		m.promptSlot = -1
		m.mode = ModeForm
		if path == "" {
			return m, nil
		}
		seq := m.lst.Images.Begin()
		return m, commands.AttachImage(slot, seq, path)
	}

	var cmd tea.Cmd
	m.pathPrompt, cmd = m.pathPrompt.Update(msg)
	return m, cmd
}

// handleBasicsKeys covers title, category chips, and activity type.
func (m *Model) handleBasicsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		m.basicFocus = (m.basicFocus + 1) % 3
		m.syncTitleFocus()
		return m, nil
	case "shift+tab", "up":
		m.basicFocus = (m.basicFocus + 2) % 3
		m.syncTitleFocus()
		return m, nil
	}

	switch m.basicFocus {
	case 0:
		var cmd tea.Cmd
		m.title, cmd = m.title.Update(msg)
		normalized, ok := m.lst.SetTitle(m.title.Value())
		if !ok {
			m.setStatus("연속 공백은 사용할 수 없어요")
		}
		// Rejected or over-length input snaps the field back.
		if normalized != m.title.Value() {
			m.title.SetValue(normalized)
			m.title.CursorEnd()
		}
		return m, cmd
	case 1:
		switch msg.String() {
		case "left":
			if m.catCursor > 0 {
				m.catCursor--
			}
		case "right":
			if m.catCursor < len(listing.Categories)-1 {
				m.catCursor++
			}
		case "enter", " ":
			name := listing.Categories[m.catCursor]
			if err := m.lst.ToggleCategory(name); err != nil {
				m.setStatus("카테고리는 최대 2개까지 선택할 수 있어요")
			}
		}
	case 2:
		switch msg.String() {
		case "left", "right":
			if m.lst.ActivityType == listing.ActivityOnline {
				m.lst.ActivityType = listing.ActivityOffline
			} else {
				m.lst.ActivityType = listing.ActivityOnline
			}
		case "enter", " ":
			if !m.lst.ActivityType.Valid() {
				m.lst.ActivityType = listing.ActivityOnline
			}
		}
	}
	return m, nil
}

func (m *Model) syncTitleFocus() {
	if m.step == StepBasics && m.basicFocus == 0 {
		m.title.Focus()
	} else {
		m.title.Blur()
	}
}

// handlePhotosKeys covers the cover and extra image slots.
func (m *Model) handlePhotosKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		if m.slotCursor > 0 {
			m.slotCursor--
		}
	case "right", "l":
		if m.slotCursor < listing.ExtraImageSlots {
			m.slotCursor++
		}
	case "enter":
		m.promptSlot = m.slotCursor - 1 // -1 is the cover slot
		m.mode = ModePrompt
		m.pathPrompt.Focus()
		return m, nil
	case "backspace", "delete", "x":
		_ = m.lst.Images.Clear(m.slotCursor - 1)
	}
	return m, nil
}

// handleSessionsKeys covers the session cards.
func (m *Model) handleSessionsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if len(m.cards) == 0 {
		return m, nil
	}
	card := m.cards[m.cardCursor]

	// Any other key drops a pending remove confirmation.
	if msg.String() != "ctrl+d" {
		m.confirmRemove = -1
	}

	switch msg.String() {
	case "ctrl+a":
		if m.cfg.Form.MaxSessions > 0 && m.sessions.Len() >= m.cfg.Form.MaxSessions {
			m.setStatus(fmt.Sprintf("세션은 최대 %d개까지 가능해요", m.cfg.Form.MaxSessions))
			return m, nil
		}
		m.syncCards()
		m.sessions.Add()
		m.cards = append(m.cards, m.newCard(m.sessions.At(m.sessions.Len()-1)))
		m.cardCursor = len(m.cards) - 1
		m.refreshConstraints()
		return m, nil
	case "ctrl+d":
		// Destructive, so the first press only asks.
		if m.confirmRemove != m.cardCursor {
			m.confirmRemove = m.cardCursor
			m.setStatus("한 번 더 누르면 세션이 삭제돼요")
			return m, nil
		}
		m.confirmRemove = -1
		if err := m.removeCard(m.cardCursor); err != nil {
			m.setStatus("세션은 최소 1개 필요해요")
		}
		return m, nil
	case "ctrl+up":
		if m.cardCursor > 0 {
			m.blurCard(card)
			m.cardCursor--
		}
		return m, nil
	case "ctrl+down":
		if m.cardCursor < len(m.cards)-1 {
			m.blurCard(card)
			m.cardCursor++
		}
		return m, nil
	case "ctrl+g":
		return m, m.suggestCmd(m.cardCursor)
	case "tab":
		m.focusCardField(card, (card.field+1)%cardFieldCount)
		return m, nil
	case "shift+tab":
		m.focusCardField(card, (card.field+cardFieldCount-1)%cardFieldCount)
		return m, nil
	}

	return m.handleCardFieldKeys(card, msg)
}

// removeCard drops a session card, destroying its calendar.
func (m *Model) removeCard(i int) error {
	if err := m.sessions.Remove(i); err != nil {
		return err
	}
	if m.cards[i].calendar != nil {
		m.cards[i].calendar.Destroy()
	}
	m.cards = append(m.cards[:i], m.cards[i+1:]...)
	if m.cardCursor >= len(m.cards) {
		m.cardCursor = len(m.cards) - 1
	}
	m.refreshConstraints()
	return nil
}

// blurCard drops focus from every input of a card.
func (m *Model) blurCard(card *sessionCard) {
	card.startHour.Blur()
	card.startMin.Blur()
	card.endHour.Blur()
	card.endMin.Blur()
	card.content.Blur()
}

// focusCardField moves focus within a card, keeping the bubbles inputs'
// focus state in line with the logical field.
func (m *Model) focusCardField(card *sessionCard, f cardField) {
	m.blurCard(card)
	card.field = f
	switch f {
	case fieldStartHour:
		card.startHour.Focus()
	case fieldStartMinute:
		card.startMin.Focus()
	case fieldEndHour:
		card.endHour.Focus()
	case fieldEndMinute:
		card.endMin.Focus()
	case fieldContent:
		card.content.Focus()
	}
}

// handleCardFieldKeys edits the focused field of the focused card.
func (m *Model) handleCardFieldKeys(card *sessionCard, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch card.field {
	case fieldDate:
		switch msg.String() {
		case "enter", " ":
			m.openCalendar(m.cardCursor)
		case "p":
			// Quick-pick the earliest date the session can take.
			if d, ok := session.ProposeDate(m.sessions, m.cardCursor, m.now()); ok {
				card.dateField.SetValue(dateutil.FormatDisplay(d))
				m.confirmDate(m.cardCursor, d)
			} else {
				m.setStatus("선택할 수 있는 날짜가 없어요")
			}
		}
		return m, nil

	case fieldStartPeriod:
		if toggles(msg) {
			card.sess.StartPeriod = card.sess.StartPeriod.Toggle()
			return m, card.reconciler.StartChanged()
		}
		return m, nil

	case fieldEndPeriod:
		if toggles(msg) {
			card.sess.EndPeriod = card.sess.EndPeriod.Toggle()
			return m, card.reconciler.EndChanged()
		}
		return m, nil

	case fieldStartHour:
		return m.updateTimeField(card, &card.startHour, &card.sess.StartHour, 1, 12, msg, card.reconciler.StartChanged)
	case fieldStartMinute:
		return m.updateTimeField(card, &card.startMin, &card.sess.StartMinute, 0, 59, msg, card.reconciler.StartChanged)
	case fieldEndHour:
		return m.updateTimeField(card, &card.endHour, &card.sess.EndHour, 1, 12, msg, card.reconciler.EndChanged)
	case fieldEndMinute:
		return m.updateTimeField(card, &card.endMin, &card.sess.EndMinute, 0, 59, msg, card.reconciler.EndChanged)

	case fieldContent:
		var cmd tea.Cmd
		card.content, cmd = card.content.Update(msg)
		card.sess.Content = card.content.Value()
		return m, cmd
	}
	return m, nil
}

// toggles reports whether a key press flips a period selector.
func toggles(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "enter", " ", "left", "right":
		return true
	}
	return false
}

// updateTimeField feeds a keystroke into an hour or minute input,
// keystroke-filters non-digits, sanitizes the committed value, mirrors it
// into the session, and schedules the debounced reconciliation.
func (m *Model) updateTimeField(card *sessionCard, field *textinput.Model, target *string, min, max int, msg tea.KeyMsg, changed func() tea.Cmd) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyRunes {
		runes := msg.Runes[:0]
		for _, r := range msg.Runes {
			if r >= '0' && r <= '9' {
				runes = append(runes, r)
			}
		}
		if len(runes) == 0 {
			return m, nil
		}
		msg.Runes = runes
	}

	before := field.Value()
	var cmd tea.Cmd
	*field, cmd = field.Update(msg)

	sanitized := session.SanitizeTimeField(field.Value(), min, max)
	field.SetValue(sanitized)
	field.CursorEnd()
	if sanitized == before {
		return m, cmd
	}
	*target = sanitized
	return m, tea.Batch(cmd, changed())
}

// suggestCmd builds the LLM suggestion request for one card.
func (m *Model) suggestCmd(i int) tea.Cmd {
	m.syncCards()
	req := suggest.Request{
		Title:        m.lst.Title,
		Categories:   m.lst.Categories,
		ActivityType: m.lst.ActivityType.Label(),
	}
	for _, card := range m.cards {
		info := suggest.SessionInfo{
			Start: session.FromAbsoluteMinutes(card.sess.StartMinutes()).String(),
			End:   session.FromAbsoluteMinutes(card.sess.EndMinutes()).String(),
		}
		if t, err := dateutil.ParseISO(card.sess.Date); err == nil {
			info.Date = dateutil.FormatDisplay(t)
		}
		req.Sessions = append(req.Sessions, info)
	}
	return commands.Suggest(m.cfg, i, req)
}

// handleReviewKeys covers the final validation page.
func (m *Model) handleReviewKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.syncCards()
		if err := m.lst.Validate(); err != nil {
			m.setStatus(reviewMessage(err))
			return m, nil
		}
		if _, err := m.sessions.Validate(); err != nil {
			m.setStatus(reviewMessage(err))
			return m, nil
		}
		return m, commands.Submit(m.repo, m.buildDraft())
	}
	return m, nil
}
