package tui

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/moimlab/moim/internal/listing"
	"github.com/moimlab/moim/internal/session"
	"github.com/moimlab/moim/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case DebounceMsg:
		return m.handleDebounce(msg)

	case commands.DraftSavedMsg:
		m.draftID = msg.ID
		m.setStatus("임시 저장했어요")
		return m, m.clearStatusLater()

	case commands.DraftLoadedMsg:
		m.loadDraft(msg.Draft)
		m.setStatus("저장된 모임을 불러왔어요")
		return m, m.clearStatusLater()

	case commands.SubmittedMsg:
		// The form resets for the next listing, like the original page.
		m.lst.Reset()
		m.title.SetValue("")
		m.sessions = session.NewList()
		m.rebuildCards()
		m.draftID = 0
		m.gotoStep(StepBasics)
		m.setStatus("모임을 등록했어요")
		return m, m.clearStatusLater()

	case commands.SuggestResultMsg:
		if msg.Card >= 0 && msg.Card < len(m.cards) {
			card := m.cards[msg.Card]
			card.sess.Content = msg.Text
			card.content.SetValue(msg.Text)
			m.setStatus("소개글 초안을 채웠어요")
		}
		return m, m.clearStatusLater()

	case commands.ImageAttachedMsg:
		if err := m.lst.Images.Commit(msg.Slot, msg.Seq, msg.Image); err != nil {
			if !errors.Is(err, listing.ErrStaleImage) {
				m.err = err
			}
			return m, nil
		}
		m.setStatus("사진을 추가했어요")
		return m, m.clearStatusLater()

	case commands.ErrMsg:
		m.err = msg.Err
		m.setStatus(fmt.Sprintf("오류: %v", msg.Err))
		LogError("command", msg.Err)
		return m, m.clearStatusLater()

	case commands.ClearStatusMsg:
		if m.now().After(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil
	}

	return m, nil
}

// handleDebounce routes a debounce tick to whichever card's reconciler
// owns it. Stale ticks fall through every reconciler and are dropped.
func (m *Model) handleDebounce(msg DebounceMsg) (tea.Model, tea.Cmd) {
	for i, card := range m.cards {
		outcome := card.reconciler.HandleDebounce(msg)
		if outcome == ReconcileNone {
			continue
		}
		LogReconcile(i, outcome, card.sess.StartMinutes(), card.sess.EndMinutes())
		switch outcome {
		case ReconcileFollowed, ReconcileClamped:
			m.syncTimeInputs(card)
		case ReconcileReverted:
			m.syncTimeInputs(card)
			m.setStatus("종료 시간은 시작 시간보다 늦어야 해요")
			return m, m.clearStatusLater()
		}
		return m, nil
	}
	return m, nil
}

// clearStatusLater schedules the transient status message to clear.
func (m *Model) clearStatusLater() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return commands.ClearStatusMsg{}
	})
}
