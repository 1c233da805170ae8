// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/moimlab/moim/internal/config"
	"github.com/moimlab/moim/internal/listing"
	"github.com/moimlab/moim/internal/llm"
	"github.com/moimlab/moim/internal/suggest"
)

// DraftSavedMsg is sent when the draft is persisted.
type DraftSavedMsg struct {
	ID int64
}

// DraftLoadedMsg is sent when a draft is loaded from the repository.
type DraftLoadedMsg struct {
	Draft *listing.Draft
}

// SubmittedMsg is sent when a validated draft has been submitted.
type SubmittedMsg struct {
	ID int64
}

// SuggestResultMsg is sent when the LLM suggestion completes.
type SuggestResultMsg struct {
	Card int
	Text string
}

// ImageAttachedMsg is sent when an image file check completes.
// Slot is -1 for the cover, otherwise the extra slot index.
type ImageAttachedMsg struct {
	Slot  int
	Seq   int
	Image listing.Image
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// SaveDraft persists the draft.
func SaveDraft(repo listing.Repository, draft *listing.Draft) tea.Cmd {
	return func() tea.Msg {
		if err := repo.SaveDraft(context.Background(), draft); err != nil {
			return ErrMsg{Err: fmt.Errorf("saving draft: %w", err)}
		}
		return DraftSavedMsg{ID: draft.ID}
	}
}

// LoadDraft fetches a stored draft by id.
func LoadDraft(repo listing.Repository, id int64) tea.Cmd {
	return func() tea.Msg {
		draft, err := repo.GetDraft(context.Background(), id)
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("loading draft: %w", err)}
		}
		return DraftLoadedMsg{Draft: draft}
	}
}

// Submit validates and persists the draft as final.
func Submit(repo listing.Repository, draft *listing.Draft) tea.Cmd {
	return func() tea.Msg {
		if err := repo.SaveDraft(context.Background(), draft); err != nil {
			return ErrMsg{Err: fmt.Errorf("submitting: %w", err)}
		}
		return SubmittedMsg{ID: draft.ID}
	}
}

// Suggest asks the configured LLM for a description draft.
func Suggest(cfg *config.Config, card int, req suggest.Request) tea.Cmd {
	return func() tea.Msg {
		client, err := llm.NewClient(cfg.LLM.Provider, cfg.LLM.Model, cfg.LLM.BaseURL)
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("creating LLM client: %w", err)}
		}

		text, err := suggest.NewSuggester(client).Suggest(context.Background(), req)
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("suggesting description: %w", err)}
		}

		return SuggestResultMsg{Card: card, Text: text}
	}
}

// AttachImage stats and checks an image file off the UI loop, then
// reports the result for the slot that requested it. The sequence number
// lets the slot set discard results that a newer pick supersedes.
func AttachImage(slot, seq int, path string) tea.Cmd {
	return func() tea.Msg {
		info, err := os.Stat(path)
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("reading image: %w", err)}
		}
		if err := listing.CheckImage(path, info.Size()); err != nil {
			return ErrMsg{Err: err}
		}
		return ImageAttachedMsg{
			Slot:  slot,
			Seq:   seq,
			Image: listing.Image{Path: path, Size: info.Size()},
		}
	}
}
