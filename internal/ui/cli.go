// Package ui implements the command line surface around the listing form.
package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moimlab/moim/internal/config"
	"github.com/moimlab/moim/internal/draft"
	"github.com/moimlab/moim/internal/listing"
	"github.com/moimlab/moim/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	repo   listing.Repository
	config *config.Config
	root   *cobra.Command
	debug  bool // Enable debug logging
}

// NewApp creates a new CLI application with the given repository and config.
// A nil repository is opened lazily from the configured database path.
func NewApp(repo listing.Repository, cfg *config.Config) *App {
	a := &App{repo: repo, config: cfg}

	a.root = &cobra.Command{
		Use:   "moim",
		Short: "A TUI for composing gathering listings",
		Long: `Moim is a terminal tool for composing gathering listings.

It walks you through title, categories, photos and session schedule,
keeps session dates and times consistent while you type, and stores
work-in-progress drafts locally.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}
			return a.runForm(nil)
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to temp file)")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.draftsCmd())
	a.root.AddCommand(a.resumeCmd())
	a.root.AddCommand(a.exportCmd())
	a.root.AddCommand(a.themesCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("moim %s (commit: %s)\n", Version, Commit)
		},
	}
}

// ensureRepo opens the draft store on first use.
func (a *App) ensureRepo() error {
	if a.repo != nil {
		return nil
	}
	repo, err := draft.New(a.config.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("opening draft store: %w", err)
	}
	a.repo = repo
	return nil
}

// runForm opens the TUI, optionally seeded with a stored draft.
func (a *App) runForm(d *listing.Draft) error {
	var opts []tui.ModelOption
	if d != nil {
		opts = append(opts, tui.WithDraft(d))
	}
	return tui.RunWithDebug(a.repo, a.config, a.debug, opts...)
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the draft store, if one was opened.
func (a *App) Close() error {
	if a.repo == nil {
		return nil
	}
	return a.repo.Close()
}
