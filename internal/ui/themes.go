package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moimlab/moim/internal/tui/theme"
)

func (a *App) themesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List available UI themes",
		Run: func(_ *cobra.Command, _ []string) {
			current := a.config.UI.Theme
			for _, name := range theme.Available() {
				if name == current {
					fmt.Printf("  %s %s\n", formatHeader(name), formatMuted("(current)"))
					continue
				}
				fmt.Printf("  %s\n", name)
			}
		},
	}
}
