package ui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/moimlab/moim/internal/export"
)

func (a *App) exportCmd() *cobra.Command {
	var copyToClipboard bool

	cmd := &cobra.Command{
		Use:   "export <id>",
		Short: "Render a draft as shareable text",
		Long: `Render a stored draft as plain text, ready to paste into a
listing page or a chat message. Sessions appear in date order with
their 12-hour time ranges.`,
		Example: `  moim export 3
  moim export 3 --copy`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid draft id %q", args[0])
			}
			if err := a.ensureRepo(); err != nil {
				return err
			}

			d, err := a.repo.GetDraft(context.Background(), id)
			if err != nil {
				return fmt.Errorf("loading draft %d: %w", id, err)
			}

			text := export.Render(d)
			if copyToClipboard {
				if err := clipboard.WriteAll(text); err != nil {
					return fmt.Errorf("copying to clipboard: %w", err)
				}
				fmt.Println(formatSuccess("Copied to clipboard."))
				return nil
			}

			fmt.Print(text)
			return nil
		},
	}

	cmd.Flags().BoolVar(&copyToClipboard, "copy", false, "Copy the rendered text to the clipboard")
	return cmd
}
