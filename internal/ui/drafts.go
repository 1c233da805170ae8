package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func (a *App) draftsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drafts",
		Short: "Manage stored drafts",
	}
	cmd.AddCommand(a.draftsListCmd())
	cmd.AddCommand(a.draftsDeleteCmd())
	return cmd
}

func (a *App) draftsListCmd() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored drafts, newest first",
		Example: `  moim drafts list
  moim drafts delete 3`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}
			if err := a.ensureRepo(); err != nil {
				return err
			}

			drafts, err := a.repo.ListDrafts(context.Background())
			if err != nil {
				return fmt.Errorf("listing drafts: %w", err)
			}
			if len(drafts) == 0 {
				fmt.Println("No drafts yet. Run moim to start one.")
				return nil
			}

			width := termWidth()
			for _, d := range drafts {
				title := d.Listing.Title
				if title == "" {
					title = formatWarn("(제목 없음)")
				} else {
					title = formatHeader(title)
				}

				line := fmt.Sprintf("  #%d  %s", d.ID, title)
				if len(d.Listing.Categories) > 0 {
					line += "  " + formatLabel(strings.Join(d.Listing.Categories, ", "))
				}
				stamp := formatMuted(d.UpdatedAt.Format("2006-01-02 15:04"))
				if len(line)+len(stamp)+2 < width {
					line += "  " + stamp
				}
				fmt.Println(line)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}

func (a *App) draftsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a draft and its sessions",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid draft id %q", args[0])
			}
			if err := a.ensureRepo(); err != nil {
				return err
			}
			if err := a.repo.DeleteDraft(context.Background(), id); err != nil {
				return fmt.Errorf("deleting draft %d: %w", id, err)
			}
			fmt.Println(formatSuccess(fmt.Sprintf("Deleted draft #%d", id)))
			return nil
		},
	}
}

func (a *App) resumeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resume <id>",
		Short: "Reopen a stored draft in the form",
		Args:  cobra.ExactArgs(1),
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
			return a.runForm(d)
		},
	}
}
