package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/launchdeck/internal/app"
)

var bookmarkCmd = &cobra.Command{
	Use:   "bookmark",
	Short: "Manage bookmarked launches",
}

var bookmarkToggleCmd = &cobra.Command{
	Use:   "toggle <launch-id>",
	Short: "Bookmark a launch, or remove it if already bookmarked",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withCore(cmd, func(ctx context.Context, core *app.Core) error {
			id := args[0]
			set, err := core.Bookmarks.Toggle(ctx, id)
			if err != nil {
				return err
			}
			if set.Has(id) {
				fmt.Fprintf(cmd.OutOrStdout(), "★ %s bookmarked\n", id)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "☆ %s removed\n", id)
			}
			return nil
		})
	},
}

var bookmarkListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print bookmarked launch IDs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withCore(cmd, func(ctx context.Context, core *app.Core) error {
			for _, id := range core.Bookmarks.Bookmarks(ctx).IDs() {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		})
	},
}

func init() {
	bookmarkCmd.AddCommand(bookmarkToggleCmd)
	bookmarkCmd.AddCommand(bookmarkListCmd)
}
