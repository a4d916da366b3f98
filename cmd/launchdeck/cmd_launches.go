package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/launchdeck/internal/app"
	"github.com/MrSnakeDoc/launchdeck/internal/bookmarks"
	"github.com/MrSnakeDoc/launchdeck/internal/domain"
)

var launchesFlags struct {
	view  string
	query string
}

var launchesCmd = &cobra.Command{
	Use:   "launches",
	Short: "List launches, live or from the cache",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withCore(cmd, func(ctx context.Context, core *app.Core) error {
			launches, err := core.Launches.FetchLaunches(ctx)
			if err != nil {
				return err
			}
			now := time.Now()
			selected := domain.SelectView(launches, launchesFlags.view, launchesFlags.query, now)
			return printLaunches(cmd.OutOrStdout(), selected, core.Bookmarks.Bookmarks(ctx), now)
		})
	},
}

func init() {
	f := launchesCmd.Flags()
	f.StringVar(&launchesFlags.view, "view", domain.ViewAll, "all, upcoming or completed")
	f.StringVarP(&launchesFlags.query, "query", "q", "", "case-insensitive name filter")
}

func printLaunches(out io.Writer, launches []domain.Launch, marks bookmarks.Set, now time.Time) error {
	if len(launches) == 0 {
		_, err := fmt.Fprintln(out, "No launches match.")
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "\tNAME\tDATE (UTC)\tSTATUS\tSITE\tID")
	for _, l := range launches {
		mark := ""
		if marks.Has(l.ID) {
			mark = "★"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			mark, l.Name, l.DateUTC.UTC().Format("2006-01-02 15:04"), l.StatusLabel(now), l.SiteName(), l.ID)
	}
	return tw.Flush()
}
