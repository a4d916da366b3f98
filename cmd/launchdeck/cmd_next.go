package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/launchdeck/internal/app"
	"github.com/MrSnakeDoc/launchdeck/internal/domain"
	"github.com/MrSnakeDoc/launchdeck/internal/scheduler"
)

var nextFlags struct {
	once bool
}

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Show the next launch with a live countdown",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withCore(cmd, func(ctx context.Context, core *app.Core) error {
			l, err := core.Launches.FetchNextLaunch(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s  %s  %s\n", l.Name, l.SiteName(), l.DateUTC.UTC().Format(time.RFC1123))
			if nextFlags.once {
				fmt.Fprintln(out, domain.FormatCountdown(domain.Countdown(l.DateUTC, time.Now())))
				return nil
			}
			liveCountdown(ctx, out, l.DateUTC, time.Second)
			return nil
		})
	},
}

func init() {
	nextCmd.Flags().BoolVar(&nextFlags.once, "once", false, "print the countdown once and exit")
}

// liveCountdown redraws the countdown to target on every tick until it
// reaches zero or ctx is done. The ticker is released before the closing
// line is written, so nothing touches out once it returns.
func liveCountdown(ctx context.Context, out io.Writer, target time.Time, interval time.Duration) (liftoff bool) {
	done := make(chan struct{})
	ticker := scheduler.NewTicker(interval)
	ticker.Start(ctx, func(now time.Time) {
		c := domain.Countdown(target, now)
		fmt.Fprintf(out, "\r%s ", domain.FormatCountdown(c))
		if c.IsZero() {
			select {
			case <-done:
			default:
				close(done)
			}
		}
	})

	select {
	case <-ctx.Done():
	case <-done:
		liftoff = true
	}
	ticker.Stop()

	if liftoff {
		fmt.Fprint(out, "\n🚀 liftoff\n")
	} else {
		fmt.Fprintln(out)
	}
	return liftoff
}
