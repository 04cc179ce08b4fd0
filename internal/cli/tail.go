package cli

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/charliek/cwlog/internal/constants"
	"github.com/charliek/cwlog/internal/domain"
	"github.com/charliek/cwlog/internal/query"
)

func newTailCmd(app *appContext) *cobra.Command {
	var (
		group  string
		since  string
		follow bool
	)

	cmd := &cobra.Command{
		Use:   "tail",
		Short: "Print recent events of a log group, optionally following new ones",
		Example: `  cwlog tail -g /aws/lambda/api-dev --since 1h
  cwlog tail -g /aws/lambda/api-dev -f`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var d time.Duration
			if !follow {
				var err error
				if d, err = query.ParseSince(since); err != nil {
					return err
				}
			}

			be, err := app.Backend(cmd.Context())
			if err != nil {
				return err
			}

			if follow {
				ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
				defer stop()
				return be.Follow(ctx, group, app.printEvent)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), constants.DefaultRequestTimeout)
			defer cancel()

			events, err := be.Tail(ctx, group, d)
			if err != nil {
				return err
			}
			if app.jsonOutput {
				return app.printer.PrintJSON(events)
			}
			app.printer.PrintEvents(events)
			return nil
		},
	}

	cmd.Flags().StringVarP(&group, "group", "g", "", "Log group name")
	cmd.Flags().StringVarP(&since, "since", "s", "10m", "Relative window (e.g. 1w, 1d, 1h, 1m, 1s)")
	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "Keep polling for new events")
	_ = cmd.MarkFlagRequired("group")
	return cmd
}

// printEvent prints one followed event as text or as a JSON line
func (a *appContext) printEvent(ev domain.LogEvent) {
	if a.jsonOutput {
		if err := a.printer.PrintJSONLine(ev); err != nil {
			a.logger.Warn("failed to encode event", "id", ev.ID, "error", err)
		}
		return
	}
	a.printer.PrintEvent(ev)
}
