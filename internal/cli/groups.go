package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/charliek/cwlog/internal/constants"
	"github.com/charliek/cwlog/internal/domain"
)

func newGroupsCmd(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "groups",
		Short: "List log groups matching the configured prefix and stage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			be, err := app.Backend(cmd.Context())
			if err != nil {
				return err
			}

			groups, err := be.ListLogGroups(cmd.Context(), app.cfg.LogGroups.Prefix, app.cfg.LogGroups.Stage)
			if err != nil {
				return err
			}
			if len(groups) == 0 {
				return fmt.Errorf("%w: please set %s and %s in .env", domain.ErrNoLogGroups, constants.EnvLogPrefix, constants.EnvStage)
			}

			if app.jsonOutput {
				return app.printer.PrintJSON(groups)
			}
			app.printer.PrintLines(groups)
			return nil
		},
	}
}
