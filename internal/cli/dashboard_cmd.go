package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/pulse/internal/cli/formatter"
	"github.com/alexanderramin/pulse/internal/contract"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *App) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the organization-wide intelligence snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			if watch {
				if app.IsInteractive != nil && !app.IsInteractive() {
					return errors.New("--watch needs an interactive terminal")
				}
				return runWatch(app)
			}

			resp, err := app.Dashboard.GetDashboard(context.Background(), contract.DashboardRequest{})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDashboard(resp))
			return nil
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", false, "Keep the dashboard on screen and refresh periodically")

	return cmd
}
