package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/pulse/internal/cli/formatter"
	"github.com/alexanderramin/pulse/internal/contract"
	"github.com/spf13/cobra"
)

func newForecastCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "forecast <project-id>",
		Short: "Forecast a project's completion from its recent velocity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Forecast.GetForecast(context.Background(), contract.ForecastRequest{
				ProjectID: args[0],
			})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatForecast(resp))
			return nil
		},
	}
}
