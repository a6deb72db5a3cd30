package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/pulse/internal/cli/formatter"
	"github.com/alexanderramin/pulse/internal/contract"
	"github.com/spf13/cobra"
)

func newAnomaliesCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "anomalies",
		Short: "Scan the audit trail for behavioral anomalies",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Anomalies.Scan(context.Background(), contract.AnomalyScanRequest{
				LookbackDays: days,
			})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAnomalies(resp))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "Lookback window in days (default 7)")

	return cmd
}
