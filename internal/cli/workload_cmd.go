package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/pulse/internal/cli/formatter"
	"github.com/alexanderramin/pulse/internal/contract"
	"github.com/spf13/cobra"
)

func newWorkloadCmd(app *App) *cobra.Command {
	var projectID string

	cmd := &cobra.Command{
		Use:   "workload",
		Short: "Show per-employee load, least loaded first",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Workload.GetWorkload(context.Background(), contract.WorkloadRequest{
				ProjectID: projectID,
			})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatWorkload(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&projectID, "project", "", "Scope to a single project ID")

	return cmd
}
