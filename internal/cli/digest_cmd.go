package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/pulse/internal/cli/formatter"
	"github.com/alexanderramin/pulse/internal/contract"
	"github.com/spf13/cobra"
)

func newDigestCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "digest",
		Short: "Show the weekly digest",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Digest.GetWeeklyDigest(context.Background(), contract.DigestRequest{})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDigest(resp))
			return nil
		},
	}
}
