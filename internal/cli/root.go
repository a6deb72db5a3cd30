package cli

import (
	"strings"

	"github.com/alexanderramin/pulse/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Dashboard service.DashboardService
	Workload  service.WorkloadService
	Forecast  service.ForecastService
	Anomalies service.AnomalyService
	Digest    service.DigestService

	// IsInteractive reports whether stdin is attached to a terminal; the
	// watch view refuses to start without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "pulse" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "pulse",
		Short: "Operational intelligence for projects, workload, and audit trails",
	}

	// Accept snake_case spellings of multi-word flags.
	root.SetGlobalNormalizationFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	root.AddCommand(
		newDashboardCmd(app),
		newDigestCmd(app),
		newAnomaliesCmd(app),
		newWorkloadCmd(app),
		newForecastCmd(app),
	)

	return root
}
