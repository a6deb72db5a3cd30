package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pulse/internal/contract"
)

const loadBarWidth = 10

// FormatDashboard renders the full intelligence snapshot: team health,
// project forecasts, workload, top risks, and recent anomalies.
func FormatDashboard(resp *contract.DashboardResponse) string {
	var b strings.Builder

	b.WriteString(formatHealth(resp))
	b.WriteString("\n")
	b.WriteString(formatProjectTable(resp))

	if len(resp.Workloads) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Workload") + "\n")
		b.WriteString(workloadTable(resp.Workloads))
	}

	if len(resp.TopRisks) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Top Risks") + "\n")
		rows := make([][]string, 0, len(resp.TopRisks))
		for _, r := range resp.TopRisks {
			rows = append(rows, []string{
				Dim(TruncID(r.TaskID)),
				fmt.Sprintf("%d", r.Score),
				RiskIndicator(r.Level),
				r.Reason,
			})
		}
		b.WriteString(RenderTable([]string{"TASK", "SCORE", "LEVEL", "WHY"}, rows))
	}

	if len(resp.Anomalies) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Anomalies") + "\n")
		b.WriteString(anomalyTable(resp.Anomalies))
	}

	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("cache: %d entries, %d hits, %d misses",
		resp.CacheStats.Size, resp.CacheStats.Hits, resp.CacheStats.Misses)) + "\n")

	return RenderBox("Pulse", b.String())
}

func formatHealth(resp *contract.DashboardResponse) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s  %s\n",
		HealthBadge(resp.Health.Status),
		Bold(fmt.Sprintf("Team health %d/100", resp.Health.Score))))
	for _, f := range resp.Health.Factors {
		b.WriteString(Dim("  · "+f) + "\n")
	}
	return b.String()
}

func formatProjectTable(resp *contract.DashboardResponse) string {
	headers := []string{"PROJECT", "STATUS", "FORECAST", "ETA", "LEFT"}
	rows := make([][]string, 0, len(resp.Projects))
	for _, p := range resp.Projects {
		forecast := Dim("--")
		eta := Dim("--")
		left := Dim("--")
		if p.Forecast != nil {
			forecast = ForecastBadge(p.Forecast.Status)
			eta = RelativeDateFrom(p.Forecast.EstimatedCompletion, resp.GeneratedAt)
			left = fmt.Sprintf("%d", p.Forecast.RemainingTasks)
			if p.Forecast.DaysBehind > 0 {
				eta += " " + StyleRed.Render(fmt.Sprintf("(+%.0fd)", p.Forecast.DaysBehind))
			}
		}
		rows = append(rows, []string{
			Bold(p.Project.Name),
			string(p.Project.Status),
			forecast,
			eta,
			left,
		})
	}
	return RenderTable(headers, rows)
}
