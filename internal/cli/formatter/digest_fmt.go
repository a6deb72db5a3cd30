package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pulse/internal/contract"
)

// FormatDigest renders the weekly digest for terminal display.
func FormatDigest(resp *contract.DigestResponse) string {
	var b strings.Builder

	b.WriteString(Dim(fmt.Sprintf("%s – %s\n\n",
		HumanDate(resp.PeriodStart), HumanDate(resp.PeriodEnd))))

	b.WriteString(fmt.Sprintf("%s  %s\n",
		HealthBadge(resp.Health.Status),
		Bold(fmt.Sprintf("Team health %d/100", resp.Health.Score))))
	for _, f := range resp.Health.Factors {
		b.WriteString(Dim("  · "+f) + "\n")
	}

	if len(resp.Projects) > 0 {
		b.WriteString("\n" + Header("Projects") + "\n")
		rows := make([][]string, 0, len(resp.Projects))
		for _, p := range resp.Projects {
			behind := Dim("--")
			if p.DaysBehind > 0 {
				behind = StyleRed.Render(fmt.Sprintf("+%.0fd", p.DaysBehind))
			}
			rows = append(rows, []string{
				Bold(p.ProjectName),
				ForecastBadge(p.Status),
				HumanDate(p.EstimatedCompletion),
				behind,
				fmt.Sprintf("%d", p.RemainingTasks),
			})
		}
		b.WriteString(RenderTable([]string{"PROJECT", "FORECAST", "ETA", "SLIP", "LEFT"}, rows))
	}

	if len(resp.HeaviestLoad) > 0 {
		b.WriteString("\n" + Header("Heaviest Load") + "\n")
		b.WriteString(workloadTable(resp.HeaviestLoad))
	}

	b.WriteString("\n")
	if resp.AnomalyCount > 0 {
		b.WriteString(StyleYellow.Render(fmt.Sprintf("%d anomaly flag(s) this week", resp.AnomalyCount)) + "\n")
	} else {
		b.WriteString(StyleGreen.Render("No anomalies this week") + "\n")
	}

	return RenderBox("Weekly Digest", b.String())
}
