package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pulse/internal/contract"
	"github.com/alexanderramin/pulse/internal/insight"
)

// FormatAnomalies renders the audit anomaly scan result.
func FormatAnomalies(resp *contract.AnomalyScanResponse) string {
	var b strings.Builder
	b.WriteString(Dim(fmt.Sprintf("Window %s – %s\n\n",
		HumanDate(resp.WindowStart), HumanDate(resp.WindowEnd))))

	if len(resp.Flags) == 0 {
		b.WriteString(StyleGreen.Render("No anomalies detected.") + "\n")
		return RenderBox("Anomalies", b.String())
	}

	b.WriteString(anomalyTable(resp.Flags))
	return RenderBox("Anomalies", b.String())
}

func anomalyTable(flags []insight.AnomalyFlag) string {
	headers := []string{"SEVERITY", "USER", "KIND", "DETAIL", "EVENTS"}
	rows := make([][]string, 0, len(flags))
	for _, f := range flags {
		rows = append(rows, []string{
			SeverityBadge(f.Severity),
			Bold(f.UserName),
			string(f.Kind),
			f.Description,
			fmt.Sprintf("%d", f.RelatedLogCount),
		})
	}
	return RenderTable(headers, rows)
}
