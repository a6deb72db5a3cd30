package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pulse/internal/contract"
	"github.com/alexanderramin/pulse/internal/insight"
)

// FormatWorkload renders the per-employee load table, least loaded first.
func FormatWorkload(resp *contract.WorkloadResponse) string {
	if len(resp.Workloads) == 0 {
		return Dim("No active assigned tasks.") + "\n"
	}

	var b strings.Builder
	b.WriteString(workloadTable(resp.Workloads))
	return RenderBox("Workload", b.String())
}

func workloadTable(workloads []insight.WorkloadResult) string {
	headers := []string{"EMPLOYEE", "TASKS", "REMAINING", "LOAD", "LABEL"}
	rows := make([][]string, 0, len(workloads))
	for _, w := range workloads {
		rows = append(rows, []string{
			Bold(w.EmployeeName),
			fmt.Sprintf("%d", w.ActiveTasks),
			FormatHours(w.RemainingHours),
			ScoreBar(w.LoadScore, loadBarWidth),
			LoadBadge(w.Label),
		})
	}
	return RenderTable(headers, rows)
}
