package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pulse/internal/contract"
)

// FormatForecast renders one project's completion forecast.
func FormatForecast(resp *contract.ForecastResponse) string {
	if resp.Forecast == nil {
		return Dim("No forecast: project is closed or has no tasks.") + "\n"
	}
	fc := resp.Forecast

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s  %s\n\n", ForecastBadge(fc.Status), Bold(fc.ProjectName)))
	b.WriteString(fmt.Sprintf("Estimated completion  %s\n", HumanDate(fc.EstimatedCompletion)))
	b.WriteString(fmt.Sprintf("Remaining tasks       %d\n", fc.RemainingTasks))
	b.WriteString(fmt.Sprintf("Completed last 30d    %d\n", fc.CompletedLast30Days))
	b.WriteString(fmt.Sprintf("Velocity              %.2f tasks/day\n", fc.Velocity))
	if fc.DaysBehind > 0 {
		b.WriteString(StyleRed.Render(fmt.Sprintf("Behind schedule by    %.1f days", fc.DaysBehind)) + "\n")
	}
	return RenderBox("Forecast", b.String())
}
