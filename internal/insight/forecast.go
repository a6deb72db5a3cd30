package insight

import (
	"math"
	"time"

	"github.com/alexanderramin/pulse/internal/domain"
)

// velocityWindowDays is the trailing window over which velocity is measured.
const velocityWindowDays = 30

// noEstimateHorizonDays is the placeholder completion horizon used when
// velocity is zero. It is an explicit "cannot estimate" marker, not a real
// projection.
const noEstimateHorizonDays = 180

// ForecastResult is a velocity-based completion forecast for one project.
type ForecastResult struct {
	ProjectID           string
	ProjectName         string
	EstimatedCompletion time.Time
	DaysBehind          float64
	Status              domain.ForecastStatus
	Velocity            float64
	RemainingTasks      int
	CompletedLast30Days int
}

// ForecastProject extrapolates the project's completion date from its
// trailing 30-day velocity. Returns nil for terminal projects and for
// projects with no tasks at all.
func ForecastProject(project *domain.Project, tasks []domain.Task, now time.Time) *ForecastResult {
	if project.IsTerminal() || len(tasks) == 0 {
		return nil
	}

	windowStart := now.AddDate(0, 0, -velocityWindowDays)
	var completedRecently, remaining int
	for i := range tasks {
		t := &tasks[i]
		if t.Status == domain.TaskCompleted && t.CompletedAt != nil && !t.CompletedAt.Before(windowStart) {
			completedRecently++
		}
		if t.IsActive() {
			remaining++
		}
	}

	velocity := float64(completedRecently) / float64(velocityWindowDays)

	var estimated time.Time
	if velocity <= 0 {
		estimated = now.AddDate(0, 0, noEstimateHorizonDays)
	} else {
		days := int(math.Ceil(float64(remaining) / velocity))
		estimated = now.AddDate(0, 0, days)
	}

	var daysBehind float64
	if project.EndDate != nil {
		daysBehind = math.Max(0, estimated.Sub(*project.EndDate).Hours()/24)
	}

	return &ForecastResult{
		ProjectID:           project.ID,
		ProjectName:         project.Name,
		EstimatedCompletion: estimated,
		DaysBehind:          daysBehind,
		Status:              forecastStatus(remaining, velocity, project.EndDate, daysBehind),
		Velocity:            velocity,
		RemainingTasks:      remaining,
		CompletedLast30Days: completedRecently,
	}
}

// forecastStatus classifies the forecast. The branch order is load-bearing:
// a project with nothing remaining is on track even with zero velocity.
func forecastStatus(remaining int, velocity float64, endDate *time.Time, daysBehind float64) domain.ForecastStatus {
	switch {
	case remaining == 0:
		return domain.ForecastOnTrack
	case velocity <= 0:
		return domain.ForecastBehind
	case endDate == nil:
		return domain.ForecastOnTrack
	case daysBehind <= 0:
		return domain.ForecastOnTrack
	case daysBehind <= 5:
		return domain.ForecastAtRisk
	default:
		return domain.ForecastBehind
	}
}
