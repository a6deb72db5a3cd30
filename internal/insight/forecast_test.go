package insight

import (
	"testing"
	"time"

	"github.com/alexanderramin/pulse/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var forecastNow = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

func makeProject(status domain.ProjectStatus, endDate *time.Time) *domain.Project {
	return &domain.Project{
		ID:      "p1",
		Name:    "Apollo",
		Status:  status,
		EndDate: endDate,
	}
}

// completedTasks returns n tasks completed within the trailing 30-day window.
func completedTasks(n int) []domain.Task {
	var tasks []domain.Task
	for i := 0; i < n; i++ {
		tasks = append(tasks, makeTask("c", withCompletedAt(forecastNow.AddDate(0, 0, -5))))
	}
	return tasks
}

func activeTasks(n int) []domain.Task {
	var tasks []domain.Task
	for i := 0; i < n; i++ {
		tasks = append(tasks, makeTask("a", withStatus(domain.TaskInProgress)))
	}
	return tasks
}

func TestForecastProject_TerminalProjectHasNoForecast(t *testing.T) {
	for _, status := range []domain.ProjectStatus{domain.ProjectCompleted, domain.ProjectCancelled} {
		p := makeProject(status, nil)
		assert.Nil(t, ForecastProject(p, activeTasks(3), forecastNow), "status %s", status)
	}
}

func TestForecastProject_NoTasksHasNoForecast(t *testing.T) {
	p := makeProject(domain.ProjectInProgress, nil)
	assert.Nil(t, ForecastProject(p, nil, forecastNow))
}

func TestForecastProject_ZeroVelocityUsesPlaceholderHorizon(t *testing.T) {
	p := makeProject(domain.ProjectInProgress, nil)
	result := ForecastProject(p, activeTasks(4), forecastNow)
	require.NotNil(t, result)

	assert.Equal(t, 0.0, result.Velocity)
	assert.Equal(t, forecastNow.AddDate(0, 0, 180), result.EstimatedCompletion)
	assert.Equal(t, domain.ForecastBehind, result.Status)
	assert.Equal(t, 4, result.RemainingTasks)
	assert.Equal(t, 0, result.CompletedLast30Days)
}

func TestForecastProject_VelocityExtrapolation(t *testing.T) {
	// 15 completed in the window => velocity 0.5/day; 10 remaining => 20 days.
	p := makeProject(domain.ProjectInProgress, timePtr(forecastNow.AddDate(0, 0, 25)))
	tasks := append(completedTasks(15), activeTasks(10)...)

	result := ForecastProject(p, tasks, forecastNow)
	require.NotNil(t, result)

	assert.Equal(t, 0.5, result.Velocity)
	assert.Equal(t, 15, result.CompletedLast30Days)
	assert.Equal(t, 10, result.RemainingTasks)
	assert.Equal(t, forecastNow.AddDate(0, 0, 20), result.EstimatedCompletion)
	assert.Equal(t, 0.0, result.DaysBehind)
	assert.Equal(t, domain.ForecastOnTrack, result.Status)
}

func TestForecastProject_CompletionOutsideWindowNotCounted(t *testing.T) {
	p := makeProject(domain.ProjectInProgress, nil)
	old := makeTask("c", withCompletedAt(forecastNow.AddDate(0, 0, -45)))
	tasks := append([]domain.Task{old}, activeTasks(2)...)

	result := ForecastProject(p, tasks, forecastNow)
	require.NotNil(t, result)
	assert.Equal(t, 0, result.CompletedLast30Days)
	assert.Equal(t, 0.0, result.Velocity)
}

func TestForecastProject_StatusTable(t *testing.T) {
	cases := []struct {
		name       string
		remaining  int
		velocity   float64
		endDate    *time.Time
		daysBehind float64
		want       domain.ForecastStatus
	}{
		{"nothing remaining wins over zero velocity", 0, 0, timePtr(forecastNow), 0, domain.ForecastOnTrack},
		{"zero velocity with work remaining", 3, 0, timePtr(forecastNow), 0, domain.ForecastBehind},
		{"no end date", 3, 0.5, nil, 0, domain.ForecastOnTrack},
		{"on schedule", 3, 0.5, timePtr(forecastNow), 0, domain.ForecastOnTrack},
		{"slightly behind", 3, 0.5, timePtr(forecastNow), 4, domain.ForecastAtRisk},
		{"five days behind is still at risk", 3, 0.5, timePtr(forecastNow), 5, domain.ForecastAtRisk},
		{"well behind", 3, 0.5, timePtr(forecastNow), 6, domain.ForecastBehind},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, forecastStatus(tc.remaining, tc.velocity, tc.endDate, tc.daysBehind))
		})
	}
}

func TestForecastProject_AllTasksDoneIsOnTrackDespiteZeroVelocity(t *testing.T) {
	// Completions fell outside the window, so velocity is zero, but with no
	// remaining work the project is on track regardless of its end date.
	endDate := forecastNow.AddDate(0, 0, -10)
	p := makeProject(domain.ProjectInProgress, &endDate)

	var tasks []domain.Task
	for i := 0; i < 5; i++ {
		tasks = append(tasks, makeTask("c", withCompletedAt(forecastNow.AddDate(0, 0, -60))))
	}

	result := ForecastProject(p, tasks, forecastNow)
	require.NotNil(t, result)
	assert.Equal(t, 0, result.RemainingTasks)
	assert.Equal(t, 0.0, result.Velocity)
	assert.Equal(t, domain.ForecastOnTrack, result.Status)
}

func TestForecastProject_DaysBehindFlooredAtZero(t *testing.T) {
	// Estimated completion well before the end date must not go negative.
	p := makeProject(domain.ProjectInProgress, timePtr(forecastNow.AddDate(0, 0, 100)))
	tasks := append(completedTasks(15), activeTasks(1)...)

	result := ForecastProject(p, tasks, forecastNow)
	require.NotNil(t, result)
	assert.Equal(t, 0.0, result.DaysBehind)
}
