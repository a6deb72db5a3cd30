package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/pulse/internal/contract"
	"github.com/alexanderramin/pulse/internal/domain"
	"github.com/alexanderramin/pulse/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboard_ComposesAllSections(t *testing.T) {
	projects, tasks, audits, c := setupRepos(t)
	ctx := context.Background()
	// Pinned mid-afternoon so the hour-of-day anomaly rule stays quiet.
	now := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

	proj := testutil.NewTestProject("Platform Rewrite", testutil.WithEndDate(now.AddDate(0, 1, 0)))
	require.NoError(t, projects.Create(ctx, proj))

	// One completed task inside the velocity window, one overdue critical task.
	done := testutil.NewTestTask(proj.ID, "Schema migration",
		testutil.WithCompletedAt(now.AddDate(0, 0, -3)))
	require.NoError(t, tasks.Create(ctx, done))

	overdue := testutil.NewTestTask(proj.ID, "API cutover",
		testutil.WithTaskStatus(domain.TaskInProgress),
		testutil.WithPriority(domain.PriorityCritical),
		testutil.WithDueDate(now.AddDate(0, 0, -4)),
		testutil.WithHours(10, 2),
		testutil.WithAssignee("emp-1", "Riley"))
	require.NoError(t, tasks.Create(ctx, overdue))

	require.NoError(t, audits.Create(ctx, testutil.NewTestEvent("emp-1", "task.update", now.Add(-time.Hour))))

	svc := NewDashboardService(projects, tasks, audits, c)
	resp, err := svc.GetDashboard(ctx, contract.DashboardRequest{Now: &now})
	require.NoError(t, err)

	assert.Equal(t, now, resp.GeneratedAt)
	require.Len(t, resp.Projects, 1)
	require.NotNil(t, resp.Projects[0].Forecast, "active project with tasks should get a forecast")
	assert.Equal(t, proj.ID, resp.Projects[0].Forecast.ProjectID)

	require.Len(t, resp.Workloads, 1)
	assert.Equal(t, "emp-1", resp.Workloads[0].EmployeeID)

	require.NotEmpty(t, resp.TopRisks)
	assert.Equal(t, overdue.ID, resp.TopRisks[0].TaskID)
	assert.Equal(t, domain.RiskHigh, resp.TopRisks[0].Level)

	// One event is far below every detector threshold.
	assert.Empty(t, resp.Anomalies)
	assert.LessOrEqual(t, resp.Health.Score, 100)
}

func TestDashboard_TerminalProjectsExcluded(t *testing.T) {
	projects, tasks, audits, c := setupRepos(t)
	ctx := context.Background()
	now := time.Now().UTC()

	active := testutil.NewTestProject("Active")
	finished := testutil.NewTestProject("Finished", testutil.WithProjectStatus(domain.ProjectCompleted))
	require.NoError(t, projects.Create(ctx, active))
	require.NoError(t, projects.Create(ctx, finished))

	svc := NewDashboardService(projects, tasks, audits, c)
	resp, err := svc.GetDashboard(ctx, contract.DashboardRequest{Now: &now})
	require.NoError(t, err)

	require.Len(t, resp.Projects, 1)
	assert.Equal(t, active.ID, resp.Projects[0].Project.ID)
	assert.Nil(t, resp.Projects[0].Forecast, "project without tasks has no forecast")
}

func TestDashboard_SecondCallServedFromCache(t *testing.T) {
	projects, tasks, audits, c := setupRepos(t)
	ctx := context.Background()
	now := time.Now().UTC()

	proj := testutil.NewTestProject("Cached")
	require.NoError(t, projects.Create(ctx, proj))

	svc := NewDashboardService(projects, tasks, audits, c)

	first, err := svc.GetDashboard(ctx, contract.DashboardRequest{Now: &now})
	require.NoError(t, err)

	// Mutate the store behind the cache; the snapshot must not change.
	later := testutil.NewTestProject("Added After")
	require.NoError(t, projects.Create(ctx, later))

	second, err := svc.GetDashboard(ctx, contract.DashboardRequest{Now: &now})
	require.NoError(t, err)

	assert.Len(t, second.Projects, 1, "stale snapshot expected until invalidation")
	assert.Greater(t, second.CacheStats.Hits, first.CacheStats.Hits)
}

func TestDashboard_InvalidateProjectEvictsSnapshot(t *testing.T) {
	projects, tasks, audits, c := setupRepos(t)
	ctx := context.Background()
	now := time.Now().UTC()

	proj := testutil.NewTestProject("Original")
	require.NoError(t, projects.Create(ctx, proj))

	svc := NewDashboardService(projects, tasks, audits, c)
	_, err := svc.GetDashboard(ctx, contract.DashboardRequest{Now: &now})
	require.NoError(t, err)

	added := testutil.NewTestProject("Added After Invalidation")
	require.NoError(t, projects.Create(ctx, added))

	svc.InvalidateProject(proj.ID)

	resp, err := svc.GetDashboard(ctx, contract.DashboardRequest{Now: &now})
	require.NoError(t, err)
	assert.Len(t, resp.Projects, 2, "invalidation should force a rebuild")
}

func TestDashboard_TopRisksCappedAndSorted(t *testing.T) {
	projects, tasks, audits, c := setupRepos(t)
	ctx := context.Background()
	now := time.Now().UTC()

	proj := testutil.NewTestProject("Risky")
	require.NoError(t, projects.Create(ctx, proj))

	// Seven tasks that all score medium or higher.
	for i := 0; i < 7; i++ {
		task := testutil.NewTestTask(proj.ID, "Hot task",
			testutil.WithTaskStatus(domain.TaskBlocked),
			testutil.WithPriority(domain.PriorityCritical),
			testutil.WithDueDate(now.AddDate(0, 0, -1)))
		require.NoError(t, tasks.Create(ctx, task))
	}

	svc := NewDashboardService(projects, tasks, audits, c)
	resp, err := svc.GetDashboard(ctx, contract.DashboardRequest{Now: &now})
	require.NoError(t, err)

	assert.Len(t, resp.TopRisks, topRiskLimit)
	for i := 1; i < len(resp.TopRisks); i++ {
		assert.GreaterOrEqual(t, resp.TopRisks[i-1].Score, resp.TopRisks[i].Score)
	}
}
