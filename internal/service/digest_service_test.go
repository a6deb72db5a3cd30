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

func TestWeeklyDigest_SummarizesWeek(t *testing.T) {
	projects, tasks, audits, c := setupRepos(t)
	ctx := context.Background()
	now := time.Now().UTC()

	proj := testutil.NewTestProject("Rollout", testutil.WithEndDate(now.AddDate(0, 1, 0)))
	require.NoError(t, projects.Create(ctx, proj))

	require.NoError(t, tasks.Create(ctx, testutil.NewTestTask(proj.ID, "Done",
		testutil.WithCompletedAt(now.AddDate(0, 0, -2)))))
	require.NoError(t, tasks.Create(ctx, testutil.NewTestTask(proj.ID, "Open",
		testutil.WithTaskStatus(domain.TaskInProgress),
		testutil.WithAssignee("emp-1", "Sam"))))

	svc := NewDigestService(projects, tasks, audits, c)
	resp, err := svc.GetWeeklyDigest(ctx, contract.DigestRequest{Now: &now})
	require.NoError(t, err)

	assert.Equal(t, now, resp.PeriodEnd)
	assert.Equal(t, now.AddDate(0, 0, -defaultLookbackDays), resp.PeriodStart)

	require.Len(t, resp.Projects, 1)
	assert.Equal(t, proj.ID, resp.Projects[0].ProjectID)
	assert.Equal(t, 1, resp.Projects[0].RemainingTasks)

	require.Len(t, resp.HeaviestLoad, 1)
	assert.Equal(t, "emp-1", resp.HeaviestLoad[0].EmployeeID)
	assert.Zero(t, resp.AnomalyCount)
}

func TestWeeklyDigest_ProjectsWithoutForecastSkipped(t *testing.T) {
	projects, tasks, audits, c := setupRepos(t)
	ctx := context.Background()
	now := time.Now().UTC()

	empty := testutil.NewTestProject("No Tasks Yet")
	require.NoError(t, projects.Create(ctx, empty))

	svc := NewDigestService(projects, tasks, audits, c)
	resp, err := svc.GetWeeklyDigest(ctx, contract.DigestRequest{Now: &now})
	require.NoError(t, err)

	assert.Empty(t, resp.Projects)
	assert.Equal(t, domain.HealthHealthy, resp.Health.Status)
}

func TestWeeklyDigest_HeaviestLoadMostLoadedFirst(t *testing.T) {
	projects, tasks, audits, c := setupRepos(t)
	ctx := context.Background()
	now := time.Now().UTC()

	proj := testutil.NewTestProject("Busy")
	require.NoError(t, projects.Create(ctx, proj))

	// emp-heavy carries far more remaining work than the others.
	assignees := []struct {
		id    string
		tasks int
		hours float64
	}{
		{"emp-light", 1, 2},
		{"emp-mid", 2, 10},
		{"emp-heavy", 4, 40},
		{"emp-extra", 1, 1},
	}
	for _, a := range assignees {
		for i := 0; i < a.tasks; i++ {
			task := testutil.NewTestTask(proj.ID, "Work",
				testutil.WithTaskStatus(domain.TaskInProgress),
				testutil.WithHours(a.hours, 0),
				testutil.WithAssignee(a.id, a.id))
			require.NoError(t, tasks.Create(ctx, task))
		}
	}

	svc := NewDigestService(projects, tasks, audits, c)
	resp, err := svc.GetWeeklyDigest(ctx, contract.DigestRequest{Now: &now})
	require.NoError(t, err)

	require.Len(t, resp.HeaviestLoad, heaviestLoadLimit)
	assert.Equal(t, "emp-heavy", resp.HeaviestLoad[0].EmployeeID)
	for i := 1; i < len(resp.HeaviestLoad); i++ {
		assert.GreaterOrEqual(t, resp.HeaviestLoad[i-1].LoadScore, resp.HeaviestLoad[i].LoadScore)
	}
}
