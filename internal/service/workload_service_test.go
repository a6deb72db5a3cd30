package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/pulse/internal/contract"
	"github.com/alexanderramin/pulse/internal/domain"
	"github.com/alexanderramin/pulse/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkload_OrganizationWide(t *testing.T) {
	projects, tasks, _, c := setupRepos(t)
	ctx := context.Background()

	projA := testutil.NewTestProject("A")
	projB := testutil.NewTestProject("B")
	require.NoError(t, projects.Create(ctx, projA))
	require.NoError(t, projects.Create(ctx, projB))

	require.NoError(t, tasks.Create(ctx, testutil.NewTestTask(projA.ID, "One",
		testutil.WithTaskStatus(domain.TaskInProgress),
		testutil.WithAssignee("emp-1", "Sam"))))
	require.NoError(t, tasks.Create(ctx, testutil.NewTestTask(projB.ID, "Two",
		testutil.WithTaskStatus(domain.TaskInProgress),
		testutil.WithAssignee("emp-2", "Jordan"))))

	svc := NewWorkloadService(tasks, c)
	resp, err := svc.GetWorkload(ctx, contract.WorkloadRequest{})
	require.NoError(t, err)

	assert.Len(t, resp.Workloads, 2, "org-wide request spans both projects")
}

func TestWorkload_ScopedToProject(t *testing.T) {
	projects, tasks, _, c := setupRepos(t)
	ctx := context.Background()

	projA := testutil.NewTestProject("A")
	projB := testutil.NewTestProject("B")
	require.NoError(t, projects.Create(ctx, projA))
	require.NoError(t, projects.Create(ctx, projB))

	require.NoError(t, tasks.Create(ctx, testutil.NewTestTask(projA.ID, "One",
		testutil.WithTaskStatus(domain.TaskInProgress),
		testutil.WithAssignee("emp-1", "Sam"))))
	require.NoError(t, tasks.Create(ctx, testutil.NewTestTask(projB.ID, "Two",
		testutil.WithTaskStatus(domain.TaskInProgress),
		testutil.WithAssignee("emp-2", "Jordan"))))

	svc := NewWorkloadService(tasks, c)
	resp, err := svc.GetWorkload(ctx, contract.WorkloadRequest{ProjectID: projA.ID})
	require.NoError(t, err)

	require.Len(t, resp.Workloads, 1)
	assert.Equal(t, "emp-1", resp.Workloads[0].EmployeeID)
}

func TestWorkload_ScopedAndGlobalKeysIndependent(t *testing.T) {
	projects, tasks, _, c := setupRepos(t)
	ctx := context.Background()

	proj := testutil.NewTestProject("A")
	require.NoError(t, projects.Create(ctx, proj))
	require.NoError(t, tasks.Create(ctx, testutil.NewTestTask(proj.ID, "One",
		testutil.WithTaskStatus(domain.TaskInProgress),
		testutil.WithAssignee("emp-1", "Sam"))))

	svc := NewWorkloadService(tasks, c)

	_, err := svc.GetWorkload(ctx, contract.WorkloadRequest{ProjectID: proj.ID})
	require.NoError(t, err)
	_, err = svc.GetWorkload(ctx, contract.WorkloadRequest{})
	require.NoError(t, err)

	stats := c.Stats()
	assert.Equal(t, 2, stats.Size, "scoped and global views cache separately")

	// Evicting the project family leaves the global entry in place.
	c.RemoveByPrefix(projectCachePrefix(proj.ID))
	assert.Equal(t, 1, c.Stats().Size)
}
