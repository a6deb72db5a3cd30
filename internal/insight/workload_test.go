package insight

import (
	"testing"

	"github.com/alexanderramin/pulse/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateWorkload_GroupsByAssignee(t *testing.T) {
	tasks := []domain.Task{
		makeTask("t1", withAssignee("e1", "Ada"), withHours(10, 4)),
		makeTask("t2", withAssignee("e1", "Ada"), withHours(6, 0)),
		makeTask("t3", withAssignee("e2", "Ben"), withHours(2, 0)),
	}
	results := AggregateWorkload(tasks)
	require.Len(t, results, 2)

	// Sorted ascending by load score: Ben (1*5 + 2/2 = 6) before Ada
	// (2*5 + 12/2 = 16).
	assert.Equal(t, "e2", results[0].EmployeeID)
	assert.Equal(t, 1, results[0].ActiveTasks)
	assert.Equal(t, 2.0, results[0].RemainingHours)
	assert.Equal(t, 6.0, results[0].LoadScore)

	assert.Equal(t, "e1", results[1].EmployeeID)
	assert.Equal(t, "Ada", results[1].EmployeeName)
	assert.Equal(t, 2, results[1].ActiveTasks)
	assert.Equal(t, 12.0, results[1].RemainingHours)
	assert.Equal(t, 16.0, results[1].LoadScore)
}

func TestAggregateWorkload_ExcludesUnassignedAndTerminal(t *testing.T) {
	tasks := []domain.Task{
		makeTask("t1", withHours(10, 0)), // unassigned
		makeTask("t2", withAssignee("e1", "Ada"), withStatus(domain.TaskCompleted)),
		makeTask("t3", withAssignee("e1", "Ada"), withStatus(domain.TaskCancelled)),
	}
	assert.Empty(t, AggregateWorkload(tasks))
}

func TestAggregateWorkload_RemainingHoursFlooredPerTask(t *testing.T) {
	// One task over its estimate must not eat into another task's remainder.
	tasks := []domain.Task{
		makeTask("t1", withAssignee("e1", "Ada"), withHours(5, 20)),
		makeTask("t2", withAssignee("e1", "Ada"), withHours(8, 0)),
	}
	results := AggregateWorkload(tasks)
	require.Len(t, results, 1)
	assert.Equal(t, 8.0, results[0].RemainingHours)
}

func TestAggregateWorkload_Labels(t *testing.T) {
	cases := []struct {
		score float64
		want  domain.LoadLabel
	}{
		{0, domain.LoadAvailable},
		{30, domain.LoadAvailable},
		{31, domain.LoadModerate},
		{70, domain.LoadModerate},
		{71, domain.LoadHeavy},
		{100, domain.LoadHeavy},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, loadLabel(tc.score), "score %v", tc.score)
	}
}

func TestAggregateWorkload_ScoreClampedAt100(t *testing.T) {
	var tasks []domain.Task
	for i := 0; i < 40; i++ {
		tasks = append(tasks, makeTask("t", withAssignee("e1", "Ada"), withHours(10, 0)))
	}
	results := AggregateWorkload(tasks)
	require.Len(t, results, 1)
	assert.Equal(t, 100.0, results[0].LoadScore)
	assert.Equal(t, domain.LoadHeavy, results[0].Label)
}

func TestAggregateWorkload_ScoreMonotonic(t *testing.T) {
	base := []domain.Task{makeTask("t1", withAssignee("e1", "Ada"), withHours(4, 0))}
	baseScore := AggregateWorkload(base)[0].LoadScore

	moreTasks := append(base, makeTask("t2", withAssignee("e1", "Ada")))
	assert.GreaterOrEqual(t, AggregateWorkload(moreTasks)[0].LoadScore, baseScore)

	moreHours := []domain.Task{makeTask("t1", withAssignee("e1", "Ada"), withHours(9, 0))}
	assert.GreaterOrEqual(t, AggregateWorkload(moreHours)[0].LoadScore, baseScore)
}
