package insight

import (
	"sort"

	"github.com/alexanderramin/pulse/internal/domain"
)

// WorkloadResult is the computed load for one employee.
type WorkloadResult struct {
	EmployeeID     string
	EmployeeName   string
	ActiveTasks    int
	RemainingHours float64
	LoadScore      float64
	Label          domain.LoadLabel
}

// AggregateWorkload groups active tasks by assignee and computes a 0-100
// load score per employee: activeTasks*5 + remainingHours/2, clamped.
// Unassigned tasks are excluded entirely. Results are sorted ascending by
// load score, least loaded first.
func AggregateWorkload(tasks []domain.Task) []WorkloadResult {
	groups := make(map[string]*WorkloadResult)
	var order []string

	for i := range tasks {
		t := &tasks[i]
		if !t.IsActive() || t.AssigneeID == nil {
			continue
		}
		id := *t.AssigneeID
		g, ok := groups[id]
		if !ok {
			g = &WorkloadResult{EmployeeID: id, EmployeeName: t.AssigneeName}
			groups[id] = g
			order = append(order, id)
		}
		g.ActiveTasks++
		g.RemainingHours += t.RemainingHours()
	}

	results := make([]WorkloadResult, 0, len(order))
	for _, id := range order {
		g := groups[id]
		g.LoadScore = clamp(float64(g.ActiveTasks)*5+g.RemainingHours/2, 0, 100)
		g.Label = loadLabel(g.LoadScore)
		results = append(results, *g)
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].LoadScore != results[j].LoadScore {
			return results[i].LoadScore < results[j].LoadScore
		}
		return results[i].EmployeeName < results[j].EmployeeName
	})
	return results
}

func loadLabel(score float64) domain.LoadLabel {
	switch {
	case score <= 30:
		return domain.LoadAvailable
	case score <= 70:
		return domain.LoadModerate
	default:
		return domain.LoadHeavy
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
