package insight

import (
	"fmt"
	"time"

	"github.com/alexanderramin/pulse/internal/domain"
)

// HealthInput carries the organization-wide snapshot the health score is
// computed from. Tasks may include terminal entries; they are ignored.
type HealthInput struct {
	Tasks     []domain.Task
	Workloads []WorkloadResult
	Forecasts []ForecastResult
	Now       time.Time
}

// HealthResult is the composite team health score.
type HealthResult struct {
	Score   int
	Status  domain.HealthStatus
	Factors []string
}

// ComputeTeamHealth starts at 100 and applies independent deductions for
// overdue ratio, blocked ratio, heavy workloads, and behind-schedule
// forecasts. High-risk tasks are reported as a factor but deduct nothing on
// their own. Factors keep their arrival order.
func ComputeTeamHealth(in HealthInput) HealthResult {
	score := 100
	var factors []string

	var active []*domain.Task
	for i := range in.Tasks {
		if in.Tasks[i].IsActive() {
			active = append(active, &in.Tasks[i])
		}
	}
	total := len(active)

	var overdue, blocked, highRisk int
	for _, t := range active {
		if t.IsOverdue(in.Now) {
			overdue++
		}
		if t.Status == domain.TaskBlocked {
			blocked++
		}
		if ScoreTask(t, in.Now).Level == domain.RiskHigh {
			highRisk++
		}
	}

	if total > 0 {
		overdueRatio := float64(overdue) / float64(total)
		if overdueRatio > 0.10 {
			score -= 15
			factors = append(factors, fmt.Sprintf(
				"%d of %d active tasks are overdue (%.0f%%)", overdue, total, overdueRatio*100))
		}

		blockedRatio := float64(blocked) / float64(total)
		if blockedRatio > 0.05 {
			score -= 10
			factors = append(factors, fmt.Sprintf(
				"%d of %d active tasks are blocked (%.0f%%)", blocked, total, blockedRatio*100))
		}
	}

	if highRisk > 0 {
		factors = append(factors, fmt.Sprintf("%d task(s) scored high risk", highRisk))
	}

	var heavy int
	for _, w := range in.Workloads {
		if w.Label == domain.LoadHeavy {
			heavy++
		}
	}
	if heavy > 0 {
		score -= 10
		factors = append(factors, fmt.Sprintf("%d employee(s) under heavy workload", heavy))
	}

	var behind int
	for _, f := range in.Forecasts {
		if f.Status == domain.ForecastBehind {
			behind++
		}
	}
	if behind > 0 {
		score -= 15
		factors = append(factors, fmt.Sprintf("%d project(s) forecast behind schedule", behind))
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return HealthResult{Score: score, Status: healthStatus(score), Factors: factors}
}

func healthStatus(score int) domain.HealthStatus {
	switch {
	case score >= 80:
		return domain.HealthHealthy
	case score >= 60:
		return domain.HealthAttention
	default:
		return domain.HealthAtRisk
	}
}
