package insight

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/pulse/internal/domain"
)

const noRiskReason = "No significant risk factors detected."

// RiskResult is the scored risk for a single task.
type RiskResult struct {
	TaskID string
	Score  int
	Level  domain.RiskLevel
	Reason string
}

// ScoreTask computes an additive risk score for one task, clamped to [0,100]
// and thresholded into a level (>=70 high, >=40 medium). The reason string
// concatenates the explanation of every rule that fired, in rule order.
//
// Missing optional fields are never an error: no due date skips the due-date
// rules, a zero estimate skips the progress rules. Terminal tasks always
// score zero.
func ScoreTask(task *domain.Task, now time.Time) RiskResult {
	if task.IsTerminal() {
		return RiskResult{TaskID: task.ID, Score: 0, Level: domain.RiskLow, Reason: noRiskReason}
	}

	var score int
	var reasons []string

	var daysRemaining float64
	hasDue := task.DueDate != nil
	if hasDue {
		daysRemaining = task.DueDate.Sub(now).Hours() / 24

		switch {
		case daysRemaining < 0:
			score += 40
			reasons = append(reasons, fmt.Sprintf("Task is overdue by %d day(s).", int(-daysRemaining)))
		case daysRemaining <= 2:
			score += 25
			reasons = append(reasons, "Due within 2 days.")
		case daysRemaining <= 5:
			score += 15
			reasons = append(reasons, "Due within 5 days.")
		}
	}

	if task.EstimatedHours > 0 {
		progress := task.ActualHours / task.EstimatedHours
		if task.ActualHours > task.EstimatedHours {
			score += 15
			reasons = append(reasons, "Logged hours exceeded estimate.")
		}
		if progress < 0.5 && hasDue && daysRemaining <= 5 {
			score += 20
			reasons = append(reasons, fmt.Sprintf("Only %.0f%% complete with the due date close.", progress*100))
		}
	}

	switch task.Status {
	case domain.TaskBlocked:
		score += 25
		reasons = append(reasons, "Task is blocked.")
	case domain.TaskInProgress:
		score += 10
	}

	switch task.Priority {
	case domain.PriorityCritical:
		score += 20
		reasons = append(reasons, "Critical priority.")
	case domain.PriorityHigh:
		score += 10
		reasons = append(reasons, "High priority.")
	}

	if score > 100 {
		score = 100
	}

	reason := noRiskReason
	if len(reasons) > 0 {
		reason = strings.Join(reasons, " ")
	}

	return RiskResult{
		TaskID: task.ID,
		Score:  score,
		Level:  riskLevel(score),
		Reason: reason,
	}
}

func riskLevel(score int) domain.RiskLevel {
	switch {
	case score >= 70:
		return domain.RiskHigh
	case score >= 40:
		return domain.RiskMedium
	default:
		return domain.RiskLow
	}
}
