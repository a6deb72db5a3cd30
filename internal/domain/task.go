package domain

import "time"

type Task struct {
	ID        string
	ProjectID string
	Title     string
	Status    TaskStatus
	Priority  TaskPriority

	// Schedule
	DueDate     *time.Time
	CompletedAt *time.Time

	// Effort, in hours. EstimatedHours == 0 means no estimate was given.
	EstimatedHours float64
	ActualHours    float64

	// Assignment. Nil AssigneeID means the task is unassigned.
	AssigneeID   *string
	AssigneeName string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsTerminal reports whether the task has reached a final state.
func (t *Task) IsTerminal() bool {
	return t.Status == TaskCompleted || t.Status == TaskCancelled
}

// IsActive reports whether the task still counts toward workload and risk.
func (t *Task) IsActive() bool {
	return !t.IsTerminal()
}

// RemainingHours returns the estimated hours not yet logged, floored at zero.
// A task with no estimate contributes nothing.
func (t *Task) RemainingHours() float64 {
	remaining := t.EstimatedHours - t.ActualHours
	if remaining < 0 {
		return 0
	}
	return remaining
}

// IsOverdue reports whether an active task has passed its due date.
func (t *Task) IsOverdue(now time.Time) bool {
	return t.IsActive() && t.DueDate != nil && t.DueDate.Before(now)
}
