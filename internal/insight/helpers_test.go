package insight

import (
	"time"

	"github.com/alexanderramin/pulse/internal/domain"
)

func timePtr(t time.Time) *time.Time { return &t }

type taskOpt func(*domain.Task)

func withStatus(s domain.TaskStatus) taskOpt {
	return func(t *domain.Task) { t.Status = s }
}

func withPriority(p domain.TaskPriority) taskOpt {
	return func(t *domain.Task) { t.Priority = p }
}

func withDue(d time.Time) taskOpt {
	return func(t *domain.Task) { t.DueDate = &d }
}

func withHours(estimated, actual float64) taskOpt {
	return func(t *domain.Task) {
		t.EstimatedHours = estimated
		t.ActualHours = actual
	}
}

func withAssignee(id, name string) taskOpt {
	return func(t *domain.Task) {
		t.AssigneeID = &id
		t.AssigneeName = name
	}
}

func withCompletedAt(d time.Time) taskOpt {
	return func(t *domain.Task) {
		t.Status = domain.TaskCompleted
		t.CompletedAt = &d
	}
}

func makeTask(id string, opts ...taskOpt) domain.Task {
	t := domain.Task{
		ID:       id,
		Status:   domain.TaskNew,
		Priority: domain.PriorityNone,
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

func makeEvent(userID string, ts time.Time, action string, success bool) domain.AuditEvent {
	return domain.AuditEvent{
		UserID:    userID,
		UserName:  userID,
		Action:    action,
		Success:   success,
		CreatedAt: ts,
	}
}
