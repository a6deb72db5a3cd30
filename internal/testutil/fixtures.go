package testutil

import (
	"time"

	"github.com/alexanderramin/pulse/internal/domain"
	"github.com/google/uuid"
)

// Project options
type ProjectOption func(*domain.Project)

func WithProjectStatus(s domain.ProjectStatus) ProjectOption {
	return func(p *domain.Project) {
		p.Status = s
	}
}

func WithEndDate(d time.Time) ProjectOption {
	return func(p *domain.Project) {
		p.EndDate = &d
	}
}

func NewTestProject(name string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC()
	p := &domain.Project{
		ID:        uuid.New().String(),
		Name:      name,
		Status:    domain.ProjectInProgress,
		StartDate: now.AddDate(0, -1, 0),
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Task options
type TaskOption func(*domain.Task)

func WithTaskStatus(s domain.TaskStatus) TaskOption {
	return func(t *domain.Task) {
		t.Status = s
	}
}

func WithPriority(p domain.TaskPriority) TaskOption {
	return func(t *domain.Task) {
		t.Priority = p
	}
}

func WithDueDate(d time.Time) TaskOption {
	return func(t *domain.Task) {
		t.DueDate = &d
	}
}

func WithHours(estimated, actual float64) TaskOption {
	return func(t *domain.Task) {
		t.EstimatedHours = estimated
		t.ActualHours = actual
	}
}

func WithAssignee(id, name string) TaskOption {
	return func(t *domain.Task) {
		t.AssigneeID = &id
		t.AssigneeName = name
	}
}

func WithCompletedAt(d time.Time) TaskOption {
	return func(t *domain.Task) {
		t.Status = domain.TaskCompleted
		t.CompletedAt = &d
	}
}

func NewTestTask(projectID, title string, opts ...TaskOption) *domain.Task {
	now := time.Now().UTC()
	t := &domain.Task{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Title:     title,
		Status:    domain.TaskNew,
		Priority:  domain.PriorityNone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// AuditEvent options
type EventOption func(*domain.AuditEvent)

func WithFailure() EventOption {
	return func(e *domain.AuditEvent) {
		e.Success = false
	}
}

func WithUserName(name string) EventOption {
	return func(e *domain.AuditEvent) {
		e.UserName = name
	}
}

func NewTestEvent(userID, action string, at time.Time, opts ...EventOption) *domain.AuditEvent {
	e := &domain.AuditEvent{
		ID:        uuid.New().String(),
		UserID:    userID,
		UserName:  userID,
		Action:    action,
		Success:   true,
		CreatedAt: at,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
