package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/pulse/internal/domain"
)

// ErrNotFound is returned when a lookup by ID matches nothing.
var ErrNotFound = errors.New("not found")

// TaskScope narrows task queries. Zero value means everything.
type TaskScope struct {
	ProjectID  string // only tasks of this project
	AssigneeID string // only tasks assigned to this employee
	ActiveOnly bool   // exclude completed and cancelled tasks
}

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context, includeTerminal bool) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context, scope TaskScope) ([]domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id string) error
}

type AuditRepo interface {
	Create(ctx context.Context, e *domain.AuditEvent) error
	// ListSince returns all events at or after the given instant, ordered by
	// timestamp ascending, which is the ordering the anomaly detector expects.
	ListSince(ctx context.Context, since time.Time) ([]domain.AuditEvent, error)
	ListByUserSince(ctx context.Context, userID string, since time.Time) ([]domain.AuditEvent, error)
}
