package domain

import "time"

type Project struct {
	ID        string
	Name      string
	Status    ProjectStatus
	StartDate time.Time
	EndDate   *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsTerminal reports whether the project has reached a final state.
// Forecasting only applies to non-terminal projects.
func (p *Project) IsTerminal() bool {
	return p.Status == ProjectCompleted || p.Status == ProjectCancelled
}
