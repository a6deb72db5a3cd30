package service

import (
	"context"

	"github.com/alexanderramin/pulse/internal/contract"
)

// DashboardService composes the scoring components into the cached
// organization-wide snapshot.
type DashboardService interface {
	GetDashboard(ctx context.Context, req contract.DashboardRequest) (*contract.DashboardResponse, error)
	// InvalidateProject evicts every cached aggregate derived from the
	// given project, plus the composite dashboard. Call after mutating the
	// project's tasks upstream.
	InvalidateProject(projectID string)
}

type WorkloadService interface {
	GetWorkload(ctx context.Context, req contract.WorkloadRequest) (*contract.WorkloadResponse, error)
}

type ForecastService interface {
	GetForecast(ctx context.Context, req contract.ForecastRequest) (*contract.ForecastResponse, error)
}

type AnomalyService interface {
	Scan(ctx context.Context, req contract.AnomalyScanRequest) (*contract.AnomalyScanResponse, error)
}

type DigestService interface {
	GetWeeklyDigest(ctx context.Context, req contract.DigestRequest) (*contract.DigestResponse, error)
}
