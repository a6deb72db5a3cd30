package contract

import (
	"time"

	"github.com/alexanderramin/pulse/internal/domain"
	"github.com/alexanderramin/pulse/internal/insight"
)

// DashboardRequest asks for the organization-wide intelligence snapshot.
// Now pins the evaluation time; nil means the current wall clock.
type DashboardRequest struct {
	Now *time.Time
}

// ProjectOverview is the per-project slice of the dashboard.
type ProjectOverview struct {
	Project  *domain.Project
	Forecast *insight.ForecastResult // nil when no forecast applies
}

// DashboardResponse is the composed snapshot.
type DashboardResponse struct {
	GeneratedAt time.Time
	Health      insight.HealthResult
	Projects    []ProjectOverview
	Workloads   []insight.WorkloadResult
	TopRisks    []insight.RiskResult
	Anomalies   []insight.AnomalyFlag
	CacheStats  CacheStats
}
