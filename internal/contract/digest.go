package contract

import (
	"time"

	"github.com/alexanderramin/pulse/internal/domain"
	"github.com/alexanderramin/pulse/internal/insight"
)

type DigestRequest struct {
	Now *time.Time
}

// ProjectDigest is one project's line in the weekly digest.
type ProjectDigest struct {
	ProjectID           string
	ProjectName         string
	Status              domain.ForecastStatus
	EstimatedCompletion time.Time
	DaysBehind          float64
	RemainingTasks      int
}

// DigestResponse summarizes the trailing week for presentation.
type DigestResponse struct {
	PeriodStart  time.Time
	PeriodEnd    time.Time
	Health       insight.HealthResult
	Projects     []ProjectDigest
	HeaviestLoad []insight.WorkloadResult
	AnomalyCount int
}
