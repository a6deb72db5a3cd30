package contract

import (
	"time"

	"github.com/alexanderramin/pulse/internal/insight"
)

// WorkloadRequest asks for per-employee load. An empty ProjectID means the
// whole organization.
type WorkloadRequest struct {
	ProjectID string
	Now       *time.Time
}

type WorkloadResponse struct {
	Workloads []insight.WorkloadResult
}
