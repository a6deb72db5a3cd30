package contract

import (
	"time"

	"github.com/alexanderramin/pulse/internal/insight"
)

// AnomalyScanRequest asks for a scan of the audit trail. LookbackDays <= 0
// defaults to 7.
type AnomalyScanRequest struct {
	LookbackDays int
	Now          *time.Time
}

type AnomalyScanResponse struct {
	WindowStart time.Time
	WindowEnd   time.Time
	Flags       []insight.AnomalyFlag
}
