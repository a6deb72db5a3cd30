package contract

import (
	"time"

	"github.com/alexanderramin/pulse/internal/insight"
)

type ForecastRequest struct {
	ProjectID string
	Now       *time.Time
}

// ForecastResponse carries a project forecast. Forecast is nil when the
// project is terminal or has no tasks; that is a defined outcome, not an
// error.
type ForecastResponse struct {
	Forecast *insight.ForecastResult
}
