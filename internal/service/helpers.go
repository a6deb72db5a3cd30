package service

import "time"

// Cache keys and TTLs. Per-project keys share the "project:<id>:" prefix so
// one RemoveByPrefix call invalidates the whole family.
const (
	dashboardCacheKey = "dashboard"
	digestCacheKey    = "digest:weekly"

	dashboardTTL = 5 * time.Minute
	workloadTTL  = 5 * time.Minute
	forecastTTL  = 15 * time.Minute
	anomalyTTL   = 5 * time.Minute
	digestTTL    = time.Hour
)

func projectCachePrefix(projectID string) string {
	return "project:" + projectID + ":"
}

// resolveNow returns the pinned evaluation time, or the current UTC clock.
func resolveNow(now *time.Time) time.Time {
	if now != nil {
		return *now
	}
	return time.Now().UTC()
}
