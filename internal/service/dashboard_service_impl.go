package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/pulse/internal/cache"
	"github.com/alexanderramin/pulse/internal/contract"
	"github.com/alexanderramin/pulse/internal/domain"
	"github.com/alexanderramin/pulse/internal/insight"
	"github.com/alexanderramin/pulse/internal/repository"
)

// topRiskLimit caps the risk list on the dashboard; anything below medium is
// not worth surfacing there.
const topRiskLimit = 5

const dashboardLookbackDays = 7

type dashboardService struct {
	projects repository.ProjectRepo
	tasks    repository.TaskRepo
	audits   repository.AuditRepo
	cache    *cache.Cache
	observer UseCaseObserver
}

func NewDashboardService(
	projects repository.ProjectRepo,
	tasks repository.TaskRepo,
	audits repository.AuditRepo,
	c *cache.Cache,
	observers ...UseCaseObserver,
) DashboardService {
	return &dashboardService{
		projects: projects,
		tasks:    tasks,
		audits:   audits,
		cache:    c,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *dashboardService) GetDashboard(ctx context.Context, req contract.DashboardRequest) (*contract.DashboardResponse, error) {
	startedAt := time.Now()
	now := resolveNow(req.Now)

	v, err := s.cache.GetOrCreate(ctx, dashboardCacheKey, dashboardTTL, func(ctx context.Context) (any, error) {
		return s.buildDashboard(ctx, now)
	})
	observe(ctx, s.observer, "get_dashboard", startedAt, err, nil)
	if err != nil {
		return nil, err
	}

	// Shallow-copy the cached snapshot so the stats reflect this call, not
	// the call that populated the cache.
	resp := *v.(*contract.DashboardResponse)
	stats := s.cache.Stats()
	resp.CacheStats = contract.CacheStats{Size: stats.Size, Hits: stats.Hits, Misses: stats.Misses}
	return &resp, nil
}

func (s *dashboardService) InvalidateProject(projectID string) {
	s.cache.Remove(dashboardCacheKey)
	s.cache.Remove(digestCacheKey)
	s.cache.RemoveByPrefix(projectCachePrefix(projectID))
}

func (s *dashboardService) buildDashboard(ctx context.Context, now time.Time) (*contract.DashboardResponse, error) {
	projects, err := s.projects.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("loading projects: %w", err)
	}

	// All tasks, terminal included: the forecaster needs completed tasks to
	// measure velocity. The other components filter for themselves.
	tasks, err := s.tasks.List(ctx, repository.TaskScope{})
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}

	workloads := insight.AggregateWorkload(tasks)

	overviews := make([]contract.ProjectOverview, 0, len(projects))
	var forecasts []insight.ForecastResult
	for _, p := range projects {
		fc := insight.ForecastProject(p, tasksOfProject(tasks, p.ID), now)
		overviews = append(overviews, contract.ProjectOverview{Project: p, Forecast: fc})
		if fc != nil {
			forecasts = append(forecasts, *fc)
		}
	}

	health := insight.ComputeTeamHealth(insight.HealthInput{
		Tasks:     tasks,
		Workloads: workloads,
		Forecasts: forecasts,
		Now:       now,
	})

	events, err := s.audits.ListSince(ctx, now.AddDate(0, 0, -dashboardLookbackDays))
	if err != nil {
		return nil, fmt.Errorf("loading audit events: %w", err)
	}

	return &contract.DashboardResponse{
		GeneratedAt: now,
		Health:      health,
		Projects:    overviews,
		Workloads:   workloads,
		TopRisks:    topRisks(tasks, now),
		Anomalies:   insight.DetectAnomalies(events, now),
	}, nil
}

// topRisks scores every active task and keeps the highest medium-or-worse
// scores, descending.
func topRisks(tasks []domain.Task, now time.Time) []insight.RiskResult {
	var risks []insight.RiskResult
	for i := range tasks {
		if !tasks[i].IsActive() {
			continue
		}
		r := insight.ScoreTask(&tasks[i], now)
		if r.Level == domain.RiskLow {
			continue
		}
		risks = append(risks, r)
	}
	sort.SliceStable(risks, func(i, j int) bool {
		return risks[i].Score > risks[j].Score
	})
	if len(risks) > topRiskLimit {
		risks = risks[:topRiskLimit]
	}
	return risks
}

func tasksOfProject(tasks []domain.Task, projectID string) []domain.Task {
	var out []domain.Task
	for _, t := range tasks {
		if t.ProjectID == projectID {
			out = append(out, t)
		}
	}
	return out
}
