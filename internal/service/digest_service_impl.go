package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/pulse/internal/cache"
	"github.com/alexanderramin/pulse/internal/contract"
	"github.com/alexanderramin/pulse/internal/insight"
	"github.com/alexanderramin/pulse/internal/repository"
)

// heaviestLoadLimit caps the digest's workload section to the most loaded
// employees.
const heaviestLoadLimit = 3

type digestService struct {
	projects repository.ProjectRepo
	tasks    repository.TaskRepo
	audits   repository.AuditRepo
	cache    *cache.Cache
	observer UseCaseObserver
}

func NewDigestService(
	projects repository.ProjectRepo,
	tasks repository.TaskRepo,
	audits repository.AuditRepo,
	c *cache.Cache,
	observers ...UseCaseObserver,
) DigestService {
	return &digestService{
		projects: projects,
		tasks:    tasks,
		audits:   audits,
		cache:    c,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *digestService) GetWeeklyDigest(ctx context.Context, req contract.DigestRequest) (*contract.DigestResponse, error) {
	startedAt := time.Now()
	now := resolveNow(req.Now)

	v, err := s.cache.GetOrCreate(ctx, digestCacheKey, digestTTL, func(ctx context.Context) (any, error) {
		return s.buildDigest(ctx, now)
	})
	observe(ctx, s.observer, "get_weekly_digest", startedAt, err, nil)
	if err != nil {
		return nil, err
	}
	return v.(*contract.DigestResponse), nil
}

func (s *digestService) buildDigest(ctx context.Context, now time.Time) (*contract.DigestResponse, error) {
	projects, err := s.projects.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("loading projects: %w", err)
	}
	tasks, err := s.tasks.List(ctx, repository.TaskScope{})
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}

	workloads := insight.AggregateWorkload(tasks)

	var digests []contract.ProjectDigest
	var forecasts []insight.ForecastResult
	for _, p := range projects {
		fc := insight.ForecastProject(p, tasksOfProject(tasks, p.ID), now)
		if fc == nil {
			continue
		}
		forecasts = append(forecasts, *fc)
		digests = append(digests, contract.ProjectDigest{
			ProjectID:           fc.ProjectID,
			ProjectName:         fc.ProjectName,
			Status:              fc.Status,
			EstimatedCompletion: fc.EstimatedCompletion,
			DaysBehind:          fc.DaysBehind,
			RemainingTasks:      fc.RemainingTasks,
		})
	}

	health := insight.ComputeTeamHealth(insight.HealthInput{
		Tasks:     tasks,
		Workloads: workloads,
		Forecasts: forecasts,
		Now:       now,
	})

	periodStart := now.AddDate(0, 0, -defaultLookbackDays)
	events, err := s.audits.ListSince(ctx, periodStart)
	if err != nil {
		return nil, fmt.Errorf("loading audit events: %w", err)
	}

	return &contract.DigestResponse{
		PeriodStart:  periodStart,
		PeriodEnd:    now,
		Health:       health,
		Projects:     digests,
		HeaviestLoad: heaviestLoads(workloads),
		AnomalyCount: len(insight.DetectAnomalies(events, now)),
	}, nil
}

// heaviestLoads returns the tail of the ascending workload list, most loaded
// first.
func heaviestLoads(workloads []insight.WorkloadResult) []insight.WorkloadResult {
	n := len(workloads)
	limit := heaviestLoadLimit
	if n < limit {
		limit = n
	}
	out := make([]insight.WorkloadResult, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, workloads[i])
	}
	return out
}
