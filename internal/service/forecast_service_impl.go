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

type forecastService struct {
	projects repository.ProjectRepo
	tasks    repository.TaskRepo
	cache    *cache.Cache
	observer UseCaseObserver
}

func NewForecastService(
	projects repository.ProjectRepo,
	tasks repository.TaskRepo,
	c *cache.Cache,
	observers ...UseCaseObserver,
) ForecastService {
	return &forecastService{
		projects: projects,
		tasks:    tasks,
		cache:    c,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *forecastService) GetForecast(ctx context.Context, req contract.ForecastRequest) (*contract.ForecastResponse, error) {
	startedAt := time.Now()
	now := resolveNow(req.Now)
	key := projectCachePrefix(req.ProjectID) + "forecast"

	// A nil forecast (terminal project, no tasks) is a defined outcome but is
	// never cached, so the project becomes forecastable as soon as it gains a
	// task.
	v, ok, err := s.cache.GetOrCreateOptional(ctx, key, forecastTTL, func(ctx context.Context) (any, bool, error) {
		fc, err := s.buildForecast(ctx, req.ProjectID, now)
		if err != nil {
			return nil, false, err
		}
		return fc, fc != nil, nil
	})
	observe(ctx, s.observer, "get_forecast", startedAt, err, map[string]any{"project_id": req.ProjectID})
	if err != nil {
		return nil, err
	}
	if !ok {
		return &contract.ForecastResponse{}, nil
	}
	return &contract.ForecastResponse{Forecast: v.(*insight.ForecastResult)}, nil
}

func (s *forecastService) buildForecast(ctx context.Context, projectID string, now time.Time) (*insight.ForecastResult, error) {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("loading project: %w", err)
	}
	tasks, err := s.tasks.List(ctx, repository.TaskScope{ProjectID: projectID})
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}
	return insight.ForecastProject(project, tasks, now), nil
}
