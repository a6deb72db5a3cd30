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

type workloadService struct {
	tasks    repository.TaskRepo
	cache    *cache.Cache
	observer UseCaseObserver
}

func NewWorkloadService(tasks repository.TaskRepo, c *cache.Cache, observers ...UseCaseObserver) WorkloadService {
	return &workloadService{
		tasks:    tasks,
		cache:    c,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *workloadService) GetWorkload(ctx context.Context, req contract.WorkloadRequest) (*contract.WorkloadResponse, error) {
	startedAt := time.Now()

	key := "workload:all"
	if req.ProjectID != "" {
		key = projectCachePrefix(req.ProjectID) + "workload"
	}

	v, err := s.cache.GetOrCreate(ctx, key, workloadTTL, func(ctx context.Context) (any, error) {
		tasks, err := s.tasks.List(ctx, repository.TaskScope{ProjectID: req.ProjectID, ActiveOnly: true})
		if err != nil {
			return nil, fmt.Errorf("loading tasks: %w", err)
		}
		return insight.AggregateWorkload(tasks), nil
	})
	observe(ctx, s.observer, "get_workload", startedAt, err, map[string]any{"project_id": req.ProjectID})
	if err != nil {
		return nil, err
	}
	return &contract.WorkloadResponse{Workloads: v.([]insight.WorkloadResult)}, nil
}
