package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/alexanderramin/pulse/internal/cache"
	"github.com/alexanderramin/pulse/internal/contract"
	"github.com/alexanderramin/pulse/internal/insight"
	"github.com/alexanderramin/pulse/internal/repository"
)

const defaultLookbackDays = 7

type anomalyService struct {
	audits   repository.AuditRepo
	cache    *cache.Cache
	observer UseCaseObserver
}

func NewAnomalyService(audits repository.AuditRepo, c *cache.Cache, observers ...UseCaseObserver) AnomalyService {
	return &anomalyService{
		audits:   audits,
		cache:    c,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *anomalyService) Scan(ctx context.Context, req contract.AnomalyScanRequest) (*contract.AnomalyScanResponse, error) {
	startedAt := time.Now()
	now := resolveNow(req.Now)

	days := req.LookbackDays
	if days <= 0 {
		days = defaultLookbackDays
	}
	windowStart := now.AddDate(0, 0, -days)
	key := "anomalies:" + strconv.Itoa(days) + "d"

	v, err := s.cache.GetOrCreate(ctx, key, anomalyTTL, func(ctx context.Context) (any, error) {
		events, err := s.audits.ListSince(ctx, windowStart)
		if err != nil {
			return nil, fmt.Errorf("loading audit events: %w", err)
		}
		return insight.DetectAnomalies(events, now), nil
	})
	observe(ctx, s.observer, "anomaly_scan", startedAt, err, map[string]any{"lookback_days": days})
	if err != nil {
		return nil, err
	}

	return &contract.AnomalyScanResponse{
		WindowStart: windowStart,
		WindowEnd:   now,
		Flags:       v.([]insight.AnomalyFlag),
	}, nil
}
