package status

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"

	"fdrates/internal/domain/entity"
)

const runsCacheKey = "runs"

type RunLogRepository interface {
	List(ctx context.Context) ([]entity.RunLog, error)
}

// Service serves the ingest dashboard. The dashboard tolerates slightly
// stale data, so lookups go through a short TTL cache; the rates serving
// path is not cached anywhere.
type Service struct {
	runs  RunLogRepository
	cache *cache.Cache
}

func NewService(runs RunLogRepository, ttl time.Duration) *Service {
	return &Service{
		runs:  runs,
		cache: cache.New(ttl, 2*ttl),
	}
}

func (s *Service) Runs(ctx context.Context) ([]entity.RunLog, error) {
	if cached, ok := s.cache.Get(runsCacheKey); ok {
		return cached.([]entity.RunLog), nil
	}

	runs, err := s.runs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("runs.List: %w", err)
	}

	s.cache.SetDefault(runsCacheKey, runs)

	return runs, nil
}
