package cache

import (
	"context"
	"time"

	"invenpro/backend/internal/report"
)

type OverviewCache interface {
	Get(ctx context.Context, key string) (*report.Overview, bool, error)
	Set(ctx context.Context, key string, value *report.Overview, ttl time.Duration) error
}

type NoopOverviewCache struct{}

func (NoopOverviewCache) Get(_ context.Context, _ string) (*report.Overview, bool, error) {
	return nil, false, nil
}

func (NoopOverviewCache) Set(_ context.Context, _ string, _ *report.Overview, _ time.Duration) error {
	return nil
}
