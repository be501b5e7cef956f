package ports

import (
	"context"

	"usage-insights-service/internal/metrics/core/domain"
	"usage-insights-service/internal/metrics/core/match"
)

type MetricsReaderPort interface {
	// FindRecords returns every record satisfying q's top-level criteria,
	// ordered by day then login. Element criteria are left to the caller.
	FindRecords(ctx context.Context, q match.Query) ([]domain.MetricRecord, error)
}
