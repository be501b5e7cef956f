package usecase

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"usage-insights-service/internal/metrics/core/domain"
)

// MultiSeriesTrends runs one daily series per entity and merges them by day.
// A day without data for an entity leaves that entity's label out of the row.
func (e *MetricsEngine) MultiSeriesTrends(
	ctx context.Context,
	entities []domain.CompareEntityConfig,
	key MetricKey,
	f domain.MetricsFilter,
) ([]domain.MultiSeriesRow, error) {
	metric, err := lookupMetric(key)
	if err != nil {
		return nil, err
	}

	series := make([][]domain.DailyTrend, len(entities))
	g, gctx := errgroup.WithContext(ctx)
	for i, entity := range entities {
		g.Go(func() error {
			trends, err := e.DailyTrends(gctx, entity.Merge(f))
			if err != nil {
				return err
			}
			series[i] = trends
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byDate := make(map[string]*domain.MultiSeriesRow)
	for i, trends := range series {
		label := entities[i].Label
		for _, t := range trends {
			row, ok := byDate[t.Date]
			if !ok {
				row = &domain.MultiSeriesRow{Date: t.Date, Values: make(map[string]float64)}
				byDate[t.Date] = row
			}
			row.Values[label] = metric(trendCounters(t))
		}
	}

	out := make([]domain.MultiSeriesRow, 0, len(byDate))
	for _, row := range byDate {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })

	return out, nil
}

// ComparisonSummary compares one metric between two entities over the same
// base filter.
//
// Ties go to entity A: A is higher when valA >= valB and valA is non-zero,
// B only when strictly greater.
func (e *MetricsEngine) ComparisonSummary(
	ctx context.Context,
	a, b domain.CompareEntityConfig,
	key MetricKey,
	f domain.MetricsFilter,
) (domain.ComparisonSummary, error) {
	metric, err := lookupMetric(key)
	if err != nil {
		return domain.ComparisonSummary{}, err
	}

	var sumA, sumB domain.Summary
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sumA, err = e.Summary(gctx, a.Merge(f))
		return err
	})
	g.Go(func() error {
		var err error
		sumB, err = e.Summary(gctx, b.Merge(f))
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.ComparisonSummary{}, err
	}

	valA := metric(sumA.Counters())
	valB := metric(sumB.Counters())

	return domain.ComparisonSummary{
		Metric: string(key),
		EntityA: domain.EntityComparison{
			Label:    a.Label,
			Value:    valA,
			IsHigher: valA >= valB && valA != 0,
			Summary:  sumA,
		},
		EntityB: domain.EntityComparison{
			Label:    b.Label,
			Value:    valB,
			IsHigher: valB > valA,
			Summary:  sumB,
		},
		Gap: gap(valA, valB),
	}, nil
}

// gap is the percentage by which the larger value exceeds the smaller one.
func gap(a, b float64) float64 {
	hi, lo := max(a, b), min(a, b)
	switch {
	case lo > 0:
		return (hi - lo) / lo * 100
	case hi > 0:
		return 100
	default:
		return 0
	}
}
