package usecase

import (
	"errors"
	"fmt"

	"usage-insights-service/internal/metrics/core/dimension"
	"usage-insights-service/internal/metrics/core/domain"
	"usage-insights-service/internal/metrics/core/match"
)

var (
	ErrInvalidDimension = errors.New("invalid breakdown dimension")
	ErrInvalidMetricKey = errors.New("invalid metric key")
	ErrInvalidFilter    = errors.New("invalid filter")
)

type MetricKey string

const (
	MetricInteractions         MetricKey = "interactions"
	MetricSuggestions          MetricKey = "suggestions"
	MetricAcceptances          MetricKey = "acceptances"
	MetricLocSuggestedToAdd    MetricKey = "loc_suggested_to_add"
	MetricLocSuggestedToDelete MetricKey = "loc_suggested_to_delete"
	MetricLocAdded             MetricKey = "loc_added"
	MetricLocDeleted           MetricKey = "loc_deleted"
	MetricAcceptanceRate       MetricKey = "acceptance_rate"
)

type metricFunc func(c domain.Counters) float64

var metricFuncs = map[MetricKey]metricFunc{
	MetricInteractions:         func(c domain.Counters) float64 { return float64(c.Interactions) },
	MetricSuggestions:          func(c domain.Counters) float64 { return float64(c.Generations) },
	MetricAcceptances:          func(c domain.Counters) float64 { return float64(c.Acceptances) },
	MetricLocSuggestedToAdd:    func(c domain.Counters) float64 { return float64(c.LocSuggestedToAdd) },
	MetricLocSuggestedToDelete: func(c domain.Counters) float64 { return float64(c.LocSuggestedToDelete) },
	MetricLocAdded:             func(c domain.Counters) float64 { return float64(c.LocAdded) },
	MetricLocDeleted:           func(c domain.Counters) float64 { return float64(c.LocDeleted) },
	MetricAcceptanceRate:       domain.Counters.AcceptanceRate,
}

func lookupMetric(k MetricKey) (metricFunc, error) {
	fn, ok := metricFuncs[k]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMetricKey, string(k))
	}
	return fn, nil
}

func lookupDimension(d dimension.Dimension) (dimension.Config, error) {
	cfg, err := dimension.Lookup(d)
	if err != nil {
		return dimension.Config{}, fmt.Errorf("%w: %q", ErrInvalidDimension, string(d))
	}
	return cfg, nil
}

func buildQuery(f domain.MetricsFilter, nested match.Nested) (match.Query, error) {
	q, err := match.Build(f, nested)
	if err != nil {
		return match.Query{}, fmt.Errorf("%w: %w", ErrInvalidFilter, err)
	}
	return q, nil
}

// deltaPct is the relative change from prev to cur. A value appearing from
// nothing counts as +100%.
func deltaPct(cur, prev float64) float64 {
	delta := cur - prev
	switch {
	case prev > 0:
		return delta / prev
	case cur > 0:
		return 1
	default:
		return 0
	}
}

func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
