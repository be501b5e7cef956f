package usecase

import (
	"context"
	"math"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"usage-insights-service/internal/metrics/core/dimension"
	"usage-insights-service/internal/metrics/core/domain"
	"usage-insights-service/internal/metrics/core/match"
)

// Breakdown groups the dimension's exploded elements and ranks the groups by
// interactions, highest first.
func (e *MetricsEngine) Breakdown(ctx context.Context, d dimension.Dimension, f domain.MetricsFilter) ([]domain.BreakdownRow, error) {
	cfg, err := lookupDimension(d)
	if err != nil {
		return nil, err
	}
	return e.breakdown(ctx, cfg, f)
}

func (e *MetricsEngine) breakdown(ctx context.Context, cfg dimension.Config, f domain.MetricsFilter) ([]domain.BreakdownRow, error) {
	rows, err := e.explode(ctx, cfg, f)
	if err != nil {
		return nil, err
	}

	groups := GroupRows(rows, func(r ExplodedRow) string { return cfg.GroupKey(r.Element) })
	out := make([]domain.BreakdownRow, 0, len(groups))
	for _, g := range groups {
		users := float64(g.Users())
		out = append(out, domain.BreakdownRow{
			Name:                 cfg.DisplayName(g.First.Element),
			DimensionKeys:        cfg.Identity(g.First.Element),
			Interactions:         g.Counters.Interactions,
			Suggestions:          g.Counters.Generations,
			Acceptances:          g.Counters.Acceptances,
			LocAdded:             g.Counters.LocAdded,
			LocDeleted:           g.Counters.LocDeleted,
			LocSuggestedToAdd:    g.Counters.LocSuggestedToAdd,
			LocSuggestedToDelete: g.Counters.LocSuggestedToDelete,
			AcceptanceRate:       g.Counters.AcceptanceRate(),
			ActiveUsersCount:     int64(g.Users()),
			InteractionsPerUser:  ratio(float64(g.Counters.Interactions), users),
			LocAddedPerUser:      ratio(float64(g.Counters.LocAdded), users),
			AgentUsageRate:       g.AgentRate(),
			ChatUsageRate:        g.ChatRate(),
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Interactions > out[j].Interactions })

	e.logger.Debug("breakdown computed",
		zap.String("dimension", string(cfg.Dimension)),
		zap.String("collection", cfg.CollectionName),
		zap.Int("elements", len(rows)),
		zap.Int("groups", len(out)),
	)

	return out, nil
}

func (e *MetricsEngine) explode(ctx context.Context, cfg dimension.Config, f domain.MetricsFilter) ([]ExplodedRow, error) {
	q, err := buildQuery(f, match.Nested{Model: cfg.CarriesModel, Language: cfg.CarriesLanguage})
	if err != nil {
		return nil, err
	}
	records, err := e.reader.FindRecords(ctx, q)
	if err != nil {
		return nil, err
	}
	return Explode(records, cfg.Collection, q), nil
}

// BreakdownComparison runs the breakdown for the current and previous
// filters and reports the per-group change of one metric. Groups only present
// in the previous period are dropped.
func (e *MetricsEngine) BreakdownComparison(
	ctx context.Context,
	d dimension.Dimension,
	key MetricKey,
	current, previous domain.MetricsFilter,
) ([]domain.BreakdownDelta, error) {
	cfg, err := lookupDimension(d)
	if err != nil {
		return nil, err
	}
	metric, err := lookupMetric(key)
	if err != nil {
		return nil, err
	}

	var cur, prev []domain.BreakdownRow
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		cur, err = e.breakdown(gctx, cfg, current)
		return err
	})
	g.Go(func() error {
		var err error
		prev, err = e.breakdown(gctx, cfg, previous)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	prevByName := make(map[string]float64, len(prev))
	for _, row := range prev {
		prevByName[row.Name] = metric(row.Counters())
	}

	out := make([]domain.BreakdownDelta, 0, len(cur))
	for _, row := range cur {
		c := metric(row.Counters())
		p := prevByName[row.Name]
		out = append(out, domain.BreakdownDelta{
			Name:          row.Name,
			DimensionKeys: row.DimensionKeys,
			Current:       c,
			Previous:      p,
			Delta:         c - p,
			DeltaPct:      deltaPct(c, p),
		})
	}

	return out, nil
}

// BreakdownStability measures how much each group's daily metric value
// fluctuates. Groups are ordered most stable first.
func (e *MetricsEngine) BreakdownStability(
	ctx context.Context,
	d dimension.Dimension,
	key MetricKey,
	f domain.MetricsFilter,
) ([]domain.StabilityRow, error) {
	cfg, err := lookupDimension(d)
	if err != nil {
		return nil, err
	}
	metric, err := lookupMetric(key)
	if err != nil {
		return nil, err
	}

	rows, err := e.explode(ctx, cfg, f)
	if err != nil {
		return nil, err
	}

	daily := GroupRows(rows, func(r ExplodedRow) string {
		return cfg.GroupKey(r.Element) + "\x01" + domain.DayKey(r.Day)
	})

	type series struct {
		first  domain.DimensionTotals
		values []float64
	}
	index := make(map[string]*series)
	var order []string
	for _, g := range daily {
		k := cfg.GroupKey(g.First.Element)
		s, ok := index[k]
		if !ok {
			s = &series{first: g.First.Element}
			index[k] = s
			order = append(order, k)
		}
		s.values = append(s.values, metric(g.Counters))
	}

	out := make([]domain.StabilityRow, 0, len(order))
	for _, k := range order {
		s := index[k]
		avg, stddev := meanStddev(s.values)
		out = append(out, domain.StabilityRow{
			Name:                 cfg.DisplayName(s.first),
			DimensionKeys:        cfg.Identity(s.first),
			Days:                 len(s.values),
			AvgValue:             avg,
			StddevValue:          stddev,
			CoefficientVariation: ratio(stddev, avg),
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].CoefficientVariation < out[j].CoefficientVariation })

	return out, nil
}

// meanStddev returns the mean and population standard deviation of values.
func meanStddev(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	var sq float64
	for _, v := range values {
		sq += (v - mean) * (v - mean)
	}
	return mean, math.Sqrt(sq / float64(len(values)))
}
