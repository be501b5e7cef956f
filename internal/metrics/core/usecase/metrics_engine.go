package usecase

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"usage-insights-service/internal/metrics/core/dimension"
	"usage-insights-service/internal/metrics/core/domain"
	"usage-insights-service/internal/metrics/core/match"
	"usage-insights-service/internal/metrics/core/ports"
)

// MetricsEngine answers the analytical queries over the read-only metric
// store. Every operation is a pure function of its inputs and the store
// contents; store errors are returned unchanged.
type MetricsEngine struct {
	reader ports.MetricsReaderPort
	logger *zap.Logger
}

func NewMetricsEngine(reader ports.MetricsReaderPort, logger *zap.Logger) *MetricsEngine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MetricsEngine{reader: reader, logger: logger}
}

// Summary totals every matching record. Nothing matching yields the zero
// Summary.
func (e *MetricsEngine) Summary(ctx context.Context, f domain.MetricsFilter) (domain.Summary, error) {
	q, err := buildQuery(f, match.Nested{})
	if err != nil {
		return domain.Summary{}, err
	}
	records, err := e.reader.FindRecords(ctx, q)
	if err != nil {
		return domain.Summary{}, err
	}

	var (
		c     domain.Counters
		out   domain.Summary
		users = make(map[int64]struct{})
	)
	for i := range records {
		r := &records[i]
		c.Add(r.Counters)
		users[r.UserID] = struct{}{}
		out.UsedAgent = out.UsedAgent || r.UsedAgent
		out.UsedChat = out.UsedChat || r.UsedChat
	}

	out.Interactions = c.Interactions
	out.Suggestions = c.Generations
	out.Acceptances = c.Acceptances
	out.LocAdded = c.LocAdded
	out.LocDeleted = c.LocDeleted
	out.LocSuggestedToAdd = c.LocSuggestedToAdd
	out.LocSuggestedToDelete = c.LocSuggestedToDelete
	out.ActiveUsersCount = int64(len(users))
	out.ActiveDays = int64(len(records))
	out.AcceptanceRate = c.AcceptanceRate()

	return out, nil
}

// DailyTrends groups matching activity by calendar day. With a model or
// language criterion the language×model elements are grouped instead of the
// record totals.
func (e *MetricsEngine) DailyTrends(ctx context.Context, f domain.MetricsFilter) ([]domain.DailyTrend, error) {
	nested := f.Model != "" || f.Language != ""
	q, err := buildQuery(f, match.Nested{Model: nested, Language: nested})
	if err != nil {
		return nil, err
	}

	records, err := e.reader.FindRecords(ctx, q)
	if err != nil {
		return nil, err
	}

	var rows []ExplodedRow
	if nested {
		rows = Explode(records, dimension.ByLanguageModel, q)
	} else {
		rows = recordRows(records)
	}

	groups := GroupRows(rows, func(r ExplodedRow) string { return domain.DayKey(r.Day) })
	out := make([]domain.DailyTrend, 0, len(groups))
	for _, g := range groups {
		out = append(out, domain.DailyTrend{
			Date:                 g.Key,
			Interactions:         g.Counters.Interactions,
			Suggestions:          g.Counters.Generations,
			Acceptances:          g.Counters.Acceptances,
			LocAdded:             g.Counters.LocAdded,
			LocDeleted:           g.Counters.LocDeleted,
			LocSuggestedToAdd:    g.Counters.LocSuggestedToAdd,
			LocSuggestedToDelete: g.Counters.LocSuggestedToDelete,
			ActiveUsers:          int64(g.Users()),
			AcceptanceRate:       g.Counters.AcceptanceRate(),
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })

	e.logger.Debug("daily trends computed",
		zap.Bool("language_model", nested),
		zap.Int("records", len(records)),
		zap.Int("days", len(out)),
	)

	return out, nil
}

// recordRows treats each record's own totals as a single row so record-level
// grouping shares the pipeline with exploded grouping.
func recordRows(records []domain.MetricRecord) []ExplodedRow {
	rows := make([]ExplodedRow, len(records))
	for i := range records {
		r := &records[i]
		rows[i] = ExplodedRow{
			Parent:    i,
			UserID:    r.UserID,
			UserLogin: r.UserLogin,
			Day:       r.Day,
			UsedAgent: r.UsedAgent,
			UsedChat:  r.UsedChat,
			Element:   domain.DimensionTotals{Counters: r.Counters},
		}
	}
	return rows
}

func trendCounters(t domain.DailyTrend) domain.Counters {
	return domain.Counters{
		Interactions:         t.Interactions,
		Generations:          t.Suggestions,
		Acceptances:          t.Acceptances,
		LocAdded:             t.LocAdded,
		LocDeleted:           t.LocDeleted,
		LocSuggestedToAdd:    t.LocSuggestedToAdd,
		LocSuggestedToDelete: t.LocSuggestedToDelete,
	}
}
