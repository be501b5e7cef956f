package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"usage-insights-service/internal/metrics/core/domain"
	"usage-insights-service/internal/metrics/core/match"
	"usage-insights-service/internal/metrics/core/ports"
)

const DefaultTable = "user_metrics_daily"

type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

type MetricsRepository struct {
	db    DB
	table string
}

var _ ports.MetricsReaderPort = (*MetricsRepository)(nil)

func NewMetricsRepository(db DB, table string) *MetricsRepository {
	if table == "" {
		table = DefaultTable
	}
	return &MetricsRepository{db: db, table: quoteTable(table)}
}

// quoteTable quotes each part of a possibly schema-qualified table name.
func quoteTable(name string) string {
	parts := strings.Split(name, ".")
	for i, p := range parts {
		parts[i] = pq.QuoteIdentifier(p)
	}
	return strings.Join(parts, ".")
}

const selectColumns = `
    user_id,
    user_login,
    COALESCE(display_name, ''),
    COALESCE(enterprise_id, ''),
    day,
    interaction_count,
    generation_count,
    acceptance_count,
    loc_added,
    loc_deleted,
    loc_suggested_to_add,
    loc_suggested_to_delete,
    used_agent,
    used_chat,
    COALESCE(totals_by_ide, '[]'::jsonb),
    COALESCE(totals_by_feature, '[]'::jsonb),
    COALESCE(totals_by_language_model, '[]'::jsonb),
    COALESCE(totals_by_language_feature, '[]'::jsonb),
    COALESCE(totals_by_model_feature, '[]'::jsonb)`

func (r *MetricsRepository) FindRecords(ctx context.Context, q match.Query) ([]domain.MetricRecord, error) {
	where, args := buildWhere(q)

	query := `
SELECT` + selectColumns + `
FROM ` + r.table + `
WHERE ` + where + `
ORDER BY day, user_login`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.MetricRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// buildWhere renders the top-level criteria of q. Element criteria are applied
// by the engine after exploding.
func buildWhere(q match.Query) (string, []any) {
	var (
		conds []string
		args  []any
	)
	next := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	// Bounds bind as calendar days so a DATE column compares independently
	// of the session time zone.
	if q.From != nil {
		conds = append(conds, "day >= "+next(domain.DayKey(*q.From))+"::date")
	}
	if q.To != nil {
		conds = append(conds, "day <= "+next(domain.DayKey(*q.To))+"::date")
	}
	if q.UserLogin != "" {
		conds = append(conds, "user_login = "+next(q.UserLogin))
	}
	if q.Segment != "" {
		conds = append(conds, "EXISTS (SELECT 1 FROM jsonb_array_elements(totals_by_feature) f WHERE f->>'feature' ~* "+next(q.SegmentExpr())+")")
	}
	if q.Model != "" || q.Language != "" {
		var lm []string
		if q.Model != "" {
			lm = append(lm, "lm->>'model' = "+next(q.Model))
		}
		if q.Language != "" {
			lm = append(lm, "lm->>'language' = "+next(q.Language))
		}
		conds = append(conds, "EXISTS (SELECT 1 FROM jsonb_array_elements(totals_by_language_model) lm WHERE "+strings.Join(lm, " AND ")+")")
	}

	if len(conds) == 0 {
		return "TRUE", nil
	}
	return strings.Join(conds, " AND "), args
}

func scanRecord(rows RowScanner) (domain.MetricRecord, error) {
	var (
		rec    domain.MetricRecord
		nested [5][]byte
	)

	if err := rows.Scan(
		&rec.UserID,
		&rec.UserLogin,
		&rec.DisplayName,
		&rec.EnterpriseID,
		&rec.Day,
		&rec.Interactions,
		&rec.Generations,
		&rec.Acceptances,
		&rec.LocAdded,
		&rec.LocDeleted,
		&rec.LocSuggestedToAdd,
		&rec.LocSuggestedToDelete,
		&rec.UsedAgent,
		&rec.UsedChat,
		&nested[0],
		&nested[1],
		&nested[2],
		&nested[3],
		&nested[4],
	); err != nil {
		return rec, err
	}

	rec.Day = domain.TruncateDay(rec.Day)

	targets := []struct {
		column string
		dst    *[]domain.DimensionTotals
	}{
		{"totals_by_ide", &rec.TotalsByIDE},
		{"totals_by_feature", &rec.TotalsByFeature},
		{"totals_by_language_model", &rec.TotalsByLanguageModel},
		{"totals_by_language_feature", &rec.TotalsByLanguageFeature},
		{"totals_by_model_feature", &rec.TotalsByModelFeature},
	}
	for i, t := range targets {
		if err := json.Unmarshal(nested[i], t.dst); err != nil {
			return rec, fmt.Errorf("decode %s for %s: %w", t.column, rec.UserLogin, err)
		}
	}

	return rec, nil
}
