// Package memory serves metric records from process memory. It backs local
// runs from a JSON fixture and the engine tests.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"usage-insights-service/internal/metrics/core/domain"
	"usage-insights-service/internal/metrics/core/match"
	"usage-insights-service/internal/metrics/core/ports"
)

type MetricsStore struct {
	records []domain.MetricRecord
}

var _ ports.MetricsReaderPort = (*MetricsStore)(nil)

// NewMetricsStore copies records, truncates their days and orders them by
// day then login.
func NewMetricsStore(records []domain.MetricRecord) *MetricsStore {
	cp := make([]domain.MetricRecord, len(records))
	copy(cp, records)
	for i := range cp {
		cp[i].Day = domain.TruncateDay(cp[i].Day)
	}
	sort.SliceStable(cp, func(i, j int) bool {
		if !cp[i].Day.Equal(cp[j].Day) {
			return cp[i].Day.Before(cp[j].Day)
		}
		return cp[i].UserLogin < cp[j].UserLogin
	})
	return &MetricsStore{records: cp}
}

// LoadFile reads a JSON array of records.
func LoadFile(path string) (*MetricsStore, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	var records []domain.MetricRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode fixture %s: %w", path, err)
	}
	return NewMetricsStore(records), nil
}

func (s *MetricsStore) FindRecords(ctx context.Context, q match.Query) ([]domain.MetricRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out []domain.MetricRecord
	for i := range s.records {
		if q.Matches(&s.records[i]) {
			out = append(out, s.records[i])
		}
	}
	return out, nil
}

func (s *MetricsStore) Len() int {
	return len(s.records)
}
