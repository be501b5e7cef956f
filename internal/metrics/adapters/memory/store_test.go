package memory

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"usage-insights-service/internal/metrics/core/domain"
	"usage-insights-service/internal/metrics/core/match"
)

func TestMetricsStore_OrdersAndFilters(t *testing.T) {
	d1 := time.Date(2025, 3, 1, 13, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)

	store := NewMetricsStore([]domain.MetricRecord{
		{UserID: 2, UserLogin: "zed", Day: d2},
		{UserID: 1, UserLogin: "amy", Day: d2},
		{UserID: 1, UserLogin: "amy", Day: d1},
	})

	all, err := store.FindRecords(context.Background(), match.Query{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 records, got %d", len(all))
	}
	if !all[0].Day.Equal(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected first record truncated to day, got %s", all[0].Day)
	}
	if all[1].UserLogin != "amy" || all[2].UserLogin != "zed" {
		t.Fatalf("expected login order within day, got %s, %s", all[1].UserLogin, all[2].UserLogin)
	}

	q, err := match.Build(domain.MetricsFilter{UserLogin: "zed"}, match.Nested{})
	if err != nil {
		t.Fatalf("build query: %v", err)
	}
	onlyZed, err := store.FindRecords(context.Background(), q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(onlyZed) != 1 {
		t.Fatalf("expected 1 record, got %d", len(onlyZed))
	}
}

func TestMetricsStore_CanceledContext(t *testing.T) {
	store := NewMetricsStore(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := store.FindRecords(ctx, match.Query{}); err == nil {
		t.Fatalf("expected context error")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")
	fixture := `[
  {"user_id": 7, "user_login": "octocat", "day": "2025-03-01T00:00:00Z", "interaction_count": 4,
   "totals_by_ide": [{"ide": "vscode", "interaction_count": 4}]}
]`
	if err := os.WriteFile(path, []byte(fixture), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	store, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.Len() != 1 {
		t.Fatalf("expected 1 record, got %d", store.Len())
	}

	recs, _ := store.FindRecords(context.Background(), match.Query{})
	if recs[0].Interactions != 4 || recs[0].TotalsByIDE[0].IDE != "vscode" {
		t.Fatalf("unexpected record: %+v", recs[0])
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatalf("expected error for missing fixture")
	}
}
