package usecase

import (
	"testing"
	"time"

	"usage-insights-service/internal/metrics/core/dimension"
	"usage-insights-service/internal/metrics/core/domain"
	"usage-insights-service/internal/metrics/core/match"
)

func TestExplode_TagsParentAndAppliesElementCriteria(t *testing.T) {
	day := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	records := []domain.MetricRecord{
		{
			UserID: 1, UserLogin: "alice", Day: day, UsedAgent: true,
			TotalsByLanguageModel: []domain.DimensionTotals{
				{Language: "go", Model: "gpt-4o", Counters: domain.Counters{Interactions: 3}},
				{Language: "go", Model: "claude", Counters: domain.Counters{Interactions: 2}},
			},
		},
		{
			UserID: 2, UserLogin: "bob", Day: day,
			TotalsByLanguageModel: []domain.DimensionTotals{
				{Language: "rust", Model: "claude", Counters: domain.Counters{Interactions: 7}},
			},
		},
	}

	q, err := match.Build(domain.MetricsFilter{Model: "claude"}, match.Nested{Model: true})
	if err != nil {
		t.Fatalf("build query: %v", err)
	}
	rows := Explode(records, dimension.ByLanguageModel, q)

	if len(rows) != 2 {
		t.Fatalf("expected 2 claude rows, got %d", len(rows))
	}
	if rows[0].Parent != 0 || rows[0].UserLogin != "alice" || !rows[0].UsedAgent {
		t.Fatalf("expected first row tagged with alice's record, got %+v", rows[0])
	}
	if rows[1].Parent != 1 || rows[1].Element.Interactions != 7 {
		t.Fatalf("unexpected second row: %+v", rows[1])
	}
}

func TestGroupRows_CountsParentsOnce(t *testing.T) {
	rows := []ExplodedRow{
		{Parent: 0, UserID: 1, UsedAgent: true, Element: domain.DimensionTotals{Model: "m", Counters: domain.Counters{Interactions: 1}}},
		{Parent: 0, UserID: 1, UsedAgent: true, Element: domain.DimensionTotals{Model: "m", Counters: domain.Counters{Interactions: 2}}},
		{Parent: 1, UserID: 2, UsedChat: true, Element: domain.DimensionTotals{Model: "m", Counters: domain.Counters{Interactions: 4}}},
		{Parent: 2, UserID: 3, Element: domain.DimensionTotals{Model: "n"}},
	}

	groups := GroupRows(rows, func(r ExplodedRow) string { return r.Element.Model })
	if len(groups) != 2 || groups[0].Key != "m" || groups[1].Key != "n" {
		t.Fatalf("expected groups m,n in first-seen order, got %+v", groups)
	}

	m := groups[0]
	if m.Counters.Interactions != 7 {
		t.Fatalf("expected 7 interactions, got %d", m.Counters.Interactions)
	}
	if m.Users() != 2 {
		t.Fatalf("expected 2 users, got %d", m.Users())
	}
	if m.AgentRate() != 0.5 || m.ChatRate() != 0.5 {
		t.Fatalf("expected parent-level rates 0.5/0.5, got %v/%v", m.AgentRate(), m.ChatRate())
	}
	if groups[1].AgentRate() != 0 {
		t.Fatalf("expected zero agent rate")
	}
}

func TestMeanStddev(t *testing.T) {
	mean, sd := meanStddev([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if mean != 5 || sd != 2 {
		t.Fatalf("expected mean 5 sd 2, got %v %v", mean, sd)
	}
	if m, s := meanStddev(nil); m != 0 || s != 0 {
		t.Fatalf("expected zeros for empty input")
	}
}

func TestDeltaPct(t *testing.T) {
	tests := []struct {
		cur, prev, want float64
	}{
		{15, 10, 0.5},
		{5, 10, -0.5},
		{3, 0, 1},
		{0, 0, 0},
	}
	for _, tt := range tests {
		if got := deltaPct(tt.cur, tt.prev); got != tt.want {
			t.Fatalf("deltaPct(%v,%v): expected %v, got %v", tt.cur, tt.prev, tt.want, got)
		}
	}
}
