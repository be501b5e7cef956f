package match

import (
	"errors"
	"testing"
	"time"

	"usage-insights-service/internal/metrics/core/domain"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func ptr(t time.Time) *time.Time { return &t }

func mustBuild(t *testing.T, f domain.MetricsFilter, nested Nested) Query {
	t.Helper()
	q, err := Build(f, nested)
	if err != nil {
		t.Fatalf("build query: %v", err)
	}
	return q
}

func record() *domain.MetricRecord {
	return &domain.MetricRecord{
		UserID:    1,
		UserLogin: "octocat",
		Day:       day("2025-03-10"),
		TotalsByFeature: []domain.DimensionTotals{
			{Feature: "section_Backend-Core"},
			{Feature: "section_Frontend"},
		},
		TotalsByLanguageModel: []domain.DimensionTotals{
			{Language: "go", Model: "gpt-4o"},
			{Language: "python", Model: "claude"},
		},
	}
}

// ------------------------------------------------------------
// DATE BOUNDS
// ------------------------------------------------------------

func TestMatches_DateBoundsInclusive(t *testing.T) {
	tests := []struct {
		name string
		f    domain.MetricsFilter
		want bool
	}{
		{"unbounded", domain.MetricsFilter{}, true},
		{"start equals day", domain.MetricsFilter{StartDate: ptr(day("2025-03-10"))}, true},
		{"start mid-day of record day", domain.MetricsFilter{StartDate: ptr(day("2025-03-10").Add(15 * time.Hour))}, true},
		{"end equals day", domain.MetricsFilter{EndDate: ptr(day("2025-03-10"))}, true},
		{"start after day", domain.MetricsFilter{StartDate: ptr(day("2025-03-11"))}, false},
		{"end before day", domain.MetricsFilter{EndDate: ptr(day("2025-03-09"))}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := mustBuild(t, tt.f, Nested{})
			if got := q.Matches(record()); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

// ------------------------------------------------------------
// SEGMENT
// ------------------------------------------------------------

func TestMatches_SegmentSubstringCaseInsensitive(t *testing.T) {
	tests := []struct {
		segment string
		want    bool
	}{
		{"Backend", true},
		{"backend-core", true},
		{"FRONTEND", true},
		{"Mobile", false},
		{"Back.nd", false}, // metacharacters are literal
		{"(", false},
	}

	for _, tt := range tests {
		t.Run(tt.segment, func(t *testing.T) {
			q := mustBuild(t, domain.MetricsFilter{Segment: tt.segment}, Nested{})
			if got := q.Matches(record()); got != tt.want {
				t.Fatalf("segment %q: expected %v, got %v", tt.segment, tt.want, got)
			}
		})
	}
}

func TestMatches_SegmentEscapesRegexMeta(t *testing.T) {
	r := record()
	r.TotalsByFeature = []domain.DimensionTotals{{Feature: "section_C++ (legacy)"}}

	q := mustBuild(t, domain.MetricsFilter{Segment: "c++ (LEGACY"}, Nested{})
	if !q.Matches(r) {
		t.Fatalf("expected literal match on escaped segment")
	}
	if q.SegmentExpr() != `c\+\+ \(LEGACY` {
		t.Fatalf("unexpected segment expr: %s", q.SegmentExpr())
	}
}

func TestBuild_InvalidUTF8Segment(t *testing.T) {
	for _, segment := range []string{"Back\xffend", "\xff", "\xc3"} {
		_, err := Build(domain.MetricsFilter{Segment: segment}, Nested{})
		if !errors.Is(err, ErrInvalidSegment) {
			t.Fatalf("segment %q: expected ErrInvalidSegment, got %v", segment, err)
		}
	}
}

func TestBuild_UnicodeSegment(t *testing.T) {
	r := record()
	r.TotalsByFeature = []domain.DimensionTotals{{Feature: "section_Équipe-Données"}}

	if !mustBuild(t, domain.MetricsFilter{Segment: "équipe"}, Nested{}).Matches(r) {
		t.Fatalf("expected case-insensitive match on non-ASCII segment")
	}
}

// ------------------------------------------------------------
// USER / MODEL / LANGUAGE
// ------------------------------------------------------------

func TestMatches_UserLoginExact(t *testing.T) {
	if !mustBuild(t, domain.MetricsFilter{UserLogin: "octocat"}, Nested{}).Matches(record()) {
		t.Fatalf("expected exact login to match")
	}
	if mustBuild(t, domain.MetricsFilter{UserLogin: "octo"}, Nested{}).Matches(record()) {
		t.Fatalf("expected partial login not to match")
	}
}

func TestBuild_TopLevelModelLanguage(t *testing.T) {
	q := mustBuild(t, domain.MetricsFilter{Model: "gpt-4o", Language: "go"}, Nested{})
	if q.Model != "gpt-4o" || q.Language != "go" {
		t.Fatalf("expected top-level criteria, got %+v", q)
	}
	if q.HasElementCriteria() {
		t.Fatalf("expected no element criteria")
	}
	if !q.Matches(record()) {
		t.Fatalf("expected record with go/gpt-4o pair to match")
	}

	// both criteria must hold on the same element
	q = mustBuild(t, domain.MetricsFilter{Model: "gpt-4o", Language: "python"}, Nested{})
	if q.Matches(record()) {
		t.Fatalf("expected mismatched pair not to match")
	}
}

func TestBuild_NestedCriteriaMoveToElements(t *testing.T) {
	q := mustBuild(t, domain.MetricsFilter{Model: "claude", Language: "go"}, Nested{Model: true})
	if q.Model != "" || q.ElementModel != "claude" {
		t.Fatalf("expected model on element, got %+v", q)
	}
	if q.Language != "go" || q.ElementLanguage != "" {
		t.Fatalf("expected language at top level, got %+v", q)
	}

	// parent not rejected by the element-level model
	if !q.Matches(record()) {
		t.Fatalf("expected parent to match")
	}
	if !q.MatchesElement(domain.DimensionTotals{Model: "claude"}) {
		t.Fatalf("expected claude element to match")
	}
	if q.MatchesElement(domain.DimensionTotals{Model: "gpt-4o"}) {
		t.Fatalf("expected gpt-4o element not to match")
	}
}
