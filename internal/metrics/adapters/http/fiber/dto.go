package fiber

import (
	"fmt"
	"unicode/utf8"

	"usage-insights-service/internal/metrics/core/domain"
)

// FilterRequest is the JSON form of a MetricsFilter. Dates are RFC3339
// instants or YYYY-MM-DD.
type FilterRequest struct {
	StartDate string `json:"start_date,omitempty" example:"2025-03-01"`
	EndDate   string `json:"end_date,omitempty" example:"2025-03-31"`
	Segment   string `json:"segment,omitempty" example:"Backend"`
	UserLogin string `json:"user_login,omitempty"`
	Model     string `json:"model,omitempty"`
	Language  string `json:"language,omitempty"`
}

func (r FilterRequest) toDomain() (domain.MetricsFilter, error) {
	for name, v := range map[string]string{
		"segment":    r.Segment,
		"user_login": r.UserLogin,
		"model":      r.Model,
		"language":   r.Language,
	} {
		if !utf8.ValidString(v) {
			return domain.MetricsFilter{}, fmt.Errorf("%w: %s is not valid UTF-8", errInvalidParam, name)
		}
	}

	f := domain.MetricsFilter{
		Segment:   r.Segment,
		UserLogin: r.UserLogin,
		Model:     r.Model,
		Language:  r.Language,
	}

	if r.StartDate != "" {
		t, err := domain.ParseDay(r.StartDate)
		if err != nil {
			return f, fmt.Errorf("%w: start_date %q", errInvalidParam, r.StartDate)
		}
		f.StartDate = &t
	}
	if r.EndDate != "" {
		t, err := domain.ParseDay(r.EndDate)
		if err != nil {
			return f, fmt.Errorf("%w: end_date %q", errInvalidParam, r.EndDate)
		}
		f.EndDate = &t
	}

	return f, nil
}

// SnapshotOptions ask for the result to be cached instead of returned.
type SnapshotOptions struct {
	Snapshot bool `json:"snapshot,omitempty"`
	UIConfig any  `json:"ui_config,omitempty"`
}

type PeriodComparisonRequest struct {
	Metric   string        `json:"metric" example:"interactions"`
	Current  FilterRequest `json:"current"`
	Previous FilterRequest `json:"previous"`
	SnapshotOptions
}

type MultiSeriesRequest struct {
	Metric   string                       `json:"metric" example:"acceptance_rate"`
	Entities []domain.CompareEntityConfig `json:"entities"`
	Filter   FilterRequest                `json:"filter"`
	SnapshotOptions
}

type ComparisonSummaryRequest struct {
	Metric  string                     `json:"metric" example:"interactions"`
	EntityA domain.CompareEntityConfig `json:"entity_a"`
	EntityB domain.CompareEntityConfig `json:"entity_b"`
	Filter  FilterRequest              `json:"filter"`
}

type SnapshotResponse struct {
	SnapshotID string          `json:"snapshot_id"`
	Summary    SnapshotSummary `json:"summary"`
}

type SnapshotSummary struct {
	Operation string `json:"operation"`
	Rows      int    `json:"rows"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_query"`
	Message string `json:"message" example:"invalid breakdown dimension"`
}
