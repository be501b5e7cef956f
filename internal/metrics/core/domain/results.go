package domain

import (
	"encoding/json"
	"time"
)

type Summary struct {
	Interactions         int64   `json:"total_interactions"`
	Suggestions          int64   `json:"total_suggestions"`
	Acceptances          int64   `json:"total_acceptances"`
	LocAdded             int64   `json:"total_loc_added"`
	LocDeleted           int64   `json:"total_loc_deleted"`
	LocSuggestedToAdd    int64   `json:"total_loc_suggested_to_add"`
	LocSuggestedToDelete int64   `json:"total_loc_suggested_to_delete"`
	ActiveUsersCount     int64   `json:"active_users_count"`
	ActiveDays           int64   `json:"active_days"`
	AcceptanceRate       float64 `json:"acceptance_rate"`
	UsedAgent            bool    `json:"used_agent"`
	UsedChat             bool    `json:"used_chat"`
}

// Counters converts the summary totals back into the shared counter shape.
func (s Summary) Counters() Counters {
	return Counters{
		Interactions:         s.Interactions,
		Generations:          s.Suggestions,
		Acceptances:          s.Acceptances,
		LocAdded:             s.LocAdded,
		LocDeleted:           s.LocDeleted,
		LocSuggestedToAdd:    s.LocSuggestedToAdd,
		LocSuggestedToDelete: s.LocSuggestedToDelete,
	}
}

type DailyTrend struct {
	Date                 string  `json:"date"`
	Interactions         int64   `json:"interactions"`
	Suggestions          int64   `json:"suggestions"`
	Acceptances          int64   `json:"acceptances"`
	LocAdded             int64   `json:"loc_added"`
	LocDeleted           int64   `json:"loc_deleted"`
	LocSuggestedToAdd    int64   `json:"loc_suggested_to_add"`
	LocSuggestedToDelete int64   `json:"loc_suggested_to_delete"`
	ActiveUsers          int64   `json:"active_users"`
	AcceptanceRate       float64 `json:"acceptance_rate"`
}

// DimensionKeys echoes the identity fields of a dimension group. Only the
// fields belonging to the dimension are populated.
type DimensionKeys struct {
	IDE      string `json:"ide,omitempty"`
	Feature  string `json:"feature,omitempty"`
	Language string `json:"language,omitempty"`
	Model    string `json:"model,omitempty"`
}

type BreakdownRow struct {
	Name string `json:"name"`
	DimensionKeys
	Interactions         int64   `json:"interactions"`
	Suggestions          int64   `json:"suggestions"`
	Acceptances          int64   `json:"acceptances"`
	LocAdded             int64   `json:"loc_added"`
	LocDeleted           int64   `json:"loc_deleted"`
	LocSuggestedToAdd    int64   `json:"loc_suggested_to_add"`
	LocSuggestedToDelete int64   `json:"loc_suggested_to_delete"`
	AcceptanceRate       float64 `json:"acceptance_rate"`
	ActiveUsersCount     int64   `json:"active_users_count"`
	InteractionsPerUser  float64 `json:"interactions_per_user"`
	LocAddedPerUser      float64 `json:"loc_added_per_user"`
	AgentUsageRate       float64 `json:"agent_usage_rate"`
	ChatUsageRate        float64 `json:"chat_usage_rate"`
}

// Counters converts the row totals back into the shared counter shape.
func (r BreakdownRow) Counters() Counters {
	return Counters{
		Interactions:         r.Interactions,
		Generations:          r.Suggestions,
		Acceptances:          r.Acceptances,
		LocAdded:             r.LocAdded,
		LocDeleted:           r.LocDeleted,
		LocSuggestedToAdd:    r.LocSuggestedToAdd,
		LocSuggestedToDelete: r.LocSuggestedToDelete,
	}
}

type BreakdownDelta struct {
	Name string `json:"name"`
	DimensionKeys
	Current  float64 `json:"current"`
	Previous float64 `json:"previous"`
	Delta    float64 `json:"delta"`
	DeltaPct float64 `json:"delta_pct"`
}

type StabilityRow struct {
	Name string `json:"name"`
	DimensionKeys
	Days                 int     `json:"days"`
	AvgValue             float64 `json:"avg_value"`
	StddevValue          float64 `json:"stddev_value"`
	CoefficientVariation float64 `json:"coefficient_variation"`
}

type UserRow struct {
	UserID      int64  `json:"user_id"`
	UserLogin   string `json:"user_login"`
	DisplayName string `json:"display_name"`
	IDE         string `json:"ide"`
	Counters
	AcceptanceRate float64 `json:"acceptance_rate"`
	ActiveDays     int64   `json:"active_days"`
	UsedAgent      bool    `json:"used_agent"`
	UsedChat       bool    `json:"used_chat"`

	TotalsByIDE             []DimensionTotals `json:"totals_by_ide"`
	TotalsByFeature         []DimensionTotals `json:"totals_by_feature"`
	TotalsByLanguageModel   []DimensionTotals `json:"totals_by_language_model"`
	TotalsByLanguageFeature []DimensionTotals `json:"totals_by_language_feature"`
	TotalsByModelFeature    []DimensionTotals `json:"totals_by_model_feature"`
}

type UserDelta struct {
	UserLogin   string  `json:"user_login"`
	DisplayName string  `json:"display_name"`
	Current     float64 `json:"current"`
	Previous    float64 `json:"previous"`
	Delta       float64 `json:"delta"`
	DeltaPct    float64 `json:"delta_pct"`
}

type UserFirstActive struct {
	UserID         int64     `json:"user_id"`
	UserLogin      string    `json:"user_login"`
	DisplayName    string    `json:"display_name"`
	FirstActiveDay time.Time `json:"first_active_day"`
}

type UsageRates struct {
	TotalUsers     int64   `json:"total_users"`
	AgentUsers     int64   `json:"agent_users"`
	ChatUsers      int64   `json:"chat_users"`
	BothUsers      int64   `json:"both_users"`
	AgentUsageRate float64 `json:"agent_usage_rate"`
	ChatUsageRate  float64 `json:"chat_usage_rate"`
	BothUsageRate  float64 `json:"both_usage_rate"`
}

// MultiSeriesRow is one day of a multi-entity trend. Values only carries the
// labels that had data on that day.
type MultiSeriesRow struct {
	Date   string
	Values map[string]float64
}

// MarshalJSON flattens the row into {"date": ..., "<label>": value, ...}.
func (r MultiSeriesRow) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.Values)+1)
	for label, v := range r.Values {
		out[label] = v
	}
	out["date"] = r.Date
	return json.Marshal(out)
}

type EntityComparison struct {
	Label    string  `json:"label"`
	Value    float64 `json:"value"`
	IsHigher bool    `json:"is_higher"`
	Summary  Summary `json:"summary"`
}

type ComparisonSummary struct {
	Metric  string           `json:"metric"`
	EntityA EntityComparison `json:"entity_a"`
	EntityB EntityComparison `json:"entity_b"`
	Gap     float64          `json:"gap"`
}
