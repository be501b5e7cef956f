package domain

import "time"

// Counters are the scalar activity totals carried by a record and by every
// nested dimension element.
type Counters struct {
	Interactions         int64 `json:"interaction_count"`
	Generations          int64 `json:"generation_count"`
	Acceptances          int64 `json:"acceptance_count"`
	LocAdded             int64 `json:"loc_added"`
	LocDeleted           int64 `json:"loc_deleted"`
	LocSuggestedToAdd    int64 `json:"loc_suggested_to_add"`
	LocSuggestedToDelete int64 `json:"loc_suggested_to_delete"`
}

// Add sums o into c.
func (c *Counters) Add(o Counters) {
	c.Interactions += o.Interactions
	c.Generations += o.Generations
	c.Acceptances += o.Acceptances
	c.LocAdded += o.LocAdded
	c.LocDeleted += o.LocDeleted
	c.LocSuggestedToAdd += o.LocSuggestedToAdd
	c.LocSuggestedToDelete += o.LocSuggestedToDelete
}

// AcceptanceRate is acceptances / generations, 0 when nothing was generated.
func (c Counters) AcceptanceRate() float64 {
	if c.Generations == 0 {
		return 0
	}
	return float64(c.Acceptances) / float64(c.Generations)
}

// DimensionTotals is one element of a nested sub-total collection. Only the
// key fields relevant to its collection are set.
type DimensionTotals struct {
	IDE      string `json:"ide,omitempty"`
	Feature  string `json:"feature,omitempty"`
	Language string `json:"language,omitempty"`
	Model    string `json:"model,omitempty"`
	Counters
}

// MetricRecord is one user's activity for one calendar day.
type MetricRecord struct {
	UserID       int64     `json:"user_id"`
	UserLogin    string    `json:"user_login"`
	DisplayName  string    `json:"display_name,omitempty"`
	EnterpriseID string    `json:"enterprise_id"`
	Day          time.Time `json:"day"`
	Counters
	UsedAgent bool `json:"used_agent"`
	UsedChat  bool `json:"used_chat"`

	TotalsByIDE             []DimensionTotals `json:"totals_by_ide"`
	TotalsByFeature         []DimensionTotals `json:"totals_by_feature"`
	TotalsByLanguageModel   []DimensionTotals `json:"totals_by_language_model"`
	TotalsByLanguageFeature []DimensionTotals `json:"totals_by_language_feature"`
	TotalsByModelFeature    []DimensionTotals `json:"totals_by_model_feature"`
}

const dayLayout = "2006-01-02"

// TruncateDay returns t at UTC midnight.
func TruncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DayKey formats the calendar day of t as YYYY-MM-DD.
func DayKey(t time.Time) string {
	return t.UTC().Format(dayLayout)
}

// ParseDay accepts RFC3339 instants or bare YYYY-MM-DD dates.
func ParseDay(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	return time.Parse(dayLayout, s)
}
