package domain

import "time"

// MetricsFilter holds the normalized query criteria shared by every engine
// operation. Empty strings and nil times mean "no constraint".
type MetricsFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Segment   string
	UserLogin string
	Model     string
	Language  string
}

// CompareEntityConfig names one series/side of a comparison and the criteria
// it layers on top of the base filter.
type CompareEntityConfig struct {
	Label     string `json:"label"`
	Segment   string `json:"segment,omitempty"`
	UserLogin string `json:"user_login,omitempty"`
	Model     string `json:"model,omitempty"`
	Language  string `json:"language,omitempty"`
}

// Merge returns base with the entity's non-empty criteria applied.
func (e CompareEntityConfig) Merge(base MetricsFilter) MetricsFilter {
	f := base
	if e.Segment != "" {
		f.Segment = e.Segment
	}
	if e.UserLogin != "" {
		f.UserLogin = e.UserLogin
	}
	if e.Model != "" {
		f.Model = e.Model
	}
	if e.Language != "" {
		f.Language = e.Language
	}
	return f
}

// DateWindow is an optional inclusive day range, used where a second window
// is applied on top of the one that selects source rows.
type DateWindow struct {
	From *time.Time
	To   *time.Time
}

// Contains reports whether day falls inside the window.
func (w DateWindow) Contains(day time.Time) bool {
	if w.From != nil && day.Before(TruncateDay(*w.From)) {
		return false
	}
	if w.To != nil && day.After(*w.To) {
		return false
	}
	return true
}
