// Package match turns a MetricsFilter into the predicate every store adapter
// applies: in process for the memory store, rendered to SQL for Postgres.
package match

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"usage-insights-service/internal/metrics/core/domain"
)

// Nested tells the builder which keys the exploded collection carries.
// Criteria on carried keys move from the parent record to the elements.
type Nested struct {
	Model    bool
	Language bool
}

var ErrInvalidSegment = errors.New("invalid segment filter")

type Query struct {
	From      *time.Time
	To        *time.Time
	UserLogin string

	// Segment is the raw filter text; SegmentPattern is the escaped,
	// case-insensitive substring pattern built from it.
	Segment        string
	SegmentPattern *regexp.Regexp

	// Top-level criteria, matched against the language×model collection of
	// the parent record.
	Model    string
	Language string

	// Element criteria, matched against each exploded element.
	ElementModel    string
	ElementLanguage string
}

// Build normalizes f into a Query. Start dates are truncated to the calendar
// day so a record's day matches any instant within it. A segment that cannot
// be compiled into a pattern (invalid UTF-8) yields ErrInvalidSegment.
func Build(f domain.MetricsFilter, nested Nested) (Query, error) {
	q := Query{UserLogin: f.UserLogin}

	if f.StartDate != nil {
		from := domain.TruncateDay(*f.StartDate)
		q.From = &from
	}
	if f.EndDate != nil {
		to := f.EndDate.UTC()
		q.To = &to
	}

	if f.Segment != "" {
		pattern, err := regexp.Compile("(?i)" + regexp.QuoteMeta(f.Segment))
		if err != nil {
			return Query{}, fmt.Errorf("%w: %q", ErrInvalidSegment, f.Segment)
		}
		q.Segment = f.Segment
		q.SegmentPattern = pattern
	}

	if nested.Model {
		q.ElementModel = f.Model
	} else {
		q.Model = f.Model
	}
	if nested.Language {
		q.ElementLanguage = f.Language
	} else {
		q.Language = f.Language
	}

	return q, nil
}

// SegmentExpr is the escaped pattern without the case-insensitivity flag,
// for stores that take the flag separately (Postgres ~*).
func (q Query) SegmentExpr() string {
	if q.Segment == "" {
		return ""
	}
	return regexp.QuoteMeta(q.Segment)
}

// Matches reports whether the parent record satisfies the top-level criteria.
func (q Query) Matches(r *domain.MetricRecord) bool {
	if q.From != nil && r.Day.Before(*q.From) {
		return false
	}
	if q.To != nil && r.Day.After(*q.To) {
		return false
	}
	if q.UserLogin != "" && r.UserLogin != q.UserLogin {
		return false
	}
	if q.SegmentPattern != nil && !q.matchesSegment(r) {
		return false
	}
	if q.Model != "" || q.Language != "" {
		return q.matchesLanguageModel(r)
	}
	return true
}

// MatchesElement reports whether an exploded element satisfies the element
// criteria.
func (q Query) MatchesElement(e domain.DimensionTotals) bool {
	if q.ElementModel != "" && e.Model != q.ElementModel {
		return false
	}
	if q.ElementLanguage != "" && e.Language != q.ElementLanguage {
		return false
	}
	return true
}

// HasElementCriteria reports whether MatchesElement can reject anything.
func (q Query) HasElementCriteria() bool {
	return q.ElementModel != "" || q.ElementLanguage != ""
}

func (q Query) matchesSegment(r *domain.MetricRecord) bool {
	for _, e := range r.TotalsByFeature {
		if q.SegmentPattern.MatchString(e.Feature) {
			return true
		}
	}
	return false
}

func (q Query) matchesLanguageModel(r *domain.MetricRecord) bool {
	for _, e := range r.TotalsByLanguageModel {
		if q.Model != "" && e.Model != q.Model {
			continue
		}
		if q.Language != "" && e.Language != q.Language {
			continue
		}
		return true
	}
	return false
}
