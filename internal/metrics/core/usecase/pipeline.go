package usecase

import (
	"time"

	"usage-insights-service/internal/metrics/core/dimension"
	"usage-insights-service/internal/metrics/core/domain"
	"usage-insights-service/internal/metrics/core/match"
)

// ExplodedRow is one nested element tagged with the identity of the record
// it came from.
type ExplodedRow struct {
	Parent    int
	UserID    int64
	UserLogin string
	Day       time.Time
	UsedAgent bool
	UsedChat  bool
	Element   domain.DimensionTotals
}

// Explode flattens collection c of every record into rows, dropping elements
// that fail q's element criteria.
func Explode(records []domain.MetricRecord, c dimension.Collection, q match.Query) []ExplodedRow {
	var rows []ExplodedRow
	for i := range records {
		r := &records[i]
		for _, e := range c(r) {
			if !q.MatchesElement(e) {
				continue
			}
			rows = append(rows, ExplodedRow{
				Parent:    i,
				UserID:    r.UserID,
				UserLogin: r.UserLogin,
				Day:       r.Day,
				UsedAgent: r.UsedAgent,
				UsedChat:  r.UsedChat,
				Element:   e,
			})
		}
	}
	return rows
}

// Group accumulates the rows sharing one key.
type Group struct {
	Key      string
	First    ExplodedRow
	Counters domain.Counters

	users   map[int64]struct{}
	parents map[int]struct{}
	agent   int
	chat    int
}

func (g *Group) Users() int { return len(g.users) }

// AgentRate is the fraction of distinct parent records with used_agent.
func (g *Group) AgentRate() float64 { return ratio(float64(g.agent), float64(len(g.parents))) }

// ChatRate is the fraction of distinct parent records with used_chat.
func (g *Group) ChatRate() float64 { return ratio(float64(g.chat), float64(len(g.parents))) }

// GroupRows groups rows by key, keeping groups in first-seen order.
func GroupRows(rows []ExplodedRow, key func(ExplodedRow) string) []*Group {
	index := make(map[string]*Group)
	var groups []*Group

	for _, row := range rows {
		k := key(row)
		g, ok := index[k]
		if !ok {
			g = &Group{
				Key:     k,
				First:   row,
				users:   make(map[int64]struct{}),
				parents: make(map[int]struct{}),
			}
			index[k] = g
			groups = append(groups, g)
		}

		g.Counters.Add(row.Element.Counters)
		g.users[row.UserID] = struct{}{}
		if _, seen := g.parents[row.Parent]; !seen {
			g.parents[row.Parent] = struct{}{}
			if row.UsedAgent {
				g.agent++
			}
			if row.UsedChat {
				g.chat++
			}
		}
	}

	return groups
}
