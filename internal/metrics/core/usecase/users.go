package usecase

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"usage-insights-service/internal/metrics/core/domain"
	"usage-insights-service/internal/metrics/core/match"
)

// UsersList collapses matching records into one row per login, most active
// first. The nested collections of all the user's days are concatenated as
// they are, not re-aggregated.
//
// The ide field is the first IDE element seen for the user in day order; it
// is a representative value, not the most used one.
func (e *MetricsEngine) UsersList(ctx context.Context, f domain.MetricsFilter) ([]domain.UserRow, error) {
	q, err := buildQuery(f, match.Nested{})
	if err != nil {
		return nil, err
	}
	records, err := e.reader.FindRecords(ctx, q)
	if err != nil {
		return nil, err
	}

	index := make(map[string]*domain.UserRow)
	var order []string

	for i := range records {
		r := &records[i]
		u, ok := index[r.UserLogin]
		if !ok {
			u = &domain.UserRow{
				UserID:                  r.UserID,
				UserLogin:               r.UserLogin,
				TotalsByIDE:             []domain.DimensionTotals{},
				TotalsByFeature:         []domain.DimensionTotals{},
				TotalsByLanguageModel:   []domain.DimensionTotals{},
				TotalsByLanguageFeature: []domain.DimensionTotals{},
				TotalsByModelFeature:    []domain.DimensionTotals{},
			}
			index[r.UserLogin] = u
			order = append(order, r.UserLogin)
		}

		if u.DisplayName == "" {
			u.DisplayName = r.DisplayName
		}
		if u.IDE == "" && len(r.TotalsByIDE) > 0 {
			u.IDE = r.TotalsByIDE[0].IDE
		}
		u.Counters.Add(r.Counters)
		u.ActiveDays++
		u.UsedAgent = u.UsedAgent || r.UsedAgent
		u.UsedChat = u.UsedChat || r.UsedChat

		u.TotalsByIDE = append(u.TotalsByIDE, r.TotalsByIDE...)
		u.TotalsByFeature = append(u.TotalsByFeature, r.TotalsByFeature...)
		u.TotalsByLanguageModel = append(u.TotalsByLanguageModel, r.TotalsByLanguageModel...)
		u.TotalsByLanguageFeature = append(u.TotalsByLanguageFeature, r.TotalsByLanguageFeature...)
		u.TotalsByModelFeature = append(u.TotalsByModelFeature, r.TotalsByModelFeature...)
	}

	out := make([]domain.UserRow, 0, len(order))
	for _, login := range order {
		u := index[login]
		if u.DisplayName == "" {
			u.DisplayName = u.UserLogin
		}
		u.AcceptanceRate = u.Counters.AcceptanceRate()
		out = append(out, *u)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Interactions > out[j].Interactions })

	return out, nil
}

// UserChange reports the per-user change of one metric between two periods,
// joined by login. Users only active in the previous period are dropped.
func (e *MetricsEngine) UserChange(ctx context.Context, key MetricKey, current, previous domain.MetricsFilter) ([]domain.UserDelta, error) {
	metric, err := lookupMetric(key)
	if err != nil {
		return nil, err
	}

	var cur, prev []domain.UserRow
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		cur, err = e.UsersList(gctx, current)
		return err
	})
	g.Go(func() error {
		var err error
		prev, err = e.UsersList(gctx, previous)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	prevByLogin := make(map[string]float64, len(prev))
	for _, u := range prev {
		prevByLogin[u.UserLogin] = metric(u.Counters)
	}

	out := make([]domain.UserDelta, 0, len(cur))
	for _, u := range cur {
		c := metric(u.Counters)
		p := prevByLogin[u.UserLogin]
		out = append(out, domain.UserDelta{
			UserLogin:   u.UserLogin,
			DisplayName: u.DisplayName,
			Current:     c,
			Previous:    p,
			Delta:       c - p,
			DeltaPct:    deltaPct(c, p),
		})
	}

	return out, nil
}

// UsersFirstActive finds each user's earliest day among the records selected
// by f, then keeps the users whose first day falls inside window.
func (e *MetricsEngine) UsersFirstActive(ctx context.Context, f domain.MetricsFilter, window domain.DateWindow) ([]domain.UserFirstActive, error) {
	q, err := buildQuery(f, match.Nested{})
	if err != nil {
		return nil, err
	}
	records, err := e.reader.FindRecords(ctx, q)
	if err != nil {
		return nil, err
	}

	index := make(map[string]*domain.UserFirstActive)
	for i := range records {
		r := &records[i]
		u, ok := index[r.UserLogin]
		if !ok {
			index[r.UserLogin] = &domain.UserFirstActive{
				UserID:         r.UserID,
				UserLogin:      r.UserLogin,
				DisplayName:    r.DisplayName,
				FirstActiveDay: r.Day,
			}
			continue
		}
		if r.Day.Before(u.FirstActiveDay) {
			u.FirstActiveDay = r.Day
		}
		if u.DisplayName == "" {
			u.DisplayName = r.DisplayName
		}
	}

	out := make([]domain.UserFirstActive, 0, len(index))
	for _, u := range index {
		if !window.Contains(u.FirstActiveDay) {
			continue
		}
		if u.DisplayName == "" {
			u.DisplayName = u.UserLogin
		}
		out = append(out, *u)
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].FirstActiveDay.Equal(out[j].FirstActiveDay) {
			return out[i].FirstActiveDay.Before(out[j].FirstActiveDay)
		}
		return out[i].UserLogin < out[j].UserLogin
	})

	return out, nil
}

// UsersUsageRates reports which share of active users touched agent mode,
// chat, or both on at least one day.
func (e *MetricsEngine) UsersUsageRates(ctx context.Context, f domain.MetricsFilter) (domain.UsageRates, error) {
	q, err := buildQuery(f, match.Nested{})
	if err != nil {
		return domain.UsageRates{}, err
	}
	records, err := e.reader.FindRecords(ctx, q)
	if err != nil {
		return domain.UsageRates{}, err
	}

	type flags struct{ agent, chat bool }
	users := make(map[int64]*flags)
	for i := range records {
		r := &records[i]
		u, ok := users[r.UserID]
		if !ok {
			u = &flags{}
			users[r.UserID] = u
		}
		u.agent = u.agent || r.UsedAgent
		u.chat = u.chat || r.UsedChat
	}

	var out domain.UsageRates
	out.TotalUsers = int64(len(users))
	for _, u := range users {
		if u.agent {
			out.AgentUsers++
		}
		if u.chat {
			out.ChatUsers++
		}
		if u.agent && u.chat {
			out.BothUsers++
		}
	}

	total := float64(out.TotalUsers)
	out.AgentUsageRate = ratio(float64(out.AgentUsers), total)
	out.ChatUsageRate = ratio(float64(out.ChatUsers), total)
	out.BothUsageRate = ratio(float64(out.BothUsers), total)

	return out, nil
}
