package usecase_test

import (
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"usage-insights-service/internal/snapshots/core/domain"
	"usage-insights-service/internal/snapshots/core/usecase"
)

func intPtr(v int) *int { return &v }

type scoreRow struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

func scores() []scoreRow {
	return []scoreRow{{"a", 50}, {"b", 100}, {"c", 75}}
}

func decodePage(t *testing.T, v any) ([]scoreRow, domain.Pagination) {
	t.Helper()
	page, ok := v.(domain.Page)
	require.True(t, ok, "expected a domain.Page, got %T", v)

	rows := make([]scoreRow, len(page.Data))
	for i, raw := range page.Data {
		require.NoError(t, json.Unmarshal(raw, &rows[i]))
	}
	return rows, page.Pagination
}

// ------------------------------------------------------------
// SAVE / GET
// ------------------------------------------------------------

func TestSnapshotCache_SaveThenGet(t *testing.T) {
	cache := usecase.NewSnapshotCache(usecase.DefaultCapacity, usecase.DefaultTTL, usecase.WithClock(quartz.NewMock(t)))

	payload := scores()
	summary := map[string]any{"rows": 3}
	config := map[string]any{"chart": "bar"}

	id := cache.Save(payload, summary, config)
	require.NotEmpty(t, id)

	e, ok := cache.Get(id)
	require.True(t, ok)
	require.Equal(t, id, e.ID)
	require.Equal(t, payload, e.Payload)
	require.Equal(t, summary, e.Summary)
	require.Equal(t, config, e.Config)
}

func TestSnapshotCache_UnknownID(t *testing.T) {
	cache := usecase.NewSnapshotCache(0, 0)

	e, ok := cache.Get("missing")
	require.False(t, ok)
	require.Nil(t, e)

	data, ok, err := cache.GetData("missing", domain.PageParams{})
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, data)
}

func TestSnapshotCache_EvictsEarliestInsertedWhenFull(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := usecase.NewMetrics(reg)
	cache := usecase.NewSnapshotCache(50, time.Hour, usecase.WithMetrics(metrics))

	ids := make([]string, 0, 51)
	for i := 0; i < 51; i++ {
		ids = append(ids, cache.Save([]int{i}, nil, nil))
	}

	_, ok := cache.Get(ids[0])
	require.False(t, ok, "first inserted snapshot should be evicted")

	e, ok := cache.Get(ids[50])
	require.True(t, ok)
	require.Equal(t, []int{50}, e.Payload)

	_, ok = cache.Get(ids[1])
	require.True(t, ok)
	require.Equal(t, 50, cache.Len())

	count, err := testutil.GatherAndCount(reg, "usage_insights_snapshot_cache_evicted_total")
	require.NoError(t, err)
	require.Equal(t, 1, count)
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(`
# HELP usage_insights_snapshot_cache_evicted_total Snapshots dropped because the cache was full.
# TYPE usage_insights_snapshot_cache_evicted_total counter
usage_insights_snapshot_cache_evicted_total 1
`), "usage_insights_snapshot_cache_evicted_total"))
}

func TestSnapshotCache_ReadsDoNotRefreshEvictionOrder(t *testing.T) {
	cache := usecase.NewSnapshotCache(2, time.Hour)

	first := cache.Save("first", nil, nil)
	second := cache.Save("second", nil, nil)

	// reading first does not protect it: eviction is by insertion order
	_, ok := cache.Get(first)
	require.True(t, ok)

	third := cache.Save("third", nil, nil)

	_, ok = cache.Get(first)
	require.False(t, ok)
	_, ok = cache.Get(second)
	require.True(t, ok)
	_, ok = cache.Get(third)
	require.True(t, ok)
}

// ------------------------------------------------------------
// TTL
// ------------------------------------------------------------

func TestSnapshotCache_ExpiresAfterTTL(t *testing.T) {
	clock := quartz.NewMock(t)
	cache := usecase.NewSnapshotCache(usecase.DefaultCapacity, 10*time.Minute, usecase.WithClock(clock))

	id := cache.Save(scores(), nil, nil)

	clock.Advance(10 * time.Minute)
	_, ok := cache.Get(id)
	require.True(t, ok, "exactly at the TTL the snapshot is still served")

	clock.Advance(time.Minute)
	_, ok = cache.Get(id)
	require.False(t, ok)
	require.Zero(t, cache.Len(), "expired snapshot is deleted on read")

	data, ok, err := cache.GetData(id, domain.PageParams{})
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, data)
}

// ------------------------------------------------------------
// GET DATA
// ------------------------------------------------------------

func TestSnapshotCache_GetDataBareListUnchanged(t *testing.T) {
	cache := usecase.NewSnapshotCache(0, 0)
	payload := scores()
	id := cache.Save(payload, nil, nil)

	data, ok, err := cache.GetData(id, domain.PageParams{})
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, payload, data)
}

// unencodableRow fails whenever it is marshalled.
type unencodableRow scoreRow

func (unencodableRow) MarshalJSON() ([]byte, error) {
	return nil, errors.New("marshalled")
}

func TestSnapshotCache_GetDataBareListSkipsEncoding(t *testing.T) {
	cache := usecase.NewSnapshotCache(0, 0)
	payload := []unencodableRow{{"a", 50}, {"b", 100}}
	id := cache.Save(payload, nil, nil)

	data, ok, err := cache.GetData(id, domain.PageParams{})
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, payload, data)

	// paging needs the encoded rows
	_, ok, err = cache.GetData(id, domain.PageParams{Limit: intPtr(1)})
	require.True(t, ok)
	require.Error(t, err)
}

func TestSnapshotCache_GetDataSortDesc(t *testing.T) {
	cache := usecase.NewSnapshotCache(0, 0)
	id := cache.Save(scores(), nil, nil)

	data, ok, err := cache.GetData(id, domain.PageParams{SortKey: "score", SortOrder: domain.SortDesc})
	require.NoError(t, err)
	require.True(t, ok)

	rows, pagination := decodePage(t, data)
	require.Equal(t, []int{100, 75, 50}, []int{rows[0].Score, rows[1].Score, rows[2].Score})
	require.Equal(t, domain.Pagination{Total: 3, Skip: 0, Limit: 3}, pagination)
}

func TestSnapshotCache_GetDataSortAndSlice(t *testing.T) {
	cache := usecase.NewSnapshotCache(0, 0)
	id := cache.Save(scores(), nil, nil)

	data, _, err := cache.GetData(id, domain.PageParams{
		Skip:      intPtr(1),
		Limit:     intPtr(1),
		SortKey:   "score",
		SortOrder: domain.SortDesc,
	})
	require.NoError(t, err)

	rows, pagination := decodePage(t, data)
	require.Len(t, rows, 1)
	require.Equal(t, 75, rows[0].Score)
	require.Equal(t, domain.Pagination{Total: 3, Skip: 1, Limit: 1}, pagination)
}

func TestSnapshotCache_GetDataLexicalAndNumericStrings(t *testing.T) {
	cache := usecase.NewSnapshotCache(0, 0)
	id := cache.Save([]map[string]any{
		{"name": "b", "v": "10"},
		{"name": "a", "v": "9"},
		{"name": "c", "v": "x"},
	}, nil, nil)

	data, _, err := cache.GetData(id, domain.PageParams{SortKey: "name", SortOrder: domain.SortAsc})
	require.NoError(t, err)
	page := data.(domain.Page)
	require.JSONEq(t, `{"name":"a","v":"9"}`, string(page.Data[0]))

	// "9" and "10" are both numeric so compare as numbers
	data, _, err = cache.GetData(id, domain.PageParams{SortKey: "v", Limit: intPtr(2)})
	require.NoError(t, err)
	page = data.(domain.Page)
	require.JSONEq(t, `{"name":"a","v":"9"}`, string(page.Data[0]))
	require.JSONEq(t, `{"name":"b","v":"10"}`, string(page.Data[1]))
}

func TestSnapshotCache_GetDataObjectPayload(t *testing.T) {
	cache := usecase.NewSnapshotCache(0, 0)
	id := cache.Save(map[string]any{
		"title": "Top users",
		"rows":  scores(),
	}, nil, nil)

	data, _, err := cache.GetData(id, domain.PageParams{SortKey: "score", Skip: intPtr(2)})
	require.NoError(t, err)

	rows, pagination := decodePage(t, data)
	require.Len(t, rows, 1)
	require.Equal(t, 100, rows[0].Score)
	require.Equal(t, 3, pagination.Total)
}

func TestSnapshotCache_GetDataObjectPayloadWithoutParams(t *testing.T) {
	cache := usecase.NewSnapshotCache(0, 0)
	id := cache.Save(map[string]any{
		"title": "Top users",
		"rows":  []int{1, 2},
	}, nil, nil)

	data, ok, err := cache.GetData(id, domain.PageParams{})
	require.NoError(t, err)
	require.True(t, ok)

	// the list property is always wrapped; sibling properties are not carried
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	require.JSONEq(t, `{"data":[1,2],"pagination":{"total":2,"skip":0,"limit":2}}`, string(raw))
}

func TestSnapshotCache_GetDataObjectWithoutList(t *testing.T) {
	cache := usecase.NewSnapshotCache(0, 0)
	payload := map[string]any{"title": "Top users"}
	id := cache.Save(payload, nil, nil)

	data, _, err := cache.GetData(id, domain.PageParams{Limit: intPtr(1)})
	require.NoError(t, err)
	require.Equal(t, payload, data)
}

func TestSnapshotCache_SkipPastEnd(t *testing.T) {
	cache := usecase.NewSnapshotCache(0, 0)
	id := cache.Save(scores(), nil, nil)

	data, _, err := cache.GetData(id, domain.PageParams{Skip: intPtr(10), Limit: intPtr(5)})
	require.NoError(t, err)

	rows, pagination := decodePage(t, data)
	require.Empty(t, rows)
	require.Equal(t, 3, pagination.Total)
}

func TestSnapshotCache_ConcurrentSaves(t *testing.T) {
	cache := usecase.NewSnapshotCache(10, time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := cache.Save(i, nil, nil)
			cache.Get(id)
		}()
	}
	wg.Wait()

	require.Equal(t, 10, cache.Len())
}
