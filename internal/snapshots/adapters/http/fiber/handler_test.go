package fiber_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	httpadapter "usage-insights-service/internal/snapshots/adapters/http/fiber"
	"usage-insights-service/internal/snapshots/core/domain"
	"usage-insights-service/internal/snapshots/core/usecase"
)

type row struct {
	Login string `json:"login"`
	Score int    `json:"score"`
}

func setupApp(t *testing.T) (*fiber.App, *usecase.SnapshotCache, *quartz.Mock) {
	t.Helper()
	clock := quartz.NewMock(t)
	cache := usecase.NewSnapshotCache(usecase.DefaultCapacity, usecase.DefaultTTL, usecase.WithClock(clock))

	app := fiber.New()
	httpadapter.NewSnapshotHandler(cache, nil).Routes(app.Group("/snapshots"))
	return app, cache, clock
}

// ------------------------------------------------------------
// GET /snapshots/:id
// ------------------------------------------------------------

func TestGetSnapshot_Metadata(t *testing.T) {
	app, cache, _ := setupApp(t)
	id := cache.Save([]row{{"a", 1}}, map[string]int{"rows": 1}, map[string]string{"chart": "bar"})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/snapshots/"+id, nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, id, body["id"])
	require.Equal(t, map[string]any{"chart": "bar"}, body["config"])
	require.Equal(t, map[string]any{"rows": float64(1)}, body["summary"])
}

func TestGetSnapshot_UnknownID(t *testing.T) {
	app, _, _ := setupApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/snapshots/missing", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetSnapshot_Expired(t *testing.T) {
	app, cache, clock := setupApp(t)
	id := cache.Save([]row{{"a", 1}}, nil, nil)

	clock.Advance(11 * time.Minute)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/snapshots/"+id+"/data", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ------------------------------------------------------------
// GET /snapshots/:id/data
// ------------------------------------------------------------

func TestGetSnapshotData_BareListUnchanged(t *testing.T) {
	app, cache, _ := setupApp(t)
	id := cache.Save([]row{{"a", 1}, {"b", 2}}, nil, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/snapshots/"+id+"/data", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rows []row
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rows))
	require.Equal(t, []row{{"a", 1}, {"b", 2}}, rows)
}

func TestGetSnapshotData_SortedPage(t *testing.T) {
	app, cache, _ := setupApp(t)
	id := cache.Save([]row{{"a", 10}, {"b", 30}, {"c", 20}}, nil, nil)

	url := "/snapshots/" + id + "/data?sortKey=score&sortOrder=desc&skip=1&limit=1"
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, url, nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var page struct {
		Data       []row             `json:"data"`
		Pagination domain.Pagination `json:"pagination"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	require.Equal(t, []row{{"c", 20}}, page.Data)
	require.Equal(t, domain.Pagination{Total: 3, Skip: 1, Limit: 1}, page.Pagination)
}

func TestGetSnapshotData_InvalidParams(t *testing.T) {
	app, cache, _ := setupApp(t)
	id := cache.Save([]row{{"a", 1}}, nil, nil)

	for _, q := range []string{"skip=-1", "limit=0", "limit=abc", "sortOrder=up", "sort_order=up"} {
		t.Run(q, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/snapshots/"+id+"/data?"+q, nil))
			require.NoError(t, err)
			require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}
