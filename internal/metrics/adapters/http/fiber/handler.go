package fiber

import (
	"context"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"usage-insights-service/internal/metrics/core/dimension"
	"usage-insights-service/internal/metrics/core/domain"
	"usage-insights-service/internal/metrics/core/usecase"
)

var errInvalidParam = errors.New("invalid parameter")

type MetricsEngine interface {
	Summary(ctx context.Context, f domain.MetricsFilter) (domain.Summary, error)
	DailyTrends(ctx context.Context, f domain.MetricsFilter) ([]domain.DailyTrend, error)
	Breakdown(ctx context.Context, d dimension.Dimension, f domain.MetricsFilter) ([]domain.BreakdownRow, error)
	BreakdownComparison(ctx context.Context, d dimension.Dimension, key usecase.MetricKey, current, previous domain.MetricsFilter) ([]domain.BreakdownDelta, error)
	BreakdownStability(ctx context.Context, d dimension.Dimension, key usecase.MetricKey, f domain.MetricsFilter) ([]domain.StabilityRow, error)
	UserChange(ctx context.Context, key usecase.MetricKey, current, previous domain.MetricsFilter) ([]domain.UserDelta, error)
	UsersList(ctx context.Context, f domain.MetricsFilter) ([]domain.UserRow, error)
	UsersFirstActive(ctx context.Context, f domain.MetricsFilter, window domain.DateWindow) ([]domain.UserFirstActive, error)
	UsersUsageRates(ctx context.Context, f domain.MetricsFilter) (domain.UsageRates, error)
	MultiSeriesTrends(ctx context.Context, entities []domain.CompareEntityConfig, key usecase.MetricKey, f domain.MetricsFilter) ([]domain.MultiSeriesRow, error)
	ComparisonSummary(ctx context.Context, a, b domain.CompareEntityConfig, key usecase.MetricKey, f domain.MetricsFilter) (domain.ComparisonSummary, error)
}

// SnapshotSaver stores a result for later paginated retrieval.
type SnapshotSaver interface {
	Save(payload, summary, config any) string
}

type MetricsHandler struct {
	engine    MetricsEngine
	snapshots SnapshotSaver
	logger    *zap.Logger
}

func NewMetricsHandler(engine MetricsEngine, snapshots SnapshotSaver, logger *zap.Logger) *MetricsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MetricsHandler{engine: engine, snapshots: snapshots, logger: logger}
}

func (h *MetricsHandler) Routes(r fiber.Router) {
	r.Get("/summary", h.GetSummary)
	r.Get("/trends/daily", h.GetDailyTrends)
	r.Post("/trends/multi", h.PostMultiSeriesTrends)
	r.Get("/breakdown/:dimension", h.GetBreakdown)
	r.Post("/breakdown/:dimension/compare", h.PostBreakdownComparison)
	r.Get("/breakdown/:dimension/stability", h.GetBreakdownStability)
	r.Get("/users", h.GetUsersList)
	r.Post("/users/change", h.PostUserChange)
	r.Get("/users/first-active", h.GetUsersFirstActive)
	r.Get("/users/usage-rates", h.GetUsersUsageRates)
	r.Post("/compare", h.PostComparisonSummary)
}

// GetSummary godoc
// @Summary Usage summary
// @Description Totals, distinct users, active days and acceptance rate for the filter
// @Tags Metrics
// @Produce json
// @Param start_date query string false "Inclusive start (RFC3339 or YYYY-MM-DD)"
// @Param end_date query string false "Inclusive end (RFC3339 or YYYY-MM-DD)"
// @Param segment query string false "Feature/team substring"
// @Param user_login query string false "Exact login"
// @Param model query string false "Model"
// @Param language query string false "Language"
// @Success 200 {object} domain.Summary
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /metrics/summary [get]
func (h *MetricsHandler) GetSummary(c *fiber.Ctx) error {
	f, err := queryFilter(c)
	if err != nil {
		return badRequest(c, err)
	}

	res, err := h.engine.Summary(c.UserContext(), f)
	if err != nil {
		return h.engineError(c, err)
	}
	return c.Status(http.StatusOK).JSON(res)
}

// GetDailyTrends godoc
// @Summary Daily trends
// @Tags Metrics
// @Produce json
// @Param snapshot query bool false "Cache the result and return a snapshot id"
// @Success 200 {array} domain.DailyTrend
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /metrics/trends/daily [get]
func (h *MetricsHandler) GetDailyTrends(c *fiber.Ctx) error {
	f, err := queryFilter(c)
	if err != nil {
		return badRequest(c, err)
	}

	res, err := h.engine.DailyTrends(c.UserContext(), f)
	if err != nil {
		return h.engineError(c, err)
	}
	return h.respondList(c, "daily_trends", res, len(res), queryOptions(c))
}

// PostMultiSeriesTrends godoc
// @Summary Multi-entity daily trends
// @Description One series per entity merged by day; days without data omit the entity
// @Tags Metrics
// @Accept json
// @Produce json
// @Param request body MultiSeriesRequest true "Entities and metric"
// @Success 200 {array} object
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /metrics/trends/multi [post]
func (h *MetricsHandler) PostMultiSeriesTrends(c *fiber.Ctx) error {
	var req MultiSeriesRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}
	f, err := req.Filter.toDomain()
	if err != nil {
		return badRequest(c, err)
	}

	res, err := h.engine.MultiSeriesTrends(c.UserContext(), req.Entities, usecase.MetricKey(req.Metric), f)
	if err != nil {
		return h.engineError(c, err)
	}
	return h.respondList(c, "multi_series_trends", res, len(res), mergeOptions(c, req.SnapshotOptions))
}

// GetBreakdown godoc
// @Summary Dimensional breakdown
// @Tags Metrics
// @Produce json
// @Param dimension path string true "ide | model | feature | language_model | language_feature | model_feature"
// @Param snapshot query bool false "Cache the result and return a snapshot id"
// @Success 200 {array} domain.BreakdownRow
// @Success 201 {object} SnapshotResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /metrics/breakdown/{dimension} [get]
func (h *MetricsHandler) GetBreakdown(c *fiber.Ctx) error {
	f, err := queryFilter(c)
	if err != nil {
		return badRequest(c, err)
	}

	res, err := h.engine.Breakdown(c.UserContext(), dimension.Dimension(c.Params("dimension")), f)
	if err != nil {
		return h.engineError(c, err)
	}
	return h.respondList(c, "breakdown", res, len(res), queryOptions(c))
}

// PostBreakdownComparison godoc
// @Summary Breakdown period comparison
// @Tags Metrics
// @Accept json
// @Produce json
// @Param dimension path string true "Breakdown dimension"
// @Param request body PeriodComparisonRequest true "Metric and periods"
// @Success 200 {array} domain.BreakdownDelta
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /metrics/breakdown/{dimension}/compare [post]
func (h *MetricsHandler) PostBreakdownComparison(c *fiber.Ctx) error {
	var req PeriodComparisonRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}
	current, previous, err := periods(req)
	if err != nil {
		return badRequest(c, err)
	}

	res, err := h.engine.BreakdownComparison(c.UserContext(), dimension.Dimension(c.Params("dimension")),
		usecase.MetricKey(req.Metric), current, previous)
	if err != nil {
		return h.engineError(c, err)
	}
	return h.respondList(c, "breakdown_comparison", res, len(res), mergeOptions(c, req.SnapshotOptions))
}

// GetBreakdownStability godoc
// @Summary Breakdown day-to-day stability
// @Tags Metrics
// @Produce json
// @Param dimension path string true "Breakdown dimension"
// @Param metric query string true "Metric key"
// @Success 200 {array} domain.StabilityRow
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /metrics/breakdown/{dimension}/stability [get]
func (h *MetricsHandler) GetBreakdownStability(c *fiber.Ctx) error {
	f, err := queryFilter(c)
	if err != nil {
		return badRequest(c, err)
	}

	res, err := h.engine.BreakdownStability(c.UserContext(), dimension.Dimension(c.Params("dimension")),
		usecase.MetricKey(c.Query("metric")), f)
	if err != nil {
		return h.engineError(c, err)
	}
	return h.respondList(c, "breakdown_stability", res, len(res), queryOptions(c))
}

// GetUsersList godoc
// @Summary Per-user totals
// @Tags Users
// @Produce json
// @Param snapshot query bool false "Cache the result and return a snapshot id"
// @Success 200 {array} domain.UserRow
// @Success 201 {object} SnapshotResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /metrics/users [get]
func (h *MetricsHandler) GetUsersList(c *fiber.Ctx) error {
	f, err := queryFilter(c)
	if err != nil {
		return badRequest(c, err)
	}

	res, err := h.engine.UsersList(c.UserContext(), f)
	if err != nil {
		return h.engineError(c, err)
	}
	return h.respondList(c, "users", res, len(res), queryOptions(c))
}

// PostUserChange godoc
// @Summary Per-user period comparison
// @Tags Users
// @Accept json
// @Produce json
// @Param request body PeriodComparisonRequest true "Metric and periods"
// @Success 200 {array} domain.UserDelta
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /metrics/users/change [post]
func (h *MetricsHandler) PostUserChange(c *fiber.Ctx) error {
	var req PeriodComparisonRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}
	current, previous, err := periods(req)
	if err != nil {
		return badRequest(c, err)
	}

	res, err := h.engine.UserChange(c.UserContext(), usecase.MetricKey(req.Metric), current, previous)
	if err != nil {
		return h.engineError(c, err)
	}
	return h.respondList(c, "user_change", res, len(res), mergeOptions(c, req.SnapshotOptions))
}

// GetUsersFirstActive godoc
// @Summary First active day per user
// @Tags Users
// @Produce json
// @Param first_active_from query string false "Keep users first active on or after"
// @Param first_active_to query string false "Keep users first active on or before"
// @Success 200 {array} domain.UserFirstActive
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /metrics/users/first-active [get]
func (h *MetricsHandler) GetUsersFirstActive(c *fiber.Ctx) error {
	f, err := queryFilter(c)
	if err != nil {
		return badRequest(c, err)
	}
	window, err := queryWindow(c)
	if err != nil {
		return badRequest(c, err)
	}

	res, err := h.engine.UsersFirstActive(c.UserContext(), f, window)
	if err != nil {
		return h.engineError(c, err)
	}
	return h.respondList(c, "users_first_active", res, len(res), queryOptions(c))
}

// GetUsersUsageRates godoc
// @Summary Agent and chat adoption
// @Tags Users
// @Produce json
// @Success 200 {object} domain.UsageRates
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /metrics/users/usage-rates [get]
func (h *MetricsHandler) GetUsersUsageRates(c *fiber.Ctx) error {
	f, err := queryFilter(c)
	if err != nil {
		return badRequest(c, err)
	}

	res, err := h.engine.UsersUsageRates(c.UserContext(), f)
	if err != nil {
		return h.engineError(c, err)
	}
	return c.Status(http.StatusOK).JSON(res)
}

// PostComparisonSummary godoc
// @Summary Two-entity comparison
// @Tags Metrics
// @Accept json
// @Produce json
// @Param request body ComparisonSummaryRequest true "Entities and metric"
// @Success 200 {object} domain.ComparisonSummary
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /metrics/compare [post]
func (h *MetricsHandler) PostComparisonSummary(c *fiber.Ctx) error {
	var req ComparisonSummaryRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}
	f, err := req.Filter.toDomain()
	if err != nil {
		return badRequest(c, err)
	}

	res, err := h.engine.ComparisonSummary(c.UserContext(), req.EntityA, req.EntityB, usecase.MetricKey(req.Metric), f)
	if err != nil {
		return h.engineError(c, err)
	}
	return c.Status(http.StatusOK).JSON(res)
}

// respondList returns rows directly, or caches them and returns the snapshot
// id when the caller asked for a snapshot.
func (h *MetricsHandler) respondList(c *fiber.Ctx, operation string, rows any, n int, opts SnapshotOptions) error {
	if !opts.Snapshot || h.snapshots == nil {
		return c.Status(http.StatusOK).JSON(rows)
	}

	summary := SnapshotSummary{Operation: operation, Rows: n}
	id := h.snapshots.Save(rows, summary, opts.UIConfig)

	return c.Status(http.StatusCreated).JSON(SnapshotResponse{
		SnapshotID: id,
		Summary:    summary,
	})
}

func (h *MetricsHandler) engineError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidDimension),
		errors.Is(err, usecase.ErrInvalidMetricKey),
		errors.Is(err, usecase.ErrInvalidFilter):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_query",
			Message: err.Error(),
		})
	default:
		h.logger.Error("metrics query failed",
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Error:   "invalid_query",
		Message: err.Error(),
	})
}

func invalidJSON(c *fiber.Ctx) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Error: "invalid_json",
	})
}

func queryFilter(c *fiber.Ctx) (domain.MetricsFilter, error) {
	return FilterRequest{
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
		Segment:   c.Query("segment"),
		UserLogin: c.Query("user_login"),
		Model:     c.Query("model"),
		Language:  c.Query("language"),
	}.toDomain()
}

func queryWindow(c *fiber.Ctx) (domain.DateWindow, error) {
	bounds, err := FilterRequest{
		StartDate: c.Query("first_active_from"),
		EndDate:   c.Query("first_active_to"),
	}.toDomain()
	if err != nil {
		return domain.DateWindow{}, err
	}
	return domain.DateWindow{From: bounds.StartDate, To: bounds.EndDate}, nil
}

func queryOptions(c *fiber.Ctx) SnapshotOptions {
	return SnapshotOptions{Snapshot: c.QueryBool("snapshot", false)}
}

func mergeOptions(c *fiber.Ctx, body SnapshotOptions) SnapshotOptions {
	body.Snapshot = body.Snapshot || c.QueryBool("snapshot", false)
	return body
}

func periods(req PeriodComparisonRequest) (domain.MetricsFilter, domain.MetricsFilter, error) {
	current, err := req.Current.toDomain()
	if err != nil {
		return current, domain.MetricsFilter{}, err
	}
	previous, err := req.Previous.toDomain()
	return current, previous, err
}
