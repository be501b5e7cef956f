package fiber

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"usage-insights-service/internal/snapshots/core/domain"
)

type SnapshotReader interface {
	Get(id string) (*domain.Entry, bool)
	GetData(id string, p domain.PageParams) (any, bool, error)
}

type SnapshotHandler struct {
	cache  SnapshotReader
	logger *zap.Logger
}

func NewSnapshotHandler(cache SnapshotReader, logger *zap.Logger) *SnapshotHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SnapshotHandler{cache: cache, logger: logger}
}

func (h *SnapshotHandler) Routes(r fiber.Router) {
	r.Get("/:id", h.GetSnapshot)
	r.Get("/:id/data", h.GetSnapshotData)
}

// GetSnapshot godoc
// @Summary Snapshot metadata
// @Tags Snapshots
// @Produce json
// @Param id path string true "Snapshot id"
// @Success 200 {object} EntryResponse
// @Failure 404 {object} ErrorResponse
// @Router /snapshots/{id} [get]
func (h *SnapshotHandler) GetSnapshot(c *fiber.Ctx) error {
	entry, ok := h.cache.Get(c.Params("id"))
	if !ok {
		return notFound(c)
	}

	return c.Status(http.StatusOK).JSON(EntryResponse{
		ID:        entry.ID,
		CreatedAt: entry.CreatedAt,
		Summary:   entry.Summary,
		Config:    entry.Config,
	})
}

// GetSnapshotData godoc
// @Summary Snapshot rows
// @Description Returns the stored payload. Bare lists without paging parameters come back unchanged;
// @Description otherwise the list is sorted, sliced and wrapped as {data, pagination}.
// @Tags Snapshots
// @Produce json
// @Param id path string true "Snapshot id"
// @Param skip query int false "Rows to skip (>= 0)"
// @Param limit query int false "Maximum rows (> 0)"
// @Param sortKey query string false "Row field to sort by (alias sort_key)"
// @Param sortOrder query string false "asc | desc (alias sort_order)"
// @Success 200 {object} domain.Page
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /snapshots/{id}/data [get]
func (h *SnapshotHandler) GetSnapshotData(c *fiber.Ctx) error {
	params, err := pageParams(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_query",
			Message: err.Error(),
		})
	}

	id := c.Params("id")
	data, ok, err := h.cache.GetData(id, params)
	if err != nil {
		h.logger.Error("snapshot pagination failed",
			zap.String("snapshot_id", id),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
	if !ok {
		return notFound(c)
	}

	return c.Status(http.StatusOK).JSON(data)
}

func notFound(c *fiber.Ctx) error {
	return c.Status(http.StatusNotFound).JSON(ErrorResponse{
		Error: "snapshot_not_found",
	})
}

func pageParams(c *fiber.Ctx) (domain.PageParams, error) {
	var p domain.PageParams

	if raw := c.Query("skip"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return p, fmt.Errorf("skip must be a non-negative integer, got %q", raw)
		}
		p.Skip = &v
	}
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			return p, fmt.Errorf("limit must be a positive integer, got %q", raw)
		}
		p.Limit = &v
	}

	p.SortKey = c.Query("sortKey", c.Query("sort_key"))

	switch order := domain.SortOrder(c.Query("sortOrder", c.Query("sort_order"))); order {
	case "", domain.SortAsc, domain.SortDesc:
		p.SortOrder = order
	default:
		return p, fmt.Errorf("sortOrder must be asc or desc, got %q", order)
	}

	return p, nil
}
