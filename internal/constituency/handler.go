package constituency

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/praja-pulse/campaign-backend/internal/shared"
)

type Handler struct {
	store  *Store
	logger *slog.Logger
}

func NewHandler(store *Store, logger *slog.Logger) *Handler {
	return &Handler{
		store:  store,
		logger: logger,
	}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/constituencies", h.List)
	g.GET("/constituencies/:id", h.Get)
}

// @Summary      List constituencies
// @Description  Returns the tracked assembly constituencies with their keyword sets
// @Tags         constituencies
// @Produce      json
// @Success      200  {array}   constituency.Constituency
// @Failure      500  {object}  shared.APIError
// @Router       /constituencies [get]
func (h *Handler) List(c echo.Context) error {
	out, err := h.store.List(c.Request().Context())
	if err != nil {
		h.logger.Error("failed to list constituencies", "error", err)
		return shared.InternalError("list_failed", "failed to list constituencies")
	}
	return c.JSON(http.StatusOK, out)
}

// @Summary      Get a constituency
// @Tags         constituencies
// @Produce      json
// @Param        id  path  int  true  "constituency id"
// @Success      200  {object}  constituency.Constituency
// @Failure      400  {object}  shared.APIError
// @Failure      404  {object}  shared.APIError
// @Router       /constituencies/{id} [get]
func (h *Handler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return shared.BadRequest("invalid_id", "id must be numeric")
	}

	out, err := h.store.GetByID(c.Request().Context(), uint(id))
	if err == shared.ErrNotFound {
		return shared.NotFound("constituency_not_found", "constituency not found")
	}
	if err != nil {
		h.logger.Error("failed to get constituency", "error", err, "id", id)
		return shared.InternalError("get_failed", "failed to get constituency")
	}

	return c.JSON(http.StatusOK, out)
}
