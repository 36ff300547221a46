package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/bigasanhub/bigasan_hub/internal/logging"
	"github.com/bigasanhub/bigasan_hub/internal/service"
	"github.com/bigasanhub/bigasan_hub/internal/transport"
)

type AdminHTTP struct {
	Users   *service.UserService
	Catalog *service.CatalogService
}

func (h *AdminHTTP) GetUsers(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.get_users")

	users, err := h.Users.ListUsers(ctx)
	if err != nil {
		l.Error("get_users_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.ErrorResponse{Error: "internal server error"})
	}
	return c.JSON(http.StatusOK, users)
}

func (h *AdminHTTP) ApproveUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.approve_user")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("approve_user_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, transport.ErrorResponse{Error: "id is not an integer"})
	}

	user, err := h.Users.ApproveSeller(ctx, uint(id))
	if err != nil {
		l.Warn("approve_user_refused", "user_id", id, "error", err)
		return writeError(c, err)
	}

	l.Info("approve_user_success", "user_id", user.ID)
	return c.JSON(http.StatusOK, user)
}

func (h *AdminHTTP) DeactivateUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.deactivate_user")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("deactivate_user_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, transport.ErrorResponse{Error: "id is not an integer"})
	}

	user, err := h.Users.Deactivate(ctx, uint(id))
	if err != nil {
		l.Warn("deactivate_user_refused", "user_id", id, "error", err)
		return writeError(c, err)
	}

	l.Info("deactivate_user_success", "user_id", user.ID)
	return c.JSON(http.StatusOK, user)
}

func (h *AdminHTTP) CreateVariant(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.create_variant")

	var req transport.CreateVariantRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_variant_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, transport.ErrorResponse{Error: "invalid body"})
	}

	variant, err := h.Catalog.AddVariant(ctx, req.Name, req.Description, req.ImageURL)
	if err != nil {
		l.Warn("create_variant_refused", "error", err)
		return writeError(c, err)
	}

	l.Info("create_variant_success", "variant_id", variant.ID)
	return c.JSON(http.StatusCreated, variant)
}

func (h *AdminHTTP) GetStats(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.get_stats")

	stats, err := h.Users.AdminStats(ctx)
	if err != nil {
		l.Error("get_stats_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.ErrorResponse{Error: "internal server error"})
	}
	return c.JSON(http.StatusOK, stats)
}
