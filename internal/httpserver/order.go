package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/bigasanhub/bigasan_hub/internal/domain"
	"github.com/bigasanhub/bigasan_hub/internal/logging"
	authmw "github.com/bigasanhub/bigasan_hub/internal/middleware/auth"
	"github.com/bigasanhub/bigasan_hub/internal/service"
	"github.com/bigasanhub/bigasan_hub/internal/transport"
	"github.com/bigasanhub/bigasan_hub/internal/util"
)

type OrderHTTP struct {
	Svc *service.OrderService
}

// GetBuyerOrders is the buyer's read-only order history.
func (h *OrderHTTP) GetBuyerOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.buyer_list")

	buyerID, ok := authmw.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, transport.ErrorResponse{Error: "unauthorized"})
	}

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	orders, err := h.Svc.ListBuyerOrders(ctx, buyerID, limit, offset)
	if err != nil {
		l.Error("buyer_list_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.ErrorResponse{Error: "internal server error"})
	}
	return c.JSON(http.StatusOK, orders)
}

// Cancel lets the buyer abort their own order before it completes.
func (h *OrderHTTP) Cancel(c echo.Context) error {
	return h.transition(c, domain.ActionCancel)
}

func (h *OrderHTTP) GetSellerOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.seller_list")

	sellerID := authmw.SellerID(c)
	if sellerID == 0 {
		return c.JSON(http.StatusForbidden, transport.ErrorResponse{Error: "no seller profile"})
	}

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	orders, err := h.Svc.ListSellerOrders(ctx, sellerID, limit, offset)
	if err != nil {
		l.Error("seller_list_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.ErrorResponse{Error: "internal server error"})
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHTTP) Accept(c echo.Context) error   { return h.transition(c, domain.ActionAccept) }
func (h *OrderHTTP) Reject(c echo.Context) error   { return h.transition(c, domain.ActionReject) }
func (h *OrderHTTP) Pack(c echo.Context) error     { return h.transition(c, domain.ActionPack) }
func (h *OrderHTTP) Ship(c echo.Context) error     { return h.transition(c, domain.ActionShip) }
func (h *OrderHTTP) Complete(c echo.Context) error { return h.transition(c, domain.ActionComplete) }

func (h *OrderHTTP) transition(c echo.Context, action domain.Action) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.transition", "action", action)

	userID, ok := authmw.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, transport.ErrorResponse{Error: "unauthorized"})
	}

	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("transition_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, transport.ErrorResponse{Error: "id is not an integer"})
	}

	order, err := h.Svc.Transition(ctx, uint(orderID), action, service.Actor{
		UserID: userID,
		Role:   authmw.Role(c),
	})
	if err != nil {
		l.Warn("transition_refused", "order_id", orderID, "error", err)
		return writeError(c, err)
	}

	l.Info("transition_success", "order_id", order.ID, "status", order.Status)
	return c.JSON(http.StatusOK, order)
}

// GetSellerStats backs the seller dashboard cards.
func (h *OrderHTTP) GetSellerStats(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.seller_stats")

	sellerID := authmw.SellerID(c)
	if sellerID == 0 {
		return c.JSON(http.StatusForbidden, transport.ErrorResponse{Error: "no seller profile"})
	}

	stats, err := h.Svc.SellerStats(ctx, sellerID)
	if err != nil {
		l.Error("seller_stats_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.ErrorResponse{Error: "internal server error"})
	}
	return c.JSON(http.StatusOK, stats)
}
