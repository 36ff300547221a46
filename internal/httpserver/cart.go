package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bigasanhub/bigasan_hub/internal/domain"
	"github.com/bigasanhub/bigasan_hub/internal/logging"
	authmw "github.com/bigasanhub/bigasan_hub/internal/middleware/auth"
	"github.com/bigasanhub/bigasan_hub/internal/service"
	"github.com/bigasanhub/bigasan_hub/internal/transport"
	"github.com/bigasanhub/bigasan_hub/internal/util"
)

type CartHTTP struct {
	Svc *service.CartService
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.get")

	buyerID, ok := authmw.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, transport.ErrorResponse{Error: "unauthorized"})
	}

	items, err := h.Svc.GetCart(ctx, buyerID)
	if err != nil {
		l.Error("get_cart_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.ErrorResponse{Error: "internal server error"})
	}

	method := domain.DeliveryMethod(c.QueryParam("delivery_method"))
	if !method.Valid() {
		method = domain.DeliveryMethodPickup
	}

	return c.JSON(http.StatusOK, map[string]any{
		"items":  items,
		"totals": service.CartTotals(items, method),
	})
}

func (h *CartHTTP) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add")

	buyerID, ok := authmw.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, transport.ErrorResponse{Error: "unauthorized"})
	}

	var req transport.AddToCartRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("add_to_cart_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, transport.ErrorResponse{Error: "invalid body"})
	}

	item, err := h.Svc.AddToCart(ctx, buyerID, req.VariantID, req.SellerID, req.Unit, req.Quantity)
	if err != nil {
		l.Warn("add_to_cart_refused", "error", err)
		return writeError(c, err)
	}

	l.Info("add_to_cart_success", "variant_id", req.VariantID, "seller_id", req.SellerID)
	return c.JSON(http.StatusCreated, item)
}

func (h *CartHTTP) RemoveItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.remove_item")

	buyerID, ok := authmw.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, transport.ErrorResponse{Error: "unauthorized"})
	}

	variantID := util.ParseIntDefault(c.QueryParam("variant_id"), 0)
	sellerID := util.ParseIntDefault(c.QueryParam("seller_id"), 0)
	unit := domain.Unit(c.QueryParam("unit"))
	if variantID <= 0 || sellerID <= 0 || !unit.Valid() {
		return c.JSON(http.StatusBadRequest, transport.ErrorResponse{Error: "variant_id, seller_id and unit required"})
	}

	if err := h.Svc.RemoveItem(ctx, buyerID, uint(variantID), uint(sellerID), unit); err != nil {
		l.Error("remove_item_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.ErrorResponse{Error: "internal server error"})
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *CartHTTP) ClearCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.clear")

	buyerID, ok := authmw.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, transport.ErrorResponse{Error: "unauthorized"})
	}

	if err := h.Svc.ClearCart(ctx, buyerID); err != nil {
		l.Error("clear_cart_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.ErrorResponse{Error: "internal server error"})
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *CartHTTP) Checkout(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.checkout")

	buyerID, ok := authmw.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, transport.ErrorResponse{Error: "unauthorized"})
	}

	var req transport.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("checkout_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, transport.ErrorResponse{Error: "invalid body"})
	}

	orders, err := h.Svc.Checkout(ctx, buyerID, req.DeliveryMethod, req.DeliveryAddress)
	if err != nil {
		l.Warn("checkout_refused", "error", err)
		return writeError(c, err)
	}

	l.Info("checkout_success", "buyer_id", buyerID, "orders", len(orders))
	return c.JSON(http.StatusCreated, orders)
}
