package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bigasanhub/bigasan_hub/internal/logging"
	authmw "github.com/bigasanhub/bigasan_hub/internal/middleware/auth"
	"github.com/bigasanhub/bigasan_hub/internal/service"
	"github.com/bigasanhub/bigasan_hub/internal/transport"
)

// SellerHTTP covers the seller dashboard's inventory and pricing management;
// order actions live on OrderHTTP.
type SellerHTTP struct {
	Inventory *service.InventoryService
	Catalog   *service.CatalogService
}

func (h *SellerHTTP) GetInventory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "seller.get_inventory")

	sellerID := authmw.SellerID(c)
	if sellerID == 0 {
		return c.JSON(http.StatusForbidden, transport.ErrorResponse{Error: "no seller profile"})
	}

	rows, err := h.Inventory.ListBySeller(ctx, sellerID)
	if err != nil {
		l.Error("get_inventory_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.ErrorResponse{Error: "internal server error"})
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *SellerHTTP) SetStock(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "seller.set_stock")

	sellerID := authmw.SellerID(c)
	if sellerID == 0 {
		return c.JSON(http.StatusForbidden, transport.ErrorResponse{Error: "no seller profile"})
	}

	var req transport.SetStockRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("set_stock_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, transport.ErrorResponse{Error: "invalid body"})
	}

	if err := h.Inventory.SetStock(ctx, sellerID, req.VariantID, req.StockKg); err != nil {
		l.Warn("set_stock_refused", "variant_id", req.VariantID, "error", err)
		return writeError(c, err)
	}

	l.Info("set_stock_success", "variant_id", req.VariantID, "stock_kg", req.StockKg)
	return c.NoContent(http.StatusNoContent)
}

func (h *SellerHTTP) SetPricing(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "seller.set_pricing")

	sellerID := authmw.SellerID(c)
	if sellerID == 0 {
		return c.JSON(http.StatusForbidden, transport.ErrorResponse{Error: "no seller profile"})
	}

	var req transport.SetPricingRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("set_pricing_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, transport.ErrorResponse{Error: "invalid body"})
	}

	row, err := h.Catalog.SetPricing(ctx, sellerID, req.VariantID, req.PricePerKg, req.PricePer25Kg, req.PricePer50Kg)
	if err != nil {
		l.Warn("set_pricing_refused", "variant_id", req.VariantID, "error", err)
		return writeError(c, err)
	}

	l.Info("set_pricing_success", "variant_id", req.VariantID)
	return c.JSON(http.StatusOK, row)
}
