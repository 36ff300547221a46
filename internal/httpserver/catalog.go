package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/bigasanhub/bigasan_hub/internal/logging"
	"github.com/bigasanhub/bigasan_hub/internal/service"
	"github.com/bigasanhub/bigasan_hub/internal/transport"
)

type CatalogHTTP struct {
	Svc *service.CatalogService
}

// GetProducts lists every buyer-visible offer: pricing joined to variant,
// active seller and stock.
func (h *CatalogHTTP) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.get_products")

	listings, err := h.Svc.ListAvailableProducts(ctx)
	if err != nil {
		l.Error("get_products_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.ErrorResponse{Error: "internal server error"})
	}

	l.Info("get_products_success", "count", len(listings))
	return c.JSON(http.StatusOK, listings)
}

func (h *CatalogHTTP) GetVariants(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.get_variants")

	variants, err := h.Svc.ListVariants(ctx)
	if err != nil {
		l.Error("get_variants_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.ErrorResponse{Error: "internal server error"})
	}
	return c.JSON(http.StatusOK, variants)
}

func (h *CatalogHTTP) GetVariant(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.get_variant")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("get_variant_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, transport.ErrorResponse{Error: "id is not an integer"})
	}

	variant, err := h.Svc.GetVariant(ctx, uint(id))
	if err != nil {
		l.Warn("get_variant_error", "error", err)
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, variant)
}
