package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bigasanhub/bigasan_hub/internal/domain"
	"github.com/bigasanhub/bigasan_hub/internal/transport"
)

// writeError maps domain error kinds onto HTTP statuses. Stock errors carry
// the remaining availability so the UI can show it.
func writeError(c echo.Context, err error) error {
	var stockErr *domain.StockError
	if errors.As(err, &stockErr) {
		available := stockErr.AvailableKg
		return c.JSON(http.StatusConflict, transport.ErrorResponse{
			Error:       stockErr.Error(),
			AvailableKg: &available,
		})
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrEmptyCart):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrNotAuthorized):
		status = http.StatusForbidden
	case errors.Is(err, domain.ErrInvalidTransition), errors.Is(err, domain.ErrConflict):
		status = http.StatusConflict
	}

	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal server error"
	}
	return c.JSON(status, transport.ErrorResponse{Error: msg})
}
