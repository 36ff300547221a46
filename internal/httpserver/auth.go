package httpserver

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bigasanhub/bigasan_hub/internal/logging"
	authmw "github.com/bigasanhub/bigasan_hub/internal/middleware/auth"
	"github.com/bigasanhub/bigasan_hub/internal/service"
	"github.com/bigasanhub/bigasan_hub/internal/session"
	"github.com/bigasanhub/bigasan_hub/internal/transport"
)

const sessionTTL = 12 * time.Hour

type AuthHTTP struct {
	Svc       *service.UserService
	JWTSecret []byte
}

// Login resolves the account by email only; there is no password in this
// storefront. Pending and inactive accounts are refused.
func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, transport.ErrorResponse{Error: "invalid body"})
	}

	user, profile, err := h.Svc.Login(ctx, req.Email)
	if err != nil {
		l.Warn("login_refused", "email", req.Email, "error", err)
		return writeError(c, err)
	}

	var sellerID uint
	if profile != nil {
		sellerID = profile.ID
	}
	token, err := session.NewToken(h.JWTSecret, user.ID, user.Role, sellerID, sessionTTL)
	if err != nil {
		l.Error("login_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.ErrorResponse{Error: "internal server error"})
	}

	c.SetCookie(&http.Cookie{
		Name:     "sessionToken",
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(sessionTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	l.Info("login_success", "user_id", user.ID, "role", user.Role)
	return c.JSON(http.StatusOK, user)
}

// Logout drops the session cookie and clears the user's cart.
func (h *AuthHTTP) Logout(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.logout")

	userID, ok := authmw.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, transport.ErrorResponse{Error: "unauthorized"})
	}

	if err := h.Svc.Logout(ctx, userID); err != nil {
		l.Error("logout_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.ErrorResponse{Error: "internal server error"})
	}

	c.SetCookie(&http.Cookie{
		Name:    "sessionToken",
		Value:   "",
		Path:    "/",
		Expires: time.Unix(0, 0),
		MaxAge:  -1,
	})

	l.Info("logout_success", "user_id", userID)
	return c.NoContent(http.StatusNoContent)
}
