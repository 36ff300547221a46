package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bigasanhub/bigasan_hub/internal/domain"
	"github.com/bigasanhub/bigasan_hub/internal/session"
)

// SessionMiddleware authenticates requests from the session cookie issued at
// login and gates route groups by role.
type SessionMiddleware struct {
	Secret []byte
}

func New(secret []byte) *SessionMiddleware {
	return &SessionMiddleware{Secret: secret}
}

func (m *SessionMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return m.requireRole(next, "")
}

func (m *SessionMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return m.requireRole(next, domain.RoleAdmin)
}

func (m *SessionMiddleware) RequireSeller(next echo.HandlerFunc) echo.HandlerFunc {
	return m.requireRole(next, domain.RoleSeller)
}

func (m *SessionMiddleware) RequireBuyer(next echo.HandlerFunc) echo.HandlerFunc {
	return m.requireRole(next, domain.RoleBuyer)
}

func (m *SessionMiddleware) requireRole(next echo.HandlerFunc, role domain.Role) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie("sessionToken")
		if err != nil || cookie.Value == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing session token")
		}

		claims, err := session.ClaimsFromToken(cookie.Value, m.Secret)
		if err != nil || claims == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid session token")
		}
		if role != "" && claims.Role != role {
			return echo.NewHTTPError(http.StatusForbidden, string(role)+" access required")
		}

		userID, err := claims.UserID()
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid session token")
		}

		c.Set("user_id", userID)
		c.Set("role", claims.Role)
		c.Set("seller_id", claims.SellerID)
		return next(c)
	}
}

// UserID reads the authenticated user id set by the middleware.
func UserID(c echo.Context) (uint, bool) {
	id, ok := c.Get("user_id").(uint)
	return id, ok
}

func Role(c echo.Context) domain.Role {
	role, _ := c.Get("role").(domain.Role)
	return role
}

// SellerID is the acting seller's profile id; zero for non-sellers.
func SellerID(c echo.Context) uint {
	id, _ := c.Get("seller_id").(uint)
	return id
}
