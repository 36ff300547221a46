package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	authmw "github.com/bigasanhub/bigasan_hub/internal/middleware/auth"
)

type Deps struct {
	AuthHandler    *AuthHTTP
	CatalogHandler *CatalogHTTP
	CartHandler    *CartHTTP
	OrderHandler   *OrderHTTP
	SellerHandler  *SellerHTTP
	AdminHandler   *AdminHTTP
	JWTSecret      []byte
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	mw := authmw.New(d.JWTSecret)
	api := e.Group("/api")

	api.POST("/auth/login", d.AuthHandler.Login)
	api.POST("/auth/logout", d.AuthHandler.Logout, mw.RequireAuth)

	catalog := api.Group("/catalog")
	catalog.GET("/products", d.CatalogHandler.GetProducts)
	catalog.GET("/variants", d.CatalogHandler.GetVariants)
	catalog.GET("/variants/:id", d.CatalogHandler.GetVariant)

	cart := api.Group("/cart", mw.RequireBuyer)
	cart.GET("", d.CartHandler.GetCart)
	cart.POST("", d.CartHandler.AddToCart)
	cart.DELETE("/items", d.CartHandler.RemoveItem)
	cart.DELETE("", d.CartHandler.ClearCart)
	cart.POST("/checkout", d.CartHandler.Checkout)

	orders := api.Group("/orders", mw.RequireBuyer)
	orders.GET("", d.OrderHandler.GetBuyerOrders)
	orders.POST("/:id/cancel", d.OrderHandler.Cancel)

	seller := api.Group("/seller", mw.RequireSeller)
	seller.GET("/orders", d.OrderHandler.GetSellerOrders)
	seller.POST("/orders/:id/accept", d.OrderHandler.Accept)
	seller.POST("/orders/:id/reject", d.OrderHandler.Reject)
	seller.POST("/orders/:id/pack", d.OrderHandler.Pack)
	seller.POST("/orders/:id/ship", d.OrderHandler.Ship)
	seller.POST("/orders/:id/complete", d.OrderHandler.Complete)
	seller.GET("/inventory", d.SellerHandler.GetInventory)
	seller.PUT("/inventory", d.SellerHandler.SetStock)
	seller.PUT("/pricing", d.SellerHandler.SetPricing)
	seller.GET("/stats", d.OrderHandler.GetSellerStats)

	admin := api.Group("/admin", mw.RequireAdmin)
	admin.GET("/users", d.AdminHandler.GetUsers)
	admin.POST("/users/:id/approve", d.AdminHandler.ApproveUser)
	admin.POST("/users/:id/deactivate", d.AdminHandler.DeactivateUser)
	admin.POST("/variants", d.AdminHandler.CreateVariant)
	admin.GET("/stats", d.AdminHandler.GetStats)
}
