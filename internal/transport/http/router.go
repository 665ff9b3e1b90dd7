package httpserver

import (
	"github.com/labstack/echo/v4"

	"github.com/rajputarjun2947-afk/Vocano/internal/handlers"
	"github.com/rajputarjun2947-afk/Vocano/internal/middleware/auth"
	"github.com/rajputarjun2947-afk/Vocano/internal/middleware/csrf"
)

type Deps struct {
	AuthHandler         *handlers.AuthHandler
	ProductHandler      *handlers.ProductHandler
	CartHandler         *handlers.CartHandler
	OrderHandler        *handlers.OrderHandler
	AddressHandler      *handlers.AddressHandler
	WishlistHandler     *handlers.WishlistHandler
	NotificationHandler *handlers.NotificationHandler
	CouponHandler       *handlers.CouponHandler
	AdminHandler        *handlers.AdminHandler
	Sessions            *auth.Sessions
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })

	v1 := e.Group("/api/v1")
	v1.Use(csrf.Middleware(csrf.Config{
		SkipPaths: []string{"/api/v1/register", "/api/v1/login"},
	}))

	v1.POST("/register", d.AuthHandler.Register)
	v1.POST("/login", d.AuthHandler.Login)
	v1.POST("/logout", d.AuthHandler.Logout)
	v1.GET("/me", d.AuthHandler.Me, d.Sessions.RequireLogin)

	products := v1.Group("/products")
	products.GET("", d.ProductHandler.GetProducts)
	products.GET("/:id", d.ProductHandler.GetProduct)

	cart := v1.Group("/cart", d.Sessions.RequireLogin)
	cart.GET("", d.CartHandler.GetCart)
	cart.POST("", d.CartHandler.AddToCart)
	cart.PATCH("", d.CartHandler.UpdateItem)
	cart.DELETE("/item", d.CartHandler.RemoveItem)
	cart.DELETE("", d.CartHandler.Clear)

	orders := v1.Group("/orders", d.Sessions.RequireLogin)
	orders.POST("", d.OrderHandler.Checkout)
	orders.GET("", d.OrderHandler.ListMine)
	orders.GET("/:id", d.OrderHandler.GetOrder)
	orders.POST("/:id/cancel", d.OrderHandler.Cancel)

	addresses := v1.Group("/addresses", d.Sessions.RequireLogin)
	addresses.GET("", d.AddressHandler.List)
	addresses.POST("", d.AddressHandler.Create)
	addresses.PUT("/:id", d.AddressHandler.Update)
	addresses.DELETE("/:id", d.AddressHandler.Delete)

	wishlist := v1.Group("/wishlist", d.Sessions.RequireLogin)
	wishlist.GET("", d.WishlistHandler.Get)
	wishlist.POST("/:productId", d.WishlistHandler.Toggle)

	notifications := v1.Group("/notifications", d.Sessions.RequireLogin)
	notifications.GET("", d.NotificationHandler.List)
	notifications.POST("/:id/read", d.NotificationHandler.MarkRead)

	v1.POST("/coupons/apply", d.CouponHandler.Apply, d.Sessions.RequireLogin)

	admin := v1.Group("/admin", d.Sessions.AdminOnly)
	admin.GET("/users", d.AdminHandler.ListUsers)
	admin.PATCH("/users/:id/block", d.AdminHandler.SetUserBlocked)
	admin.GET("/orders", d.AdminHandler.ListOrders)
	admin.PATCH("/orders/:id/status", d.AdminHandler.UpdateOrderStatus)
	admin.PATCH("/orders/:id/payment", d.AdminHandler.UpdatePaymentStatus)
	admin.POST("/products", d.ProductHandler.CreateProduct)
	admin.PATCH("/products/:id", d.ProductHandler.PatchProduct)
	admin.DELETE("/products/:id", d.ProductHandler.DeleteProduct)
	admin.GET("/coupons", d.CouponHandler.List)
	admin.POST("/coupons", d.CouponHandler.Create)
	admin.PATCH("/coupons/:id", d.CouponHandler.Update)
	admin.DELETE("/coupons/:id", d.CouponHandler.Delete)
}
