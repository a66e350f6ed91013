package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shop/backend/internal/infrastructure/auth"
	"github.com/shop/backend/internal/interfaces/http/handler"
	"github.com/shop/backend/internal/interfaces/http/middleware"
)

// Handlers bundles the endpoint handlers the router wires up
type Handlers struct {
	Cart    *handler.CartHandler
	Auth    *handler.AuthHandler
	User    *handler.UserHandler
	Product *handler.ProductHandler
	Payment *handler.PaymentHandler
	System  *handler.SystemHandler
}

// Setup registers all routes on the engine. Routes live at the root,
// not under a version prefix, to stay compatible with existing
// storefront clients.
func Setup(engine *gin.Engine, h Handlers, jwtService *auth.JWTService, log *zap.Logger) {
	root := engine.Group("")
	authRequired := middleware.JWTAuth(jwtService, log)

	h.System.RegisterRoutes(root)
	h.Auth.RegisterRoutes(root)
	h.Cart.RegisterRoutes(root, authRequired)

	// Profile reads and updates are limited to the owner or an admin
	users := root.Group("/users", authRequired)
	users.GET("/:id", middleware.RequireSelfOrAdmin("id"), h.User.Get)
	users.PUT("/:id", middleware.RequireSelfOrAdmin("id"), h.User.Update)

	admins := root.Group("/admin", authRequired, middleware.RequireAdmin())
	admins.GET("/:id", h.User.GetAdmin)

	products := root.Group("/products")
	products.GET("", h.Product.List)
	products.GET("/:id", h.Product.Get)
	products.POST("", authRequired, middleware.RequireAdmin(), h.Product.Create)

	payments := root.Group("/payments", authRequired, middleware.RequireAdmin())
	payments.GET("", h.Payment.List)
	payments.POST("", h.Payment.Record)
}
