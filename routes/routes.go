package routes

import (
	"webstore-portal/cart"
	"webstore-portal/handlers"
	"webstore-portal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes registers the API. limiter guards sign-in and cart writes;
// pass nil to serve without rate limiting.
func SetupRoutes(r *gin.Engine, db *gorm.DB, carts *cart.Manager, limiter *middleware.RateLimiter) {
	// Initialize handlers
	authHandler := &handlers.AuthHandler{DB: db, Carts: carts}
	cartHandler := &handlers.CartHandler{Carts: carts}

	limited := func(h gin.HandlerFunc) []gin.HandlerFunc {
		if limiter == nil {
			return []gin.HandlerFunc{h}
		}
		return []gin.HandlerFunc{limiter.Middleware(), h}
	}

	api := r.Group("/api")
	{
		// Auth routes
		api.POST("/auth/register", limited(authHandler.Register)...)
		api.POST("/auth/login", limited(authHandler.Login)...)
	}

	// Cart routes serve guests from the cart cookie and signed-in users from the shared store
	cartRoutes := api.Group("/cart")
	cartRoutes.Use(middleware.OptionalAuthMiddleware())
	{
		cartRoutes.GET("", cartHandler.GetCart)
		cartRoutes.POST("", limited(cartHandler.AddToCart)...)
		cartRoutes.DELETE("/:itemId", limited(cartHandler.RemoveFromCart)...)
	}

	// Protected routes (require authentication)
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/auth/profile", authHandler.GetProfile)
		protected.POST("/cart/sync", cartHandler.SyncCart)
	}

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
