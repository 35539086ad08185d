package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"shopease_front_end/internal/handlers"
	"shopease_front_end/internal/middleware"
)

// RegisterRoutes câble l'intégralité de la surface HTTP du storefront.
// redisClient peut être nil : le rate limiting de connexion est alors
// désactivé.
func RegisterRoutes(r *gin.Engine, h *handlers.Handler, redisClient *redis.Client) {
	r.Use(middleware.SessionMiddleware(h.Sessions))

	api := r.Group("/api")
	{
		// Identité
		auth := api.Group("/auth")
		{
			auth.POST("/login", middleware.LoginRateLimit(redisClient), h.Login)
			auth.POST("/register", h.Register)
			auth.POST("/logout", h.Logout)
			auth.GET("/me", h.Me)
		}

		// Catalogue — public
		api.GET("/products", h.ListProducts)
		api.GET("/products/:id", h.GetProduct)
		api.GET("/categories", h.ListCategories)
		api.GET("/categories/:slug/products", h.CategoryProducts)

		// Langue
		api.GET("/lang", h.GetLang)
		api.PUT("/lang", h.SetLang)

		// Profil — authentifié
		profile := api.Group("/profile", middleware.RequireAuth())
		{
			profile.GET("", h.GetProfile)
			profile.PUT("", h.UpdateProfile)
		}

		// Panier — authentifié
		cart := api.Group("/cart", middleware.RequireAuth())
		{
			cart.GET("", h.GetCart)
			cart.GET("/summary", h.CartSummary)
			cart.POST("/add", h.AddToCart)
			cart.PUT("/update/:id", h.UpdateCartItem)
			cart.DELETE("/remove/:id", h.RemoveCartItem)
			cart.POST("/clear", h.ClearCart)
		}

		// Wishlist — authentifié
		wishlist := api.Group("/wishlist", middleware.RequireAuth())
		{
			wishlist.GET("", h.GetWishlist)
			wishlist.POST("/add", h.AddToWishlist)
			wishlist.DELETE("/remove/:productId", h.RemoveFromWishlist)
			wishlist.GET("/count", h.WishlistCount)
			wishlist.GET("/contains/:productId", h.WishlistContains)
		}

		// Commandes — authentifié
		orders := api.Group("/orders", middleware.RequireAuth())
		{
			orders.POST("", h.CreateOrder)
			orders.GET("", h.ListOrders)
			orders.GET("/:id", h.GetOrder)
			orders.GET("/:id/timeline", h.OrderTimeline)
			orders.POST("/:id/cancel", h.CancelOrder)
			orders.GET("/:id/invoice", h.OrderInvoice)
			orders.GET("/:id/qr", h.OrderQR)
		}

		// Notifications temps réel
		api.GET("/ws", h.Notifications)
	}
}
