package router

import (
	"github.com/gin-gonic/gin"

	"github.com/novashop/novashop-backend/config"
	"github.com/novashop/novashop-backend/internal/app/controller"
	"github.com/novashop/novashop-backend/internal/middleware"
)

type Router struct {
	catalogController    *controller.CatalogController
	cartController       *controller.CartController
	storefrontController *controller.StorefrontController
	eventsController     *controller.EventsController
	sessionMiddleware    *middleware.SessionMiddleware
	config               *config.Config
}

func NewRouter(
	catalogController *controller.CatalogController,
	cartController *controller.CartController,
	storefrontController *controller.StorefrontController,
	eventsController *controller.EventsController,
	sessionMiddleware *middleware.SessionMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		catalogController:    catalogController,
		cartController:       cartController,
		storefrontController: storefrontController,
		eventsController:     eventsController,
		sessionMiddleware:    sessionMiddleware,
		config:               cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "NovaShop API is running",
		})
	})

	v1 := router.Group("/api/v1")
	v1.Use(r.sessionMiddleware.Attach())
	{
		products := v1.Group("/products")
		{
			products.GET("", r.catalogController.ListProducts)
			products.GET("/:id", r.catalogController.GetProductByID)
		}

		v1.GET("/categories", r.catalogController.ListCategories)

		cart := v1.Group("/cart")
		{
			cart.GET("", r.cartController.GetCart)
			cart.POST("", r.cartController.AddToCart)
			cart.PATCH("/:productId", r.cartController.ChangeQuantity)
			cart.DELETE("/:productId", r.cartController.RemoveFromCart)
			cart.DELETE("", r.cartController.ClearCart)
		}

		view := v1.Group("/view")
		{
			view.GET("", r.storefrontController.GetView)
			view.PUT("/category", r.storefrontController.SetCategory)
			view.POST("/cart/open", r.storefrontController.OpenCart)
			view.POST("/cart/close", r.storefrontController.CloseCart)
			view.POST("/products/:id/open", r.storefrontController.OpenProduct)
			view.POST("/products/close", r.storefrontController.CloseProduct)
		}

		v1.GET("/events", r.eventsController.Stream)
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
