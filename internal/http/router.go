package http

import (
	"github.com/gin-gonic/gin"

	httpH "github.com/srstore/storefront-backend/internal/http/handlers"
	httpMW "github.com/srstore/storefront-backend/internal/http/middleware"
)

type RouterConfig struct {
	HealthHandler  *httpH.HealthHandler
	CatalogHandler *httpH.CatalogHandler
	CartHandler    *httpH.CartHandler
	ContactHandler *httpH.ContactHandler

	CORSOrigins []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.Default()
	r.Use(httpMW.CORS(cfg.CORSOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		// Catalog
		if cfg.CatalogHandler != nil {
			api.GET("/products", cfg.CatalogHandler.ListProducts)
			api.GET("/products/:id", cfg.CatalogHandler.GetProduct)
		}

		// Contact intake
		if cfg.ContactHandler != nil {
			api.POST("/contacts", cfg.ContactHandler.SubmitContact)
		}

		// Cart (session-scoped)
		if cfg.CartHandler != nil {
			cart := api.Group("/cart")
			cart.Use(httpMW.CartSession())
			cart.GET("", cfg.CartHandler.GetCart)
			cart.POST("", cfg.CartHandler.AddToCart)
			cart.PATCH("/:id", cfg.CartHandler.UpdateCartItem)
			cart.DELETE("/:id", cfg.CartHandler.RemoveFromCart)
			cart.DELETE("", cfg.CartHandler.ClearCart)
		}
	}

	return r
}
