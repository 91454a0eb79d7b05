// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/interfaces/http/handlers"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
	"gorm.io/gorm"
)

// SetupRoutes wires the full /api surface
func SetupRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log *logrus.Logger) {
	authHandler := handlers.NewAuthHandler(db, cfg, log)
	catalogHandler := handlers.NewCatalogHandler(db, cfg)
	cartHandler := handlers.NewCartHandler(redisClient, cfg, log)
	checkoutHandler := handlers.NewCheckoutHandler(redisClient, cfg)
	nfcHandler := handlers.NewNFCHandler(db, cfg)

	// Public catalog
	rg.GET("/products", catalogHandler.GetProducts)
	rg.GET("/products/:id", catalogHandler.GetProduct)

	// Hosted checkout
	rg.POST("/create-checkout-session", checkoutHandler.CreateSession)
	rg.POST("/checkout", checkoutHandler.Checkout)
	rg.GET("/checkout/session/:id", checkoutHandler.GetSession)

	// Session cart
	cart := rg.Group("/cart")
	{
		cart.GET("", cartHandler.GetCart)
		cart.DELETE("", cartHandler.ClearCart)
		cart.POST("/items", cartHandler.AddItem)
		cart.PUT("/items/:productId", cartHandler.UpdateItem)
		cart.DELETE("/items/:productId", cartHandler.RemoveItem)
	}

	// NFC tag content and scan uploads
	rg.GET("/nfc-content/:tagId", nfcHandler.GetContent)
	rg.POST("/upload/:tagId", nfcHandler.UploadMedia)

	// Admin login
	rg.POST("/auth/login", authHandler.Login)

	// Admin panel, bearer token required
	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg))
	admin.Use(middleware.AdminMiddleware())
	{
		admin.GET("/products", catalogHandler.GetProducts)
		admin.POST("/products", catalogHandler.CreateProduct)
		admin.PUT("/products/:id", catalogHandler.UpdateProduct)
		admin.DELETE("/products/:id", catalogHandler.DeleteProduct)
		admin.POST("/upload-product-image", catalogHandler.UploadProductImage)
	}
}
