// @title ROVE Storefront API
// @version 1.0
// @description Public storefront backend for the ROVE eyewear shop
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/aaronwins356/RoveShopV2/config"
	"github.com/aaronwins356/RoveShopV2/controllers/storefront/cart_controller"
	"github.com/aaronwins356/RoveShopV2/controllers/storefront/checkout_controller"
	"github.com/aaronwins356/RoveShopV2/controllers/storefront/product_controller"
	_ "github.com/aaronwins356/RoveShopV2/docs"
	"github.com/aaronwins356/RoveShopV2/middleware"
	"github.com/aaronwins356/RoveShopV2/routes"
	"github.com/aaronwins356/RoveShopV2/services"
	"github.com/aaronwins356/RoveShopV2/storage"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Cart storage (Redis in production, file/memory via CART_STORAGE)
	var rdb *redis.Client
	if config.GetEnv("CART_STORAGE", "redis") == "redis" {
		var err error
		rdb, err = config.ConnectRedis()
		if err != nil {
			log.Fatalf("❌ %v", err)
		}
	}
	store, err := storage.Open(rdb)
	if err != nil {
		log.Fatalf("❌ Failed to open cart storage: %v", err)
	}
	log.Println("✅ Cart storage ready")

	// Services
	catalogSvc := services.NewCatalogService(
		config.GetEnv("CATALOG_URL", ""),
		config.GetEnv("CATALOG_FILE", "products.json"),
	)
	cartSvc := services.NewCartService(store)
	orderSvc := services.NewOrderService()
	supplierClient := services.NewSupplierClient(
		config.GetEnv("SUPPLIER_URL", ""),
		config.GetEnv("SUPPLIER_API_KEY", ""),
	)

	// Wire controllers
	product_controller.Init(catalogSvc)
	cart_controller.Init(cartSvc, catalogSvc)
	checkout_controller.Init(cartSvc, orderSvc, supplierClient)
	log.Println("✅ Storefront controllers wired")

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")

	// Throttle the public storefront when Redis is around to count requests
	if rdb != nil {
		api.Use(middleware.RateLimiter(rdb, 300, time.Minute))
	}

	routes.SetupStorefrontRoutes(api)
	log.Println("✅ Storefront routes registered")

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	port := config.GetEnv("PORT", "8080")
	fmt.Println("🚀 Server is running on http://localhost:" + port)
	router.Run(":" + port)
}
