package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"storefront/config"
	_ "storefront/docs"
	"storefront/libs"
	"storefront/middleware"
	"storefront/repositories"
	"storefront/routes"
	"storefront/services"
)

// @title Storefront API
// @description Product browsing, persisted cart and simulated checkout backed by a public catalog API
// @version 1.0
func main() {

	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	cartRepo := repositories.MustCartRepository(config.AppConfig)
	cartService := services.NewCartService(cartRepo)

	catalogClient := libs.NewCatalogClient(config.AppConfig.CatalogBaseURL, config.AppConfig.CatalogTimeout)
	catalogService := services.NewCatalogService(catalogClient)
	checkoutService := services.NewCheckoutService(cartService, config.AppConfig.OrderDelay)

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router, cartService, catalogService, checkoutService)

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
