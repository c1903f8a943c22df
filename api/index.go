package api

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"storefront/config"
	"storefront/libs"
	"storefront/middleware"
	"storefront/repositories"
	"storefront/routes"
	"storefront/services"
)

var (
	router *gin.Engine
	once   sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		config.LoadConfig()

		cartRepo := repositories.MustCartRepository(config.AppConfig)
		cartService := services.NewCartService(cartRepo)

		catalogClient := libs.NewCatalogClient(config.AppConfig.CatalogBaseURL, config.AppConfig.CatalogTimeout)
		catalogService := services.NewCatalogService(catalogClient)
		checkoutService := services.NewCheckoutService(cartService, config.AppConfig.OrderDelay)

		router = gin.New()
		router.Use(gin.Recovery())
		router.Use(middleware.CORSMiddleware())

		routes.SetupRoutes(router, cartService, catalogService, checkoutService)
	})
}

func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	router.ServeHTTP(w, r)
}
