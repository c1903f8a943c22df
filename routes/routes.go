package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"storefront/controllers"
	"storefront/services"
)

func SetupRoutes(router *gin.Engine, cartService *services.CartService, catalogService *services.CatalogService, checkoutService *services.CheckoutService) {
	productCtrl := controllers.NewProductController(catalogService)
	cartCtrl := controllers.NewCartController(cartService)
	checkoutCtrl := controllers.NewCheckoutController(checkoutService)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.GET("/products", productCtrl.GetAllProducts)
	router.GET("/products/categories", productCtrl.GetCategories)
	router.GET("/products/:id", productCtrl.GetProductByID)

	router.GET("/cart", cartCtrl.GetCart)
	router.DELETE("/cart", cartCtrl.ClearCart)
	router.POST("/cart/items", cartCtrl.AddItem)
	router.GET("/cart/items/:id", cartCtrl.GetItem)
	router.PATCH("/cart/items/:id", cartCtrl.UpdateQuantity)
	router.DELETE("/cart/items/:id", cartCtrl.RemoveItem)

	router.POST("/checkout/delivery", checkoutCtrl.ValidateDelivery)
	router.POST("/checkout/orders", checkoutCtrl.PlaceOrder)
}
