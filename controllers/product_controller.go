package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront/models"
	"storefront/services"
)

type ProductController struct {
	catalogService *services.CatalogService
}

func NewProductController(catalogService *services.CatalogService) *ProductController {
	return &ProductController{catalogService: catalogService}
}

// @Summary List products
// @Description Get the catalog, optionally filtered by category and search query
// @Tags Products
// @Produce json
// @Param search query string false "Free-text search over title, category and description"
// @Param category query string false "Exact category filter; 'All' or empty disables it"
// @Success 200 {object} models.Response
// @Failure 502 {object} models.ErrorResponse
// @Router /products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	searchQuery := c.Query("search")
	category := c.DefaultQuery("category", "All")

	products, err := ctrl.catalogService.ListProducts(c.Request.Context(), searchQuery, category)
	if err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Success:   false,
			Message:   "Failed to load products. Please check your internet connection.",
			Error:     err.Error(),
			Retryable: true,
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Products retrieved",
		Data:    products,
	})
}

// @Summary List categories
// @Description Get the distinct product categories, prefixed with "All"
// @Tags Products
// @Produce json
// @Success 200 {object} models.Response
// @Failure 502 {object} models.ErrorResponse
// @Router /products/categories [get]
func (ctrl *ProductController) GetCategories(c *gin.Context) {
	categories, err := ctrl.catalogService.ListCategories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Success:   false,
			Message:   "Failed to load categories",
			Error:     err.Error(),
			Retryable: true,
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Categories retrieved",
		Data:    categories,
	})
}

// @Summary Get product by ID
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid product ID",
		})
		return
	}

	product, err := ctrl.catalogService.GetProduct(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Success:   false,
			Message:   "Failed to load product",
			Error:     err.Error(),
			Retryable: true,
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Product retrieved",
		Data:    product,
	})
}
