package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront/models"
	"storefront/services"
)

type CartController struct {
	cartService *services.CartService
}

func NewCartController(cartService *services.CartService) *CartController {
	return &CartController{cartService: cartService}
}

// @Summary Get cart
// @Description Get the cart lines plus total item count and subtotal
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart retrieved",
		Data:    ctrl.cartService.Snapshot(),
	})
}

// @Summary Add product to cart
// @Description Add a product snapshot; an existing line for the same id has its quantity incremented
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body models.AddCartItemRequest true "Product plus optional quantity (default 1)"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	if req.ID == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Product id is required",
		})
		return
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	ctrl.cartService.Add(req.Product, quantity)

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: fmt.Sprintf("%s added to cart!", req.Title),
		Data:    ctrl.cartService.Snapshot(),
	})
}

// @Summary Check cart membership
// @Description Report whether the product id has a line in the cart, and its quantity
// @Tags Cart
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/items/{id} [get]
func (ctrl *CartController) GetItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid product ID",
		})
		return
	}

	quantity, inCart := ctrl.cartService.Contains(id)

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data: gin.H{
			"in_cart":  inCart,
			"quantity": quantity,
		},
	})
}

// @Summary Update line quantity
// @Description Overwrite the quantity for a cart line. Quantities below 1 are rejected; use the remove endpoint instead
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body models.UpdateQuantityRequest true "New quantity"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/items/{id} [patch]
func (ctrl *CartController) UpdateQuantity(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid product ID",
		})
		return
	}

	var req models.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Quantity must be at least 1",
			Error:   err.Error(),
		})
		return
	}

	ctrl.cartService.SetQuantity(id, req.Quantity)

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart updated",
		Data:    ctrl.cartService.Snapshot(),
	})
}

// @Summary Remove product from cart
// @Description Delete the line for the given product id. Removing an absent id is a no-op
// @Tags Cart
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/items/{id} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid product ID",
		})
		return
	}

	ctrl.cartService.Remove(id)

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Item removed from cart!",
		Data:    ctrl.cartService.Snapshot(),
	})
}

// @Summary Clear cart
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	ctrl.cartService.Clear()

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart cleared!",
		Data:    ctrl.cartService.Snapshot(),
	})
}
