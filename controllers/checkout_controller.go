package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/models"
	"storefront/services"
)

type CheckoutController struct {
	checkoutService *services.CheckoutService
}

func NewCheckoutController(checkoutService *services.CheckoutService) *CheckoutController {
	return &CheckoutController{checkoutService: checkoutService}
}

// @Summary Validate delivery details
// @Description Step-one validation: full name, email, phone and address are required
// @Tags Checkout
// @Accept json
// @Produce json
// @Param request body models.DeliveryInfo true "Delivery details"
// @Success 200 {object} models.Response
// @Failure 422 {object} models.ErrorResponse
// @Router /checkout/delivery [post]
func (ctrl *CheckoutController) ValidateDelivery(c *gin.Context) {
	var info models.DeliveryInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	if err := ctrl.checkoutService.ValidateDelivery(info); err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
				Success: false,
				Message: "Please fill all required fields",
				Fields:  vErr.Fields,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Validation failed",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Delivery details are valid",
	})
}

// @Summary Place order
// @Description Simulated order placement: validates delivery details, waits out the processing delay, then clears the cart
// @Tags Checkout
// @Accept json
// @Produce json
// @Param request body models.PlaceOrderRequest true "Delivery and payment details"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /checkout/orders [post]
func (ctrl *CheckoutController) PlaceOrder(c *gin.Context) {
	var req models.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	order, err := ctrl.checkoutService.PlaceOrder(c.Request.Context(), req.Delivery, req.Payment)
	if err != nil {
		var vErr *services.ValidationError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
				Success: false,
				Message: "Please fill all required fields",
				Fields:  vErr.Fields,
			})
		case errors.Is(err, services.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Success: false,
				Message: "Your cart is empty",
			})
		default:
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Success: false,
				Message: "Failed to place order",
				Error:   err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Order placed successfully!",
		Data:    order,
	})
}
