package models

// AddCartItemRequest carries the product snapshot to freeze into the cart,
// with an optional quantity (defaulted to 1 by the store).
type AddCartItemRequest struct {
	Product
	Quantity int `json:"quantity" binding:"omitempty,min=1"`
}

// UpdateQuantityRequest refuses quantities below 1: clients that want a line
// gone must call the remove endpoint, the same policy the screens follow.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

type PlaceOrderRequest struct {
	Delivery DeliveryInfo `json:"delivery" binding:"required"`
	Payment  PaymentInfo  `json:"payment"`
}
