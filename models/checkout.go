package models

import "time"

type DeliveryInfo struct {
	FullName string `json:"full_name" form:"full_name"`
	Email    string `json:"email" form:"email"`
	Phone    string `json:"phone" form:"phone"`
	Address  string `json:"address" form:"address"`
	City     string `json:"city" form:"city"`
	ZipCode  string `json:"zip_code" form:"zip_code"`
}

// PaymentInfo is collected but never charged; there is no payment provider
// behind this service.
type PaymentInfo struct {
	PaymentMethod  string `json:"payment_method" form:"payment_method"`
	CardNumber     string `json:"card_number" form:"card_number"`
	ExpiryDate     string `json:"expiry_date" form:"expiry_date"`
	CVV            string `json:"cvv" form:"cvv"`
	CardHolderName string `json:"card_holder_name" form:"card_holder_name"`
}

type Order struct {
	ID         string       `json:"id"`
	Items      []CartLine   `json:"items"`
	TotalItems int          `json:"total_items"`
	Subtotal   float64      `json:"subtotal"`
	Delivery   DeliveryInfo `json:"delivery"`
	PlacedAt   time.Time    `json:"placed_at"`
}
