package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"storefront/models"
)

var ErrEmptyCart = errors.New("cart is empty")

// ValidationError lists the delivery fields the form is missing. It blocks
// the checkout step but is not a server fault.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "please fill all required fields"
}

// CheckoutService runs the order flow: validate the delivery form, simulate
// processing for a fixed delay, then clear the cart. No payment provider is
// involved; the payment info is accepted verbatim.
type CheckoutService struct {
	cart       *CartService
	orderDelay time.Duration
}

func NewCheckoutService(cart *CartService, orderDelay time.Duration) *CheckoutService {
	return &CheckoutService{cart: cart, orderDelay: orderDelay}
}

// ValidateDelivery checks the required step-one fields: full name, email,
// phone and address. City and zip code are optional.
func (s *CheckoutService) ValidateDelivery(info models.DeliveryInfo) error {
	missing := []string{}
	if info.FullName == "" {
		missing = append(missing, "full_name")
	}
	if info.Email == "" {
		missing = append(missing, "email")
	}
	if info.Phone == "" {
		missing = append(missing, "phone")
	}
	if info.Address == "" {
		missing = append(missing, "address")
	}

	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

// PlaceOrder simulates order processing: wait out the configured delay, then
// clear the cart and return a confirmation built from the pre-clear
// snapshot. Cancelling the context during the delay abandons the order and
// leaves the cart untouched.
func (s *CheckoutService) PlaceOrder(ctx context.Context, delivery models.DeliveryInfo, payment models.PaymentInfo) (*models.Order, error) {
	if err := s.ValidateDelivery(delivery); err != nil {
		return nil, err
	}

	snapshot := s.cart.Snapshot()
	if len(snapshot.Items) == 0 {
		return nil, ErrEmptyCart
	}

	select {
	case <-time.After(s.orderDelay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	s.cart.Clear()

	return &models.Order{
		ID:         uuid.NewString(),
		Items:      snapshot.Items,
		TotalItems: snapshot.TotalItems,
		Subtotal:   snapshot.Subtotal,
		Delivery:   delivery,
		PlacedAt:   time.Now(),
	}, nil
}
