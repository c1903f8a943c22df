package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/models"
	"storefront/services"
)

func validDelivery() models.DeliveryInfo {
	return models.DeliveryInfo{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "5551234",
		Address:  "1 Main St",
	}
}

func TestValidateDeliveryReportsMissingFields(t *testing.T) {
	cart, _ := newCart(t)
	checkout := services.NewCheckoutService(cart, 0)

	err := checkout.ValidateDelivery(models.DeliveryInfo{FullName: "Jane Doe"})

	var vErr *services.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.ElementsMatch(t, []string{"email", "phone", "address"}, vErr.Fields)
}

func TestValidateDeliveryAllowsOptionalCityAndZip(t *testing.T) {
	cart, _ := newCart(t)
	checkout := services.NewCheckoutService(cart, 0)

	assert.NoError(t, checkout.ValidateDelivery(validDelivery()))
}

func TestPlaceOrderClearsCart(t *testing.T) {
	cart, _ := newCart(t)
	cart.Add(testProduct(1, "Red Shirt", 9.99), 2)
	checkout := services.NewCheckoutService(cart, 0)

	order, err := checkout.PlaceOrder(context.Background(), validDelivery(), models.PaymentInfo{})

	require.NoError(t, err)
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, 2, order.TotalItems)
	assert.InDelta(t, 19.98, order.Subtotal, 0.0001)
	require.Len(t, order.Items, 1)
	assert.Empty(t, cart.Snapshot().Items, "successful order must clear the cart")
}

func TestPlaceOrderRejectsEmptyCart(t *testing.T) {
	cart, _ := newCart(t)
	checkout := services.NewCheckoutService(cart, 0)

	_, err := checkout.PlaceOrder(context.Background(), validDelivery(), models.PaymentInfo{})

	assert.ErrorIs(t, err, services.ErrEmptyCart)
}

func TestPlaceOrderRejectsInvalidDelivery(t *testing.T) {
	cart, _ := newCart(t)
	cart.Add(testProduct(1, "Red Shirt", 9.99), 1)
	checkout := services.NewCheckoutService(cart, 0)

	_, err := checkout.PlaceOrder(context.Background(), models.DeliveryInfo{}, models.PaymentInfo{})

	var vErr *services.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Len(t, cart.Snapshot().Items, 1, "failed validation must not touch the cart")
}

func TestPlaceOrderCancelledDuringProcessingLeavesCartIntact(t *testing.T) {
	cart, _ := newCart(t)
	cart.Add(testProduct(1, "Red Shirt", 9.99), 1)
	checkout := services.NewCheckoutService(cart, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := checkout.PlaceOrder(ctx, validDelivery(), models.PaymentInfo{})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, cart.Snapshot().Items, 1)
}
