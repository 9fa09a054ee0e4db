package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanCancelPayment(t *testing.T) {
	payment := &Payment{ID: 3, PaymentStatus: PaymentPending}

	cases := []struct {
		name    string
		order   Order
		allowed bool
	}{
		{"pending order with payment", Order{OrderStatus: OrderPending, Payment: payment}, true},
		{"cancelled order with payment", Order{OrderStatus: OrderCancelled, Payment: payment}, true},
		{"completed order with payment", Order{OrderStatus: OrderCompleted, Payment: payment}, false},
		{"refunded order with payment", Order{OrderStatus: OrderRefunded, Payment: payment}, false},
		{"pending order without payment", Order{OrderStatus: OrderPending}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.order.CanCancelPayment())
		})
	}
}

func TestCanCancelOrder(t *testing.T) {
	payment := &Payment{ID: 3, PaymentStatus: PaymentCompleted}

	cases := []struct {
		name    string
		order   Order
		allowed bool
	}{
		{"pending unpaid order", Order{OrderStatus: OrderPending}, true},
		{"pending paid order", Order{OrderStatus: OrderPending, Payment: payment}, false},
		{"completed order", Order{OrderStatus: OrderCompleted}, false},
		{"cancelled order", Order{OrderStatus: OrderCancelled}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.order.CanCancelOrder())
		})
	}
}

func TestClampQuantity(t *testing.T) {
	assert.Equal(t, 1, ClampQuantity(0))
	assert.Equal(t, 1, ClampQuantity(-5))
	assert.Equal(t, 1, ClampQuantity(1))
	assert.Equal(t, 42, ClampQuantity(42))
}

func TestOrderDraftTotal(t *testing.T) {
	d := OrderDraft{Price: 12.5, Quantity: 2}
	assert.InDelta(t, 25.0, d.Total(), 1e-9)
}
