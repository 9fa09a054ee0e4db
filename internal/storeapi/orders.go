package storeapi

import (
	"context"
	"fmt"
	"net/http"

	"storefront/internal/domain"
)

// CreateOrder places an order on behalf of userID. The returned order carries
// the authoritative amount computed server-side.
func (c *Client) CreateOrder(ctx context.Context, userID int64, req domain.CreateOrderRequest) (*domain.Order, error) {
	var order domain.Order
	path := fmt.Sprintf("/store/users/%d/orders", userID)
	if err := c.do(ctx, http.MethodPost, path, req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) ListOrders(ctx context.Context, userID int64) ([]domain.Order, error) {
	var orders []domain.Order
	path := fmt.Sprintf("/store/users/%d/orders", userID)
	if err := c.do(ctx, http.MethodGet, path, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) GetOrder(ctx context.Context, userID, orderID int64) (*domain.Order, error) {
	var order domain.Order
	path := fmt.Sprintf("/store/users/%d/orders/%d", userID, orderID)
	if err := c.do(ctx, http.MethodGet, path, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateOrder sets the delivery status of an order. The response body carries
// only the resulting status, so nothing is decoded.
func (c *Client) UpdateOrder(ctx context.Context, userID, orderID int64, req domain.UpdateOrderRequest) error {
	path := fmt.Sprintf("/store/users/%d/orders/%d", userID, orderID)
	return c.do(ctx, http.MethodPut, path, req, nil)
}

// deliveryCancelledOrdinal is CANCELLED's position in the backend's delivery
// status enum. The order update endpoint resolves the status by index, so the
// value is part of the wire contract.
const deliveryCancelledOrdinal = 5

// CancelOrder withdraws an order. The backend models this as a delivery
// status update.
func (c *Client) CancelOrder(ctx context.Context, userID, orderID int64) error {
	return c.UpdateOrder(ctx, userID, orderID, domain.UpdateOrderRequest{
		DeliveryStatus: deliveryCancelledOrdinal,
	})
}
