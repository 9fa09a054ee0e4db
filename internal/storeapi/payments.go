package storeapi

import (
	"context"
	"fmt"
	"net/http"

	"storefront/internal/domain"
)

func (c *Client) CreatePayment(ctx context.Context, userID, orderID int64, req domain.CreatePaymentRequest) (*domain.Payment, error) {
	var payment domain.Payment
	path := fmt.Sprintf("/store/users/%d/orders/%d/payments", userID, orderID)
	if err := c.do(ctx, http.MethodPost, path, req, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

func (c *Client) GetPayment(ctx context.Context, userID, orderID, paymentID int64) (*domain.Payment, error) {
	var payment domain.Payment
	path := fmt.Sprintf("/store/users/%d/orders/%d/payments/%d", userID, orderID, paymentID)
	if err := c.do(ctx, http.MethodGet, path, nil, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

// CancelPayment refunds a payment. The call takes no body; the ids in the
// path identify the record.
func (c *Client) CancelPayment(ctx context.Context, userID, orderID, paymentID int64) (*domain.Payment, error) {
	var payment domain.Payment
	path := fmt.Sprintf("/store/users/%d/orders/%d/payments/%d", userID, orderID, paymentID)
	if err := c.do(ctx, http.MethodPut, path, nil, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}
