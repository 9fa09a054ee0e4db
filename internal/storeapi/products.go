package storeapi

import (
	"context"
	"fmt"
	"net/http"

	"storefront/internal/domain"
)

// ListProducts fetches the catalog. Browsing is anonymous, so the request
// always uses the anonymous sentinel user id.
func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	path := fmt.Sprintf("/store/users/%d/products", AnonymousUserID)
	if err := c.do(ctx, http.MethodGet, path, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct fetches a single product. userID may be AnonymousUserID when no
// session exists.
func (c *Client) GetProduct(ctx context.Context, userID, id int64) (*domain.Product, error) {
	var product domain.Product
	path := fmt.Sprintf("/store/users/%d/products/%d", userID, id)
	if err := c.do(ctx, http.MethodGet, path, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}
