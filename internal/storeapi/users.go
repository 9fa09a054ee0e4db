package storeapi

import (
	"context"
	"fmt"
	"net/http"

	"storefront/internal/domain"
)

// Login authenticates against the store and returns the account on success.
func (c *Client) Login(ctx context.Context, req domain.LoginRequest) (*domain.User, error) {
	var user domain.User
	if err := c.do(ctx, http.MethodPost, "/store/users/login", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Register creates a new account and returns it.
func (c *Client) Register(ctx context.Context, req domain.RegisterRequest) (*domain.User, error) {
	var user domain.User
	if err := c.do(ctx, http.MethodPost, "/store/users/register", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	path := fmt.Sprintf("/store/users/%d/info", id)
	if err := c.do(ctx, http.MethodGet, path, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) UpdateUser(ctx context.Context, id int64, req domain.UpdateUserRequest) (*domain.User, error) {
	var user domain.User
	path := fmt.Sprintf("/store/users/%d/info/update", id)
	if err := c.do(ctx, http.MethodPut, path, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
