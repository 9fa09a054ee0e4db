package web

import "net/http"

// NewRouter is the navigation shell: the full route table of the storefront.
func NewRouter(products *ProductHandler, orders *OrderHandler, payments *PaymentHandler, auth *AuthHandler, notices *NoticeHandler) *http.ServeMux {
	mux := http.NewServeMux()

	// Products
	mux.HandleFunc("GET /{$}", products.Home)
	mux.HandleFunc("GET /product/{id}", products.Detail)
	mux.HandleFunc("POST /product/{id}/buy", products.Buy)

	// Checkout
	mux.HandleFunc("GET /order/{id}", orders.Info)
	mux.HandleFunc("POST /order/{id}", orders.Create)
	mux.HandleFunc("GET /payment/{orderId}", payments.Info)
	mux.HandleFunc("POST /payment/{orderId}", payments.Create)

	// Orders
	mux.HandleFunc("GET /orders", orders.List)
	mux.HandleFunc("POST /orders/{orderId}/cancel", orders.Cancel)
	mux.HandleFunc("POST /orders/{orderId}/payments/{paymentId}/cancel", orders.CancelPayment)

	// Auth & profile
	mux.HandleFunc("GET /login", auth.LoginForm)
	mux.HandleFunc("POST /login", auth.Login)
	mux.HandleFunc("GET /register", auth.RegisterForm)
	mux.HandleFunc("POST /register", auth.Register)
	mux.HandleFunc("POST /logout", auth.Logout)
	mux.HandleFunc("GET /profile", auth.ProfileForm)
	mux.HandleFunc("POST /profile", auth.UpdateProfile)

	// Banners
	mux.HandleFunc("POST /notices/{id}/dismiss", notices.Dismiss)

	return mux
}
