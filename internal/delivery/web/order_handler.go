package web

import (
	"fmt"
	"net/http"

	"storefront/internal/checkout"
	"storefront/internal/domain"
	"storefront/internal/notice"
	"storefront/internal/session"
	"storefront/internal/storeapi"
)

type OrderHandler struct {
	api      *storeapi.Client
	sessions *session.Manager
	drafts   *checkout.Store
	notices  *notice.Center
	render   *Renderer
}

func NewOrderHandler(api *storeapi.Client, sessions *session.Manager, drafts *checkout.Store, notices *notice.Center, render *Renderer) *OrderHandler {
	return &OrderHandler{api: api, sessions: sessions, drafts: drafts, notices: notices, render: render}
}

type orderInfoView struct {
	Draft domain.OrderDraft
	Total float64
	State string
}

type orderListView struct {
	Orders []domain.Order
}

func orderInfoPath(productID int64, token string) string {
	return fmt.Sprintf("/order/%d?state=%s", productID, token)
}

func paymentInfoPath(orderID int64, token string) string {
	return fmt.Sprintf("/payment/%d?state=%s", orderID, token)
}

// Info shows the order summary for the drafted purchase. Reaching this page
// without its state (direct URL entry, refresh after submit) is terminal for
// this page load: a static fallback, not an error banner.
func (h *OrderHandler) Info(w http.ResponseWriter, r *http.Request) {
	draft, ok := h.drafts.PeekOrderDraft(r.URL.Query().Get("state"))
	if !ok {
		h.render.Render(w, r, http.StatusOK, "message", "Order Information", messageView{
			Heading: "Order Information",
			Text:    "No product information available.",
		})
		return
	}

	h.render.Render(w, r, http.StatusOK, "order_info", "Order Information", orderInfoView{
		Draft: draft,
		Total: draft.Total(),
		State: r.URL.Query().Get("state"),
	})
}

// Create places the order. Without a session the call is short-circuited
// locally; the backend is never contacted. Consuming the draft token here
// means a duplicate submit degrades to the fallback view instead of creating
// a second order.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	productID, err := pathID(r, "id")
	if err != nil {
		h.render.Render(w, r, http.StatusNotFound, "message", "Order Information", messageView{
			Heading: "Order Information",
			Text:    "No product information available.",
		})
		return
	}

	userID, loggedIn := h.sessions.UserID(r)
	if !loggedIn {
		h.notices.Push(noticeKey(w, r), "Please login first.", nil)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	draft, ok := h.drafts.TakeOrderDraft(r.FormValue("state"))
	if !ok {
		h.render.Render(w, r, http.StatusOK, "message", "Order Information", messageView{
			Heading: "Order Information",
			Text:    "No product information available.",
		})
		return
	}

	order, err := h.api.CreateOrder(r.Context(), userID, domain.CreateOrderRequest{
		ProductID: draft.ProductID,
		Quantity:  draft.Quantity,
	})
	if err != nil {
		// Keep the user on the order page with the draft intact.
		token := h.drafts.PutOrderDraft(draft)
		msg := storeapi.Message(err, "An error occurred while creating the order. Please try again.")
		h.notices.Push(noticeKey(w, r), msg, nil)
		http.Redirect(w, r, orderInfoPath(productID, token), http.StatusSeeOther)
		return
	}

	token := h.drafts.PutPaymentDraft(domain.PaymentDraft{
		Order:    *order,
		Name:     draft.Name,
		Price:    draft.Price,
		Quantity: draft.Quantity,
		Total:    fmt.Sprintf("%.2f", draft.Total()),
	})
	http.Redirect(w, r, paymentInfoPath(order.ID, token), http.StatusSeeOther)
}

// List shows the order history. Unauthenticated access renders a login
// prompt, it does not redirect.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, loggedIn := h.sessions.UserID(r)
	if !loggedIn {
		h.render.Render(w, r, http.StatusOK, "message", "Order History", messageView{
			Heading: "Order History",
			Text:    "Please login to view orders",
		})
		return
	}

	orders, err := h.api.ListOrders(r.Context(), userID)
	if err != nil {
		msg := storeapi.Message(err, "Failed to fetch orders. Please try again later.")
		h.notices.Push(noticeKey(w, r), msg, nil)
		h.render.Render(w, r, http.StatusOK, "order_list", "Order History", orderListView{})
		return
	}

	// The endpoint is scoped by user id already, but keep only this user's
	// orders in case the backend over-returns.
	own := orders[:0]
	for _, o := range orders {
		if o.User.ID == userID {
			own = append(own, o)
		}
	}

	h.render.Render(w, r, http.StatusOK, "order_list", "Order History", orderListView{Orders: own})
}

// Cancel withdraws a pending unpaid order and returns to the order history.
func (h *OrderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	userID, loggedIn := h.sessions.UserID(r)
	if !loggedIn {
		h.notices.Push(noticeKey(w, r), "Please login first.", nil)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	orderID, err := pathID(r, "orderId")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := h.api.CancelOrder(r.Context(), userID, orderID); err != nil {
		msg := storeapi.Message(err, "Failed to cancel order")
		h.notices.Push(noticeKey(w, r), msg, nil)
		http.Redirect(w, r, "/orders", http.StatusSeeOther)
		return
	}

	h.notices.Push(noticeKey(w, r), "Order cancelled successfully", nil)
	http.Redirect(w, r, "/orders", http.StatusSeeOther)
}

// CancelPayment refunds a payment and returns to the order history.
func (h *OrderHandler) CancelPayment(w http.ResponseWriter, r *http.Request) {
	userID, loggedIn := h.sessions.UserID(r)
	if !loggedIn {
		h.notices.Push(noticeKey(w, r), "Please login first.", nil)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	orderID, err := pathID(r, "orderId")
	if err != nil {
		http.NotFound(w, r)
		return
	}
	paymentID, err := pathID(r, "paymentId")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if _, err := h.api.CancelPayment(r.Context(), userID, orderID, paymentID); err != nil {
		msg := storeapi.Message(err, "Failed to cancel payment")
		h.notices.Push(noticeKey(w, r), msg, nil)
		http.Redirect(w, r, "/orders", http.StatusSeeOther)
		return
	}

	h.notices.Push(noticeKey(w, r), "Payment cancelled successfully", nil)
	http.Redirect(w, r, "/orders", http.StatusSeeOther)
}
