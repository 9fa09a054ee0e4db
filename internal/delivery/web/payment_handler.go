package web

import (
	"net/http"
	"strings"

	"storefront/internal/checkout"
	"storefront/internal/domain"
	"storefront/internal/notice"
	"storefront/internal/session"
	"storefront/internal/storeapi"
)

type PaymentHandler struct {
	api      *storeapi.Client
	sessions *session.Manager
	drafts   *checkout.Store
	notices  *notice.Center
	render   *Renderer
}

func NewPaymentHandler(api *storeapi.Client, sessions *session.Manager, drafts *checkout.Store, notices *notice.Center, render *Renderer) *PaymentHandler {
	return &PaymentHandler{api: api, sessions: sessions, drafts: drafts, notices: notices, render: render}
}

type paymentInfoView struct {
	Draft domain.PaymentDraft
	State string
}

// Info shows the payment form with the order summary. Without the carried
// order state the page is terminal: no submission is possible.
func (h *PaymentHandler) Info(w http.ResponseWriter, r *http.Request) {
	draft, ok := h.drafts.PeekPaymentDraft(r.URL.Query().Get("state"))
	if !ok {
		h.render.Render(w, r, http.StatusOK, "message", "Payment Information", messageView{
			Heading: "Payment Information",
			Text:    "No order information available.",
		})
		return
	}

	h.render.Render(w, r, http.StatusOK, "payment_info", "Payment Information", paymentInfoView{
		Draft: draft,
		State: r.URL.Query().Get("state"),
	})
}

// Create submits the payment. Input errors and missing sessions are resolved
// locally before any backend call; a backend rejection keeps the form
// editable with the draft restored.
func (h *PaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathID(r, "orderId")
	if err != nil {
		h.render.Render(w, r, http.StatusOK, "message", "Payment Information", messageView{
			Heading: "Payment Information",
			Text:    "No order information available.",
		})
		return
	}

	userID, loggedIn := h.sessions.UserID(r)
	if !loggedIn {
		h.notices.Push(noticeKey(w, r), "Please login first.", nil)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	draft, ok := h.drafts.TakePaymentDraft(r.FormValue("state"))
	if !ok {
		h.render.Render(w, r, http.StatusOK, "message", "Payment Information", messageView{
			Heading: "Payment Information",
			Text:    "No order information available.",
		})
		return
	}

	accountID := strings.TrimSpace(r.FormValue("accountId"))
	address := strings.TrimSpace(r.FormValue("address"))
	if accountID == "" || address == "" {
		token := h.drafts.PutPaymentDraft(draft)
		h.notices.Push(noticeKey(w, r), "Account ID and address are required.", nil)
		http.Redirect(w, r, paymentInfoPath(orderID, token), http.StatusSeeOther)
		return
	}

	_, err = h.api.CreatePayment(r.Context(), userID, draft.Order.ID, domain.CreatePaymentRequest{
		FromAccountID: accountID,
		Quantity:      draft.Order.Quantity,
		Address:       address,
	})
	if err != nil {
		token := h.drafts.PutPaymentDraft(draft)
		msg := storeapi.Message(err, "An Error Occurred")
		h.notices.Push(noticeKey(w, r), msg, nil)
		http.Redirect(w, r, paymentInfoPath(orderID, token), http.StatusSeeOther)
		return
	}

	h.notices.Push(noticeKey(w, r), "Payment Successful!", nil)
	http.Redirect(w, r, "/orders", http.StatusSeeOther)
}
