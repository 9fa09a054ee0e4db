package web

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain"
)

// TestCheckoutFlow walks the whole storefront the way a browser would:
// login, pick a quantity, buy, confirm the order, pay, land on the history.
func TestCheckoutFlow(t *testing.T) {
	order := placedOrder()
	paid := order
	paid.Payment = &domain.Payment{ID: 3, Amount: 25, PaymentStatus: domain.PaymentCompleted, TransactionRecordID: "txn-1"}

	backend := http.NewServeMux()
	backend.Handle("POST /store/users/login", jsonHandler(http.StatusOK, buyer))
	backend.Handle("GET /store/users/7/products/1", jsonHandler(http.StatusOK, mug))
	backend.Handle("POST /store/users/7/orders", jsonHandler(http.StatusCreated, order))
	backend.Handle("POST /store/users/7/orders/11/payments", jsonHandler(http.StatusCreated, paid.Payment))
	backend.Handle("GET /store/users/7/orders", jsonHandler(http.StatusOK, []domain.Order{paid}))

	app := newApp(t, backend)
	b := app.browser(t)

	// Login.
	loc := redirectTarget(t, b.post("/login", url.Values{"email": {"ada@example.com"}, "password": {"secret"}}))
	require.Equal(t, "/", loc.Path)

	// Step the quantity up to 2 and buy.
	body := b.get("/product/1?qty=2").Body.String()
	require.Contains(t, body, "Quantity: 2")

	loc = redirectTarget(t, b.post("/product/1/buy", url.Values{
		"quantity":    {"2"},
		"name":        {"Coffee Mug"},
		"price":       {"12.5"},
		"description": {"A sturdy mug"},
	}))
	require.Equal(t, "/order/1", loc.Path)

	// Order summary carries the picked quantity and the computed total.
	body = b.get(loc.String()).Body.String()
	require.Contains(t, body, "Quantity: 2")
	require.Contains(t, body, "Total: $25.00")

	// Create the order; the payment page shows the same totals.
	loc = redirectTarget(t, b.post("/order/1", url.Values{"state": {loc.Query().Get("state")}}))
	require.Equal(t, "/payment/11", loc.Path)

	body = b.get(loc.String()).Body.String()
	require.Contains(t, body, "Total Amount:</strong> $25.00")

	// Pay and land on the order history with the success banner.
	loc = redirectTarget(t, b.post("/payment/11", url.Values{
		"state":     {loc.Query().Get("state")},
		"accountId": {"acct-42"},
		"address":   {"12 Mill Lane"},
	}))
	require.Equal(t, "/orders", loc.Path)

	body = b.get("/orders").Body.String()
	assert.Contains(t, body, "Payment Successful!")
	assert.Contains(t, body, "Order ID: 11")
	assert.Contains(t, body, "Transaction ID: txn-1")

	assert.Equal(t, 1, app.backend.count("POST /store/users/7/orders"))
	assert.Equal(t, 1, app.backend.count("POST /store/users/7/orders/11/payments"))
}

var dismissAction = regexp.MustCompile(`action="(/notices/[^"]+/dismiss)"`)

func TestNoticeDismiss(t *testing.T) {
	backend := http.NewServeMux()
	backend.Handle("POST /store/users/login",
		jsonHandler(http.StatusUnauthorized, map[string]string{"message": "Invalid credentials"}))

	app := newApp(t, backend)
	b := app.browser(t)

	body := b.post("/login", url.Values{"email": {"ada@example.com"}, "password": {"wrong"}}).Body.String()
	require.Contains(t, body, "Invalid credentials")

	m := dismissAction.FindStringSubmatch(body)
	require.NotNil(t, m, "banner should carry a dismiss form")

	loc := redirectTarget(t, b.post(m[1], nil))
	assert.Equal(t, "/", loc.Path)

	// Gone on the next render.
	body = b.get("/login").Body.String()
	assert.NotContains(t, body, "Invalid credentials")
	assert.Empty(t, b.noticeMessages())
}

func TestNoticeRedirectsBackToReferer(t *testing.T) {
	app := newApp(t, http.NotFoundHandler())
	b := app.browser(t)

	// Seed a banner for this browser.
	b.get("/login")
	key, ok := b.cookies[noticeCookie]
	require.True(t, ok)
	n := app.notices.Push(key.Value, "heads up", nil)

	req := httptest.NewRequest(http.MethodPost, "/notices/"+n.ID+"/dismiss", nil)
	req.Header.Set("Referer", "/orders")
	req.AddCookie(key)
	rec := httptest.NewRecorder()
	app.mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/orders", rec.Header().Get("Location"))
	assert.Empty(t, b.noticeMessages())
}
