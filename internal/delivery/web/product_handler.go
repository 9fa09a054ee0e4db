package web

import (
	"net/http"
	"strings"

	"storefront/internal/checkout"
	"storefront/internal/domain"
	"storefront/internal/session"
	"storefront/internal/storeapi"
)

type ProductHandler struct {
	api      *storeapi.Client
	sessions *session.Manager
	drafts   *checkout.Store
	render   *Renderer
}

func NewProductHandler(api *storeapi.Client, sessions *session.Manager, drafts *checkout.Store, render *Renderer) *ProductHandler {
	return &ProductHandler{api: api, sessions: sessions, drafts: drafts, render: render}
}

type productListView struct {
	Products []domain.Product
}

type productDetailView struct {
	Product  domain.ProductWithQuantity
	IncQty   int
	DecQty   int
	LoggedIn bool
}

// Home renders the product list. A fetch failure renders the inline error
// view; there is no retry.
func (h *ProductHandler) Home(w http.ResponseWriter, r *http.Request) {
	products, err := h.api.ListProducts(r.Context())
	if err != nil {
		msg := storeapi.Message(err, "Failed to fetch products. Please try again later.")
		h.render.Render(w, r, http.StatusBadGateway, "message", "Products", messageView{
			Heading: "Explore Our Products",
			Text:    "Error: " + msg,
		})
		return
	}

	h.render.Render(w, r, http.StatusOK, "home", "Products", productListView{Products: products})
}

// Detail renders one product with the quantity stepper. The quantity lives in
// the URL, defaults to 1 and never goes below 1.
func (h *ProductHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.render.Render(w, r, http.StatusNotFound, "message", "Product", messageView{
			Heading: "Product",
			Text:    "Product not found.",
		})
		return
	}

	qty := queryQuantity(r)

	userID, loggedIn := h.sessions.UserID(r)
	if !loggedIn {
		userID = storeapi.AnonymousUserID
	}

	product, err := h.api.GetProduct(r.Context(), userID, id)
	if err != nil {
		msg := storeapi.Message(err, "Failed to fetch product. Please try again later.")
		h.render.Render(w, r, http.StatusBadGateway, "message", "Product", messageView{
			Heading: "Product",
			Text:    "Error: " + msg,
		})
		return
	}

	h.render.Render(w, r, http.StatusOK, "product_detail", product.Name, productDetailView{
		Product:  domain.ProductWithQuantity{Product: *product, Quantity: qty},
		IncQty:   qty + 1,
		DecQty:   domain.ClampQuantity(qty - 1),
		LoggedIn: loggedIn,
	})
}

// Buy starts the checkout flow: it stashes the product-and-quantity state the
// order page needs and redirects there. Logged-out browsers never get the Buy
// form rendered, but a direct POST is sent to the login page all the same.
func (h *ProductHandler) Buy(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.render.Render(w, r, http.StatusNotFound, "message", "Product", messageView{
			Heading: "Product",
			Text:    "Product not found.",
		})
		return
	}

	if !h.sessions.IsLoggedIn(r) {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	draft := domain.OrderDraft{
		ProductID:   id,
		Name:        r.FormValue("name"),
		Price:       formFloat(r, "price"),
		Quantity:    domain.ClampQuantity(formInt(r, "quantity", 1)),
		Description: strings.TrimSpace(r.FormValue("description")),
	}

	token := h.drafts.PutOrderDraft(draft)
	http.Redirect(w, r, orderInfoPath(id, token), http.StatusSeeOther)
}
