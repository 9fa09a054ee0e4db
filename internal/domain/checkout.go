package domain

// OrderDraft is the transient state forwarded from the product detail page to
// the order page. It lives only in the checkout state store; losing it (direct
// URL entry, expiry, replayed submit) degrades to a fallback view, never an
// error.
type OrderDraft struct {
	ProductID   int64
	Name        string
	Price       float64
	Quantity    int
	Description string
}

// Total is the display total, unit price times quantity. The authoritative
// amount is whatever the API returns on order creation.
func (d OrderDraft) Total() float64 {
	return d.Price * float64(d.Quantity)
}

// PaymentDraft carries the created order from the order page to the payment
// page, same lifecycle as OrderDraft.
type PaymentDraft struct {
	Order    Order
	Name     string
	Price    float64
	Quantity int
	Total    string
}
