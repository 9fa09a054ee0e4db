package domain

// Product is read-only from the client's perspective.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// ProductWithQuantity pairs a product with the quantity picked on the detail
// page. The quantity exists only while browsing; it is forwarded into the
// checkout flow explicitly or discarded.
type ProductWithQuantity struct {
	Product
	Quantity int `json:"quantity"`
}

// ClampQuantity enforces the quantity floor of 1. There is no upper bound.
func ClampQuantity(qty int) int {
	if qty < 1 {
		return 1
	}
	return qty
}
