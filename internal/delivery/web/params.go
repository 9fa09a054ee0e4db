package web

import (
	"fmt"
	"net/http"
	"strconv"

	"storefront/internal/domain"
)

// Small adapters between the router and the handlers: path/query/form value
// extraction with the defaults the pages expect.

func pathID(r *http.Request, name string) (int64, error) {
	raw := r.PathValue(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return id, nil
}

// queryQuantity reads the quantity from the URL, defaulting to 1 and clamped
// to the floor of 1.
func queryQuantity(r *http.Request) int {
	qty, err := strconv.Atoi(r.URL.Query().Get("qty"))
	if err != nil {
		return 1
	}
	return domain.ClampQuantity(qty)
}

func formInt(r *http.Request, name string, fallback int) int {
	v, err := strconv.Atoi(r.FormValue(name))
	if err != nil {
		return fallback
	}
	return v
}

func formFloat(r *http.Request, name string) float64 {
	v, _ := strconv.ParseFloat(r.FormValue(name), 64)
	return v
}
