package domain

// Status values mirror the commerce API enums verbatim.
const (
	OrderPending   = "PENDING"
	OrderCompleted = "COMPLETED"
	OrderRefunded  = "REFUNDED"
	OrderCancelled = "CANCELLED"

	DeliveryPending   = "PENDING"
	DeliveryShipped   = "SHIPPED"
	DeliveryDelivered = "DELIVERED"
	DeliveryCancelled = "CANCELLED"

	PaymentPending   = "PENDING"
	PaymentCompleted = "COMPLETED"
	PaymentRefunded  = "REFUNDED"
	PaymentCancelled = "CANCELLED"
)

// Order is created and owned server-side; the client only reads it or
// triggers state-changing calls against it.
type Order struct {
	ID             int64    `json:"id"`
	Timestamp      string   `json:"timestamp"`
	Quantity       int      `json:"quantity"`
	Amount         float64  `json:"amount"`
	OrderStatus    string   `json:"orderStatus"`
	DeliveryStatus string   `json:"deliveryStatus"`
	Product        Product  `json:"product"`
	User           User     `json:"user"`
	Payment        *Payment `json:"payment,omitempty"`
}

// Payment is the client-visible subset of a payment record.
type Payment struct {
	ID                  int64   `json:"id"`
	Amount              float64 `json:"amount"`
	PaymentStatus       string  `json:"paymentStatus"`
	TransactionRecordID string  `json:"transactionRecordId"`
}

// CanCancelPayment reports whether the Cancel Payment action applies: a
// payment must exist and the order must not already be settled.
func (o *Order) CanCancelPayment() bool {
	if o.Payment == nil {
		return false
	}
	return o.OrderStatus != OrderCompleted && o.OrderStatus != OrderRefunded
}

// CanCancelOrder reports whether the order itself can still be withdrawn:
// only while it is pending and unpaid. Once a payment exists the refund path
// (cancel payment) applies instead.
func (o *Order) CanCancelOrder() bool {
	return o.Payment == nil && o.OrderStatus == OrderPending
}

type CreateOrderRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

type UpdateOrderRequest struct {
	// DeliveryStatus is the backend enum ordinal. Names are rejected.
	DeliveryStatus int `json:"deliveryStatus"`
}

type CreatePaymentRequest struct {
	FromAccountID string `json:"fromAccountId"`
	Quantity      int    `json:"quantity"`
	Address       string `json:"address"`
}
