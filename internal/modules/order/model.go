package order

// OrderItem is one requested line as the frontend sends it. Price is
// deliberately absent: it always comes from the Vendus catalog.
type OrderItem struct {
	ProductID any `json:"productId"`
	Quantity  int `json:"quantity"`
}

// CreateOrderRequest is the payload for submitting a new order.
type CreateOrderRequest struct {
	CustomerID    any         `json:"customerId"`
	Items         []OrderItem `json:"items"`
	PaymentMethod string      `json:"paymentMethod"`
	Notes         string      `json:"notes,omitempty"`
	ExternalRef   string      `json:"externalRef,omitempty"`
}

// Line is one validated order line in the shape the Vendus order endpoint
// expects.
type Line struct {
	ProductID any     `json:"product_id"`
	Qty       int     `json:"qty"`
	Price     float64 `json:"price"`
}

// PlaceOrderResult carries the extracted order id plus the full upstream
// response for the caller to inspect.
type PlaceOrderResult struct {
	OrderID any `json:"orderId"`
	Details any `json:"details"`
}
