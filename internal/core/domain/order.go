package domain

// Order is a placed order with its line items.
type Order struct {
	OrderID     int           `json:"order_id"`
	MemberID    int           `json:"member_id"`
	TotalAmount float64       `json:"total_amount"`
	CreateAt    string        `json:"create_at"`
	Details     []OrderDetail `json:"details,omitempty"`
}

// OrderDetail is a single line item of an order.
type OrderDetail struct {
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}
