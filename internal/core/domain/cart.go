package domain

// CartItem is keyed by (member_id, product_id). Product name, price and image
// are denormalized for display.
type CartItem struct {
	MemberID     int     `json:"member_id"`
	ProductID    int     `json:"product_id"`
	Quantity     int     `json:"quantity"`
	CreateAt     string  `json:"create_at,omitempty"`
	ProductName  string  `json:"product_name"`
	ProductPrice float64 `json:"product_price"`
	ImageURL     *string `json:"image_url"`
}
