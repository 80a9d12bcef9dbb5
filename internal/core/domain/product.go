package domain

// Product is a catalog item. Price is string-typed on the wire — the upstream
// backend serves it that way and every consumer expects it.
type Product struct {
	ProductID  int     `json:"product_id"`
	Name       string  `json:"name"`
	Price      string  `json:"price"`
	SOH        int     `json:"soh"`
	CategoryID int     `json:"category_id"`
	IsActive   bool    `json:"is_active"`
	ImageURL   *string `json:"image_url"`
}

// Category groups products. Deleting a category does not touch products
// referencing it.
type Category struct {
	CategoryID int    `json:"category_id"`
	Name       string `json:"name"`
}
