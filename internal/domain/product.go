package domain

// Product represents a catalog entry. The catalog is loaded once at startup
// and products are never mutated afterwards.
type Product struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Brand    string  `json:"brand"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock_quantity"`
	Specs    string  `json:"specifications"`
	ImageURL string  `json:"image_url"`
}
