package domain

// CartLine aggregates quantity for one product in a session's cart.
// Price and Name are snapshots taken when the line is created.
type CartLine struct {
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Brand     string  `json:"brand"`
}
