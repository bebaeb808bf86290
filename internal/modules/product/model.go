package product

// Product is the stable view the PowerApps frontend consumes. It is built
// fresh per request from the Vendus catalog, never cached.
type Product struct {
	ID            any      `json:"id"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	Stock         *float64 `json:"stock"`
	Category      string   `json:"category"`
	ImageURL      string   `json:"imageUrl"`
	ImageURLSmall string   `json:"imageUrlSmall"`
}
