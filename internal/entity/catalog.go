package entity

type CatalogItem struct {
	ID          string   `json:"id"`
	Product     string   `json:"product"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category,omitempty"`
	Active      bool     `json:"active"`
	Price       float64  `json:"price"`
	PromoPrice  *float64 `json:"promo_price,omitempty"`
}
