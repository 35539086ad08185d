package models

// Product est en lecture seule côté storefront : le backend est
// propriétaire du stock et du prix.
type Product struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	Image       string    `json:"image,omitempty"`
	Category    *Category `json:"category,omitempty"`
	Featured    bool      `json:"featured"`
	Trending    bool      `json:"trending"`
}

type Category struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Description  string `json:"description,omitempty"`
	Image        string `json:"image,omitempty"`
	ProductCount int    `json:"product_count,omitempty"`
}
