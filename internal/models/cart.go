package models

// CartItem est une ligne du panier miroir. Invariant : Quantity >= 1,
// vérifié côté storefront avant tout appel réseau.
type CartItem struct {
	ID       int     `json:"id"`
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// CartSummary est recalculé à chaque rendu à partir des lignes courantes,
// jamais stocké. Le backend reste la référence pour le total engagé.
type CartSummary struct {
	Subtotal   float64 `json:"subtotal"`
	Shipping   float64 `json:"shipping"`
	Tax        float64 `json:"tax"`
	GrandTotal float64 `json:"grand_total"`
	ItemCount  int     `json:"item_count"`
}
