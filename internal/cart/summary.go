package cart

import "shopease_front_end/internal/models"

// Barème d'affichage du checkout. Le total engagé reste recalculé par le
// backend à la création de la commande.
const (
	FreeShippingThreshold = 999.0
	FlatShippingFee       = 99.0
	TaxRate               = 0.18
)

// Summarize recalcule les totaux à partir des lignes courantes : somme
// simple pour l'affichage, livraison offerte au-dessus du seuil, TVA sur
// le sous-total.
func Summarize(items []models.CartItem) models.CartSummary {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Product.Price * float64(item.Quantity)
	}

	shipping := FlatShippingFee
	if subtotal > FreeShippingThreshold || subtotal == 0 {
		shipping = 0
	}
	tax := subtotal * TaxRate

	return models.CartSummary{
		Subtotal:   subtotal,
		Shipping:   shipping,
		Tax:        tax,
		GrandTotal: subtotal + shipping + tax,
		ItemCount:  len(items),
	}
}
