package backend

import (
	"context"
	"fmt"
	"net/http"

	"shopease_front_end/internal/models"
)

func (c *Client) ListCart(ctx context.Context, bearer string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := c.do(ctx, http.MethodGet, "/api/cart/", bearer, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// AddToCart ajoute quantity unités du produit ; si la ligne existe déjà,
// le backend incrémente la quantité existante.
func (c *Client) AddToCart(ctx context.Context, bearer string, productID, quantity int) error {
	in := map[string]int{"product_id": productID, "quantity": quantity}
	return c.do(ctx, http.MethodPost, "/api/cart/add/", bearer, in, nil)
}

func (c *Client) UpdateCartItem(ctx context.Context, bearer string, itemID, quantity int) error {
	in := map[string]int{"quantity": quantity}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/cart/update/%d/", itemID), bearer, in, nil)
}

func (c *Client) RemoveCartItem(ctx context.Context, bearer string, itemID int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/cart/remove/%d/", itemID), bearer, nil, nil)
}

func (c *Client) ClearCart(ctx context.Context, bearer string) error {
	return c.do(ctx, http.MethodPost, "/api/cart/clear/", bearer, nil, nil)
}
