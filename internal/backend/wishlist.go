package backend

import (
	"context"
	"fmt"
	"net/http"

	"shopease_front_end/internal/models"
)

func (c *Client) ListWishlist(ctx context.Context, bearer string) ([]models.WishlistEntry, error) {
	var entries []models.WishlistEntry
	if err := c.do(ctx, http.MethodGet, "/api/products/wishlist/", bearer, nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *Client) AddToWishlist(ctx context.Context, bearer string, productID int) error {
	in := map[string]int{"product_id": productID}
	return c.do(ctx, http.MethodPost, "/api/products/wishlist/add/", bearer, in, nil)
}

func (c *Client) RemoveFromWishlist(ctx context.Context, bearer string, productID int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/products/wishlist/remove/%d/", productID), bearer, nil, nil)
}

func (c *Client) WishlistCount(ctx context.Context, bearer string) (int, error) {
	var out struct {
		Count int `json:"count"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/products/wishlist/count/", bearer, nil, &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}
