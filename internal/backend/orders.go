package backend

import (
	"context"
	"fmt"
	"net/http"

	"shopease_front_end/internal/models"
)

// OrderCreate est le corps de POST /api/orders/. Le backend recalcule le
// total à partir des prix courants et décrémente le stock ; un stock
// insuffisant revient en ValidationError.
type OrderCreate struct {
	ShippingAddress string                  `json:"shipping_address"`
	Phone           string                  `json:"phone"`
	Items           []models.OrderItemWrite `json:"items_write"`
}

func (c *Client) CreateOrder(ctx context.Context, bearer string, in OrderCreate) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodPost, "/api/orders/", bearer, in, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) ListOrders(ctx context.Context, bearer string) ([]models.Order, error) {
	var orders []models.Order
	if err := c.do(ctx, http.MethodGet, "/api/orders/", bearer, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) GetOrder(ctx context.Context, bearer string, id int) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/orders/%d/", id), bearer, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// CancelOrder demande l'annulation. Le backend n'accepte la transition
// que depuis PLACED ; tout autre statut revient en ValidationError.
func (c *Client) CancelOrder(ctx context.Context, bearer string, id int) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/api/orders/%d/cancel/", id), bearer, nil, nil)
}

// OrderInvoice télécharge la facture PDF générée par le backend.
func (c *Client) OrderInvoice(ctx context.Context, bearer string, id int) ([]byte, string, error) {
	return c.raw(ctx, fmt.Sprintf("/api/orders/%d/invoice/", id), bearer)
}
