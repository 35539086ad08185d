package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"shopease_front_end/internal/models"
)

// ProductQuery reprend les filtres supportés par le backend.
// Le moteur de recherche lui-même est côté backend, on ne fait que
// transmettre les paramètres.
type ProductQuery struct {
	Search   string
	Category string
	MinPrice float64
	MaxPrice float64
	Trending bool
	Featured bool
}

func (q ProductQuery) encode() string {
	v := url.Values{}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	if q.MinPrice > 0 {
		v.Set("min_price", strconv.FormatFloat(q.MinPrice, 'f', -1, 64))
	}
	if q.MaxPrice > 0 {
		v.Set("max_price", strconv.FormatFloat(q.MaxPrice, 'f', -1, 64))
	}
	if q.Trending {
		v.Set("trending", "true")
	}
	if q.Featured {
		v.Set("featured", "true")
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}

func (c *Client) ListProducts(ctx context.Context, q ProductQuery) ([]models.Product, error) {
	var products []models.Product
	if err := c.do(ctx, http.MethodGet, "/api/products/"+q.encode(), "", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	var product models.Product
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/products/%d/", id), "", nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.do(ctx, http.MethodGet, "/api/products/categories/", "", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// CategoryProducts liste les produits d'une catégorie par slug, avec
// recherche texte optionnelle.
func (c *Client) CategoryProducts(ctx context.Context, slug, search string) ([]models.Product, error) {
	path := "/api/products/category/" + url.PathEscape(slug) + "/"
	if search != "" {
		path += "?search=" + url.QueryEscape(search)
	}
	var products []models.Product
	if err := c.do(ctx, http.MethodGet, path, "", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}
