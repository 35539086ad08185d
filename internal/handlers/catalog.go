package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shopease_front_end/internal/backend"
)

// ListProducts passe les filtres au backend tels quels : recherche texte,
// catégorie, fourchette de prix, mises en avant.
func (h *Handler) ListProducts(c *gin.Context) {
	query := backend.ProductQuery{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Trending: c.Query("trending") == "true",
		Featured: c.Query("featured") == "true",
	}
	if v, err := strconv.ParseFloat(c.Query("min_price"), 64); err == nil {
		query.MinPrice = v
	}
	if v, err := strconv.ParseFloat(c.Query("max_price"), 64); err == nil {
		query.MaxPrice = v
	}

	products, err := h.API.ListProducts(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *Handler) GetProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	product, err := h.API.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.API.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *Handler) CategoryProducts(c *gin.Context) {
	products, err := h.API.CategoryProducts(c.Request.Context(), c.Param("slug"), c.Query("search"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}
