package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shopease_front_end/internal/middleware"
	"shopease_front_end/internal/wishlist"
)

func wishlistAuth(c *gin.Context) *wishlist.Auth {
	userID, bearer, ok := middleware.Identity(c)
	if !ok {
		return nil
	}
	return &wishlist.Auth{UserID: userID, Bearer: bearer}
}

func (h *Handler) GetWishlist(c *gin.Context) {
	entries, err := h.Wishlist.Items(c.Request.Context(), wishlistAuth(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *Handler) AddToWishlist(c *gin.Context) {
	var input struct {
		ProductID int `json:"product_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if err := h.Wishlist.Add(c.Request.Context(), wishlistAuth(c), input.ProductID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Produit ajouté à la wishlist", "product_id": input.ProductID})
}

func (h *Handler) RemoveFromWishlist(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	if err := h.Wishlist.Remove(c.Request.Context(), wishlistAuth(c), productID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Produit retiré de la wishlist"})
}

func (h *Handler) WishlistCount(c *gin.Context) {
	count, err := h.Wishlist.Count(c.Request.Context(), wishlistAuth(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// WishlistContains répond à la question d'appartenance pour un produit,
// pour que les pages de listing marquent le cœur.
func (h *Handler) WishlistContains(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	member, err := h.Wishlist.IsMember(c.Request.Context(), wishlistAuth(c), productID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product_id": productID, "in_wishlist": member})
}
