package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shopease_front_end/internal/cart"
	"shopease_front_end/internal/middleware"
)

func cartAuth(c *gin.Context) *cart.Auth {
	userID, bearer, ok := middleware.Identity(c)
	if !ok {
		return nil
	}
	return &cart.Auth{UserID: userID, Bearer: bearer}
}

func (h *Handler) GetCart(c *gin.Context) {
	items, err := h.Cart.Items(c.Request.Context(), cartAuth(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// CartSummary recalcule les totaux d'affichage à partir du miroir courant.
func (h *Handler) CartSummary(c *gin.Context) {
	items, err := h.Cart.Items(c.Request.Context(), cartAuth(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart.Summarize(items))
}

func (h *Handler) AddToCart(c *gin.Context) {
	var input struct {
		ProductID int `json:"product_id" binding:"required"`
		Quantity  int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	auth := cartAuth(c)
	if err := h.Cart.Add(c.Request.Context(), auth, input.ProductID, input.Quantity); err != nil {
		respondError(c, err)
		return
	}

	items, _ := h.Cart.Items(c.Request.Context(), auth)
	c.JSON(http.StatusCreated, gin.H{"message": "Produit ajouté au panier", "items": items})
}

func (h *Handler) UpdateCartItem(c *gin.Context) {
	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID invalide"})
		return
	}

	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	auth := cartAuth(c)
	if err := h.Cart.UpdateQuantity(c.Request.Context(), auth, itemID, input.Quantity); err != nil {
		respondError(c, err)
		return
	}

	items, _ := h.Cart.Items(c.Request.Context(), auth)
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handler) RemoveCartItem(c *gin.Context) {
	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID invalide"})
		return
	}

	auth := cartAuth(c)
	if err := h.Cart.Remove(c.Request.Context(), auth, itemID); err != nil {
		respondError(c, err)
		return
	}

	items, _ := h.Cart.Items(c.Request.Context(), auth)
	c.JSON(http.StatusOK, gin.H{"message": "Produit supprimé du panier", "items": items})
}

func (h *Handler) ClearCart(c *gin.Context) {
	if err := h.Cart.Clear(c.Request.Context(), cartAuth(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Panier vidé avec succès"})
}
