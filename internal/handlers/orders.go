package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shopease_front_end/internal/middleware"
	"shopease_front_end/internal/orders"
)

func orderAuth(c *gin.Context) *orders.Auth {
	userID, bearer, ok := middleware.Identity(c)
	if !ok {
		return nil
	}
	return &orders.Auth{UserID: userID, Bearer: bearer}
}

// CreateOrder valide le formulaire, crée la commande à partir du panier
// courant puis vide celui-ci. Le total engagé est recalculé côté backend.
func (h *Handler) CreateOrder(c *gin.Context) {
	var form orders.CheckoutForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	ctx := c.Request.Context()
	oAuth := orderAuth(c)
	cAuth := cartAuth(c)

	items, err := h.Cart.Items(ctx, cAuth)
	if err != nil {
		respondError(c, err)
		return
	}

	order, err := h.Orders.Checkout(ctx, oAuth, form, items)
	if err != nil {
		respondError(c, err)
		return
	}

	// le panier a été consommé : on le vide côté backend aussi
	if err := h.Cart.Clear(ctx, cAuth); err != nil {
		// la commande existe déjà, on ne la remet pas en cause
		c.JSON(http.StatusCreated, gin.H{"order": order, "warning": "Le panier n'a pas pu être vidé"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"order": order})
}

func (h *Handler) ListOrders(c *gin.Context) {
	list, err := h.Orders.List(c.Request.Context(), orderAuth(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": list})
}

func (h *Handler) GetOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID commande invalide"})
		return
	}

	order, err := h.Orders.Get(c.Request.Context(), orderAuth(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// OrderTimeline projette le statut sur la frise de suivi.
func (h *Handler) OrderTimeline(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID commande invalide"})
		return
	}

	order, err := h.Orders.Get(c.Request.Context(), orderAuth(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders.Project(order.Status))
}

// CancelOrder renvoie la commande relue après la demande d'annulation ;
// en cas de refus, le statut affiché reste celui du backend, inchangé.
func (h *Handler) CancelOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID commande invalide"})
		return
	}

	order, err := h.Orders.Cancel(c.Request.Context(), orderAuth(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Commande annulée avec succès", "order": order})
}

// OrderInvoice fait transiter le PDF du backend vers le navigateur.
func (h *Handler) OrderInvoice(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID commande invalide"})
		return
	}

	data, contentType, err := h.Orders.Invoice(c.Request.Context(), orderAuth(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if contentType == "" {
		contentType = "application/pdf"
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="invoice_%d.pdf"`, id))
	c.Data(http.StatusOK, contentType, data)
}

// OrderQR renvoie le QR de suivi en data-URI pour la page de confirmation.
func (h *Handler) OrderQR(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID commande invalide"})
		return
	}

	// vérifie que la commande appartient bien à l'utilisateur
	if _, err := h.Orders.Get(c.Request.Context(), orderAuth(c), id); err != nil {
		respondError(c, err)
		return
	}

	qr, err := orders.OrderQR(orders.TrackingURL(h.Cfg.FrontendOrigin, id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Génération du QR impossible"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"qr": qr})
}
