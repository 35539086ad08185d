package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shopease_front_end/internal/events"
	"shopease_front_end/internal/middleware"
)

// Notifications ouvre le canal websocket des invalidations de badge
// (panier, wishlist) pour l'utilisateur connecté.
func (h *Handler) Notifications(c *gin.Context) {
	userID, _, ok := middleware.Identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Connexion requise"})
		return
	}
	events.ServeWS(h.Bus, userID, c.Writer, c.Request)
}
