package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"shopease_front_end/internal/backend"
	"shopease_front_end/internal/cart"
	"shopease_front_end/internal/config"
	"shopease_front_end/internal/events"
	"shopease_front_end/internal/i18n"
	"shopease_front_end/internal/orders"
	"shopease_front_end/internal/session"
	"shopease_front_end/internal/wishlist"
)

// Handler regroupe les dépendances des endpoints. Chaque handler attrape
// ses erreurs localement et les convertit en réponse JSON : rien ne
// remonte à un gestionnaire global.
type Handler struct {
	Cfg      config.Config
	API      *backend.Client
	Sessions *session.Store
	Cart     *cart.Store
	Wishlist *wishlist.Store
	Orders   *orders.Service
	Bus      *events.Bus
}

// respondError traduit la taxonomie d'erreurs en réponse HTTP. Une panne
// de transport devient un message générique, un refus de validation garde
// les messages de champs du backend.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, cart.ErrLoginRequired),
		errors.Is(err, wishlist.ErrLoginRequired),
		errors.Is(err, orders.ErrLoginRequired),
		errors.Is(err, backend.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":    i18n.Lookup(c.GetString("lang"), "auth.loginRequired"),
			"redirect": "/login",
		})

	case errors.Is(err, backend.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Ressource introuvable"})

	case errors.Is(err, cart.ErrQuantityTooLow):
		c.JSON(http.StatusBadRequest, gin.H{"error": "La quantité minimale est 1"})

	case errors.Is(err, orders.ErrNotCancellable):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cette commande ne peut plus être annulée"})

	case errors.Is(err, orders.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Le panier est vide"})

	default:
		var formErr *orders.FormError
		if errors.As(err, &formErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": formErr.Message, "field": formErr.Field})
			return
		}
		var valErr *backend.ValidationError
		if errors.As(err, &valErr) {
			body := gin.H{"error": valErr.Error()}
			if len(valErr.Fields) > 0 {
				body["fields"] = valErr.Fields
			}
			c.JSON(http.StatusBadRequest, body)
			return
		}
		log.Printf("❌ Erreur backend: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Une erreur est survenue, réessayez plus tard"})
	}
}
