package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"shopease_front_end/internal/backend"
)

// Login échange les identifiants contre une paire de tokens, la persiste
// puis récupère l'identité. Un échec de récupération d'identité ne fait
// pas échouer la connexion : on retombe sur anonyme.
func (h *Handler) Login(c *gin.Context) {
	var input backend.Credentials
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	ctx := c.Request.Context()

	pair, err := h.API.ObtainToken(ctx, input)
	if err != nil {
		if errors.Is(err, backend.ErrUnauthorized) || backend.IsValidation(err) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Identifiants incorrects"})
			return
		}
		respondError(c, err)
		return
	}

	user, err := h.Sessions.Login(ctx, c.GetString("sid"), pair)
	if err != nil {
		respondError(c, err)
		return
	}

	if user == nil {
		c.JSON(http.StatusOK, gin.H{"user": nil})
		return
	}
	log.Printf("✅ Connexion de %s", user.Username)
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *Handler) Register(c *gin.Context) {
	var input backend.Registration
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	user, err := h.API.Register(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": user})
}

// Logout purge identifiants et identité, sans appel réseau. Idempotent.
func (h *Handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()
	if userID := c.GetInt("user_id"); userID != 0 {
		h.Cart.Forget(userID)
	}
	if err := h.Sessions.Logout(ctx, c.GetString("sid")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Déconnecté"})
}

// Me renvoie l'identité courante, ou null pour un anonyme — jamais une
// erreur : l'absence d'identité n'est pas un état d'échec ici.
func (h *Handler) Me(c *gin.Context) {
	user := h.Sessions.Current(c.Request.Context(), c.GetString("sid"))
	c.JSON(http.StatusOK, gin.H{"user": user})
}
