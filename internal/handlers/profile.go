package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shopease_front_end/internal/backend"
)

// GetProfile renvoie le profil complet de l'utilisateur connecté, relu
// depuis le backend pour ne jamais servir un profil périmé.
func (h *Handler) GetProfile(c *gin.Context) {
	user, err := h.API.Me(c.Request.Context(), c.GetString("bearer"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// UpdateProfile transmet les champs modifiés au backend, qui reste seul
// juge de leur validité (doublon de username, format d'email).
func (h *Handler) UpdateProfile(c *gin.Context) {
	var input backend.ProfileUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	user, err := h.API.UpdateProfile(c.Request.Context(), c.GetString("bearer"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profil mis à jour", "user": user})
}
