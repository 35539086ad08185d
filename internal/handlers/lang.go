package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shopease_front_end/internal/i18n"
)

// GetLang renvoie la langue courante, sa table de chaînes et les langues
// disponibles.
func (h *Handler) GetLang(c *gin.Context) {
	lang := c.GetString("lang")
	c.JSON(http.StatusOK, gin.H{
		"lang":      lang,
		"languages": i18n.Languages(),
		"strings":   i18n.Table(lang),
	})
}

// SetLang persiste la préférence de langue dans la session. La préférence
// survit à la déconnexion.
func (h *Handler) SetLang(c *gin.Context) {
	var input struct {
		Lang string `json:"lang" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	if !i18n.Supported(input.Lang) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Langue non supportée"})
		return
	}

	if err := h.Sessions.SetLang(c.Request.Context(), c.GetString("sid"), input.Lang); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"lang": input.Lang, "strings": i18n.Table(input.Lang)})
}
