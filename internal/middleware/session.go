package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"shopease_front_end/internal/i18n"
	"shopease_front_end/internal/session"
)

const sidCookie = "shop_sid"

// SessionMiddleware garantit un identifiant de session par navigateur,
// attache la requête au contexte pour le repository cookie et expose
// l'état de session (bearer, user_id, langue) au reste de la chaîne.
func SessionMiddleware(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(sidCookie)
		if err != nil || sid == "" {
			sid = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(sidCookie, sid, int((30 * 24 * time.Hour).Seconds()), "/", "", false, true)
		}

		ctx := session.WithHTTP(c.Request.Context(), c.Writer, c.Request)
		c.Request = c.Request.WithContext(ctx)

		c.Set("sid", sid)

		sess := store.Session(ctx, sid)
		lang := sess.Lang
		if !i18n.Supported(lang) {
			lang = i18n.DefaultLang
		}
		c.Set("lang", lang)

		if sess.Authenticated() {
			c.Set("bearer", sess.Access)
			if userID, ok := userIDFromToken(sess.Access); ok {
				c.Set("user_id", userID)
			}
		}

		c.Next()
	}
}

// RequireAuth coupe court avec un signal de redirection vers la page de
// connexion : pas d'appel backend pour un anonyme. Le message est servi
// dans la langue de la session.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("bearer") == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":    i18n.Lookup(c.GetString("lang"), "auth.loginRequired"),
				"redirect": "/login",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// Identity renvoie l'identifiant utilisateur et le bearer de la requête.
func Identity(c *gin.Context) (int, string, bool) {
	bearer := c.GetString("bearer")
	if bearer == "" {
		return 0, "", false
	}
	return c.GetInt("user_id"), bearer, true
}

// userIDFromToken lit la claim user_id sans vérifier la signature : le
// backend revalide le token sur chaque appel, on ne fait qu'identifier
// la session localement.
func userIDFromToken(access string) (int, bool) {
	token, _, err := jwt.NewParser().ParseUnverified(access, jwt.MapClaims{})
	if err != nil {
		return 0, false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, false
	}
	id, ok := claims["user_id"].(float64)
	if !ok {
		return 0, false
	}
	return int(id), true
}
