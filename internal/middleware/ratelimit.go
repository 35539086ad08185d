package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	LoginMaxAttempts = 5
	LoginCooldown    = 15 * time.Minute
)

// LoginRateLimit limite les tentatives de connexion par identifiant.
// Actif uniquement quand redis est configuré ; sans redis, la protection
// revient au backend.
func LoginRateLimit(client *redis.Client) gin.HandlerFunc {
	if client == nil {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		// Lire le body sans le consommer
		bodyBytes, _ := io.ReadAll(c.Request.Body)

		var input struct {
			Username string `json:"username"`
		}
		if err := json.Unmarshal(bodyBytes, &input); err != nil || input.Username == "" {
			c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
			c.Next()
			return
		}

		// Remettre le body pour les handlers suivants
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		ctx := context.Background()
		key := "login_attempts:" + input.Username
		cooldownKey := "login_cooldown:" + input.Username

		if client.Exists(ctx, cooldownKey).Val() > 0 {
			ttl := client.TTL(ctx, cooldownKey).Val()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       fmt.Sprintf("Trop de tentatives échouées. Réessayez dans %d minutes", int(ttl.Minutes())+1),
				"retry_after": int(ttl.Seconds()),
			})
			c.Abort()
			return
		}

		attempts, _ := client.Get(ctx, key).Int()
		if attempts >= LoginMaxAttempts {
			client.Set(ctx, cooldownKey, "1", LoginCooldown)
			client.Del(ctx, key)
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Trop de tentatives échouées. Compte temporairement bloqué",
			})
			c.Abort()
			return
		}

		c.Next()

		// Compter les échecs, remettre à zéro sur succès
		if c.Writer.Status() == http.StatusUnauthorized {
			client.Incr(ctx, key)
			client.Expire(ctx, key, LoginCooldown)
		} else if c.Writer.Status() < 300 {
			client.Del(ctx, key)
		}
	}
}
