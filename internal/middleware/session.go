package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// SessionCookie identifie le panier côté serveur. Pas un cookie d'auth :
	// juste un uuid anonyme, l'authentification est déléguée à Firebase.
	SessionCookie = "velora_session"

	sessionMaxAge = 86400 // 24h, aligné sur le TTL Redis du panier
)

// CartSession garantit qu'un identifiant de session panier existe
// et le pose dans le contexte Gin sous "session_id".
func CartSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(SessionCookie)
		if err != nil || sid == "" {
			sid = uuid.NewString()
			c.SetCookie(SessionCookie, sid, sessionMaxAge, "/", "", false, true)
		}
		c.Set("session_id", sid)
		c.Next()
	}
}
