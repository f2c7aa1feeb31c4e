package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthMiddlewareJWT accepts "Authorization: Bearer <token>" or, for websocket
// upgrades that cannot set headers, a token query parameter. The token must
// belong to the :frameId of the route when the route has one.
func AuthMiddlewareJWT() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := c.Query("token")
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			if !strings.HasPrefix(authHeader, "Bearer ") {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "token ausente ou inválido"})
				return
			}
			tokenStr = strings.TrimPrefix(authHeader, "Bearer ")
		}
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "token ausente ou inválido"})
			return
		}

		claims, err := ValidateTokenJWT(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "token invalido ou expirado"})
			return
		}

		if frameID := c.Param("frameId"); frameID != "" && frameID != claims.FrameID {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "message": "token não pertence a este frame"})
			return
		}

		// Setando dados no contexto
		c.Set("frameID", claims.FrameID)
		c.Set("ownerID", claims.OwnerID)

		c.Next()
	}
}
