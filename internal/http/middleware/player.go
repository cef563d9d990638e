package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PlayerHeader carries the opaque player identifier. The engine trusts it
// as-is; anything beyond that is outside this service.
const PlayerHeader = "X-Player-ID"

const playerKey = "player_id"

// PlayerID requires the player header on every request it guards and puts
// the id into the gin context.
func PlayerID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(PlayerHeader)
		if id == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing player id"})
			return
		}
		c.Set(playerKey, id)
		c.Next()
	}
}

// GetPlayerID reads the id set by PlayerID.
func GetPlayerID(c *gin.Context) (string, bool) {
	v, ok := c.Get(playerKey)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}
