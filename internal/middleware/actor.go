package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// actorIDHeader carries the acting user's ID. Authentication and role checks
// happen upstream of this service; the gateway forwards the authenticated
// user here.
const actorIDHeader = "X-Actor-ID"

// ActorMiddleware extracts the acting user from the request header and stores
// it in the Gin context. Requests without an actor are rejected because every
// write records who performed it.
func ActorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		actorID := c.GetHeader(actorIDHeader)
		if actorID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing " + actorIDHeader + " header"})
			return
		}
		c.Set(string(actorIDKey), actorID)
		c.Next()
	}
}
