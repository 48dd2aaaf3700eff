package middleware

import "github.com/gin-gonic/gin"

// actorIDKey is the key used to store the acting user's ID in the Gin context.
// Using a custom type prevents collisions.
const actorIDKey = contextKey("actorID")

// GetActorIDFromContext retrieves the acting user ID from the Gin context.
// It returns the actor ID and a boolean indicating if it was found.
func GetActorIDFromContext(c *gin.Context) (string, bool) {
	actorIDVal, exists := c.Get(string(actorIDKey))
	if !exists {
		return "", false
	}

	actorID, ok := actorIDVal.(string)
	if !ok || actorID == "" {
		return "", false
	}
	return actorID, true
}
