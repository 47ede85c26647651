package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	// UserNameHeader carries the caller identity. The gateway does no
	// authentication of its own; the value is forwarded verbatim to the
	// rental service which scopes every lookup by it.
	UserNameHeader = "X-User-Name"

	identityKey = "caller_identity"
)

// RequireIdentity rejects requests without the X-User-Name header and stores
// the identity in the request context as an opaque string. Handlers and the
// orchestrator read it via CallerIdentity, never from the header directly.
func RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.GetHeader(UserNameHeader)
		if username == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "X-User-Name header is required"})
			return
		}
		c.Set(identityKey, username)
		c.Next()
	}
}

// CallerIdentity returns the identity stored by RequireIdentity.
func CallerIdentity(c *gin.Context) string {
	return c.GetString(identityKey)
}
