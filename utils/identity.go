package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// IdentityHeader carries the authenticated caller's identity, set by the
// auth layer in front of this service. The value is opaque and already
// verified; the core only compares it against stored identities.
const IdentityHeader = "X-User"

const identityContextKey = "current_user"

// RequireIdentity rejects requests without a resolved caller identity and
// exposes it to handlers via the request context.
func RequireIdentity(c *gin.Context) {
	user := c.GetHeader(IdentityHeader)
	if user == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"status":  http.StatusUnauthorized,
			"message": "missing caller identity",
		})
		return
	}
	c.Set(identityContextKey, user)
	c.Next()
}

// CurrentUser returns the caller identity set by RequireIdentity
func CurrentUser(c *gin.Context) string {
	return c.GetString(identityContextKey)
}
