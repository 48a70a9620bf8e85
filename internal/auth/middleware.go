package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CookieName is the cookie checked when no Authorization header is present.
// The scanner UI sets it alongside localStorage.
const CookieName = "auth-token"

const ctxPrincipalKey = "principal"

// TokenFromRequest reads the bearer token, preferring the Authorization
// header over the auth cookie.
func TokenFromRequest(c *gin.Context) string {
	authz := c.GetHeader("Authorization")
	if strings.HasPrefix(authz, "Bearer ") {
		return strings.TrimSpace(authz[len("Bearer "):])
	}
	if cookie, err := c.Cookie(CookieName); err == nil && cookie != "" {
		return cookie
	}
	return ""
}

// RequireAuth verifies the request token and stores the principal on the
// context. Missing and invalid tokens both end the request with 401.
func RequireAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := TokenFromRequest(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No authentication token provided"})
			return
		}
		p, err := VerifyToken(token, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		c.Set(ctxPrincipalKey, *p)
		c.Next()
	}
}

// RequireRole enforces the hierarchical role check after RequireAuth.
func RequireRole(required Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := PrincipalFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No authentication token provided"})
			return
		}
		if !p.HasRole(required) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}
		c.Next()
	}
}

// PrincipalFrom returns the principal stored by RequireAuth.
func PrincipalFrom(c *gin.Context) (Principal, bool) {
	v, ok := c.Get(ctxPrincipalKey)
	if !ok {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}
