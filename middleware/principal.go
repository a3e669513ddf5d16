// middleware/principal.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"thecut/utils"
)

const (
	principalKey = "principal"
)

// Principal is what this service consumes from the identity collaborator: an
// identifier plus whether the caller authenticated. Anonymous principals may
// read public data and run the booking wizard; authenticated barbers
// additionally read their dashboard and write their own profile.
type Principal struct {
	BarberSlug    string
	Authenticated bool
}

// PrincipalMiddleware resolves the caller's principal from an optional
// Bearer token. A missing or invalid token yields an anonymous principal
// rather than a rejection.
func PrincipalMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := Principal{}
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if sub, err := utils.ValidateToken(tokenString); err == nil {
				principal = Principal{BarberSlug: sub, Authenticated: true}
			}
		}
		c.Set(principalKey, principal)
		c.Next()
	}
}

// RequireBarber aborts unless the caller is an authenticated barber.
func RequireBarber() gin.HandlerFunc {
	return func(c *gin.Context) {
		p := GetPrincipal(c)
		if !p.Authenticated {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Next()
	}
}

// GetPrincipal returns the resolved principal for this request.
func GetPrincipal(c *gin.Context) Principal {
	if v, exists := c.Get(principalKey); exists {
		if p, ok := v.(Principal); ok {
			return p
		}
	}
	return Principal{}
}
