package middleware

import (
	"errors"
	"net/http"
	"strings"

	"restaurant-orders-api/auth"

	"github.com/gin-gonic/gin"
)

// BearerToken extracts the token from the Authorization header, or returns
// the empty string when none is present.
func BearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(h, "Bearer ")
}

// AuthRequired validates the staff session token and injects the username
// into the request context. Location-scoped table tokens are rejected here.
func AuthRequired(issuer *auth.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, err := issuer.VerifySession(BearerToken(c))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": authErrorMessage(err)})
			c.Abort()
			return
		}
		c.Set("username", username)
		c.Next()
	}
}

// GetUsername extracts the authenticated staff username from context
func GetUsername(c *gin.Context) string {
	val, _ := c.Get("username")
	username, _ := val.(string)
	return username
}

func authErrorMessage(err error) string {
	switch {
	case errors.Is(err, auth.ErrMissingToken):
		return "Authorization header required (Bearer <token>)"
	case errors.Is(err, auth.ErrTokenExpired):
		return "Session expired"
	case errors.Is(err, auth.ErrUnknownSubject):
		return "User not found"
	default:
		return "Invalid token"
	}
}
