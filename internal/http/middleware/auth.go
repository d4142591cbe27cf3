package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	riderIDKey   = "rider_id"
	authTokenKey = "auth_token"
)

// RequireAuth verifies the bearer token issued at login. Any verification
// failure reads as logged out: 401, never 500.
func RequireAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(raw) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		raw = strings.TrimSpace(raw)

		token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if id, ok := claims["rider_id"].(float64); ok {
				c.Set(riderIDKey, int64(id))
			}
		}
		c.Set(authTokenKey, raw)
		c.Next()
	}
}

// GetAuthToken returns the verified raw bearer token for pass-through calls
// to the membership collaborator.
func GetAuthToken(c *gin.Context) string {
	if v, ok := c.Get(authTokenKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// GetRiderID returns the authenticated rider id, 0 when absent.
func GetRiderID(c *gin.Context) int64 {
	if v, ok := c.Get(riderIDKey); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}
