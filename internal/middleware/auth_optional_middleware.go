package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// OptionalAuthMiddleware dipakai route yang juga melayani guest
// (cart endpoint dengan userKey "guest").
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			// Tidak ada token → lanjut sebagai guest
			c.Next()
			return
		}

		token, err := parseToken(tokenString)
		if err != nil || !token.Valid {
			// Token ada tapi invalid / expired → tetap lanjut (anggap guest)
			c.Next()
			return
		}

		// Inject claims ke context
		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if role, exists := claims["role"]; exists {
				c.Set("role", role)
			}
			if userID, exists := claims["user_id"]; exists {
				c.Set("user_id", userID)
			}
		}

		c.Next()
	}
}
