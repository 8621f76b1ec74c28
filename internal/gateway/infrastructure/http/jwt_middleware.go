package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Rutuauti/banking-transaction-manager-project/internal/pkg/jwt"
)

const UsernameContextKey = "username"

// NewAuthMiddleware guards endpoints that expose directory records. Tokens
// come from login as "Authorization: Bearer <token>".
func NewAuthMiddleware(parser jwt.TokenParser, secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")

		token, found := strings.CutPrefix(header, "Bearer ")
		token = strings.TrimSpace(token)
		if !found || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Authorization required."})
			return
		}

		claims, err := parser.ParseToken(secret, token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid token."})
			return
		}

		c.Set(UsernameContextKey, claims.Username)
		c.Next()
	}
}
