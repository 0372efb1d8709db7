package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/starkdipesh/portfolio-api/internal/config"
	"github.com/starkdipesh/portfolio-api/internal/tokens"
	"github.com/starkdipesh/portfolio-api/pkg/logger"
)

// RequireAdmin returns a Gin middleware that verifies the Bearer token issued
// at login. Missing header, malformed header, bad signature and expiry are
// distinct failures internally (logged for diagnosability) but all surface as
// the same 401 so callers simply re-authenticate.
func RequireAdmin(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if auth == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing Authorization header"})
			return
		}
		// Expect 'Bearer <token>'
		var token string
		if n, _ := fmt.Sscanf(auth, "Bearer %s", &token); n != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid Authorization header"})
			return
		}

		claims, err := tokens.VerifyToken(cfg, token)
		if err != nil {
			if errors.Is(err, tokens.ErrTokenExpired) {
				logger.Debugf("rejected expired token from %s", c.ClientIP())
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token has expired"})
				return
			}
			logger.Debugf("rejected invalid token from %s: %v", c.ClientIP(), err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set("claims", claims)
		c.Next()
	}
}
