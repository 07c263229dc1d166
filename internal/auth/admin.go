// Package auth holds the portal's authentication scaffolding.
//
// The portal runs fully open by default. When an admin token is
// configured, the destructive /api/system endpoints require it as a
// bearer token; nothing else is guarded.
package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AdminGuard validates a configured admin token. Only a bcrypt hash of
// the token is kept in memory.
type AdminGuard struct {
	hash []byte
}

// NewAdminGuard hashes the configured token. An empty token returns
// nil, meaning no guard is installed.
func NewAdminGuard(token string, cost int) (*AdminGuard, error) {
	if token == "" {
		return nil, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(token), cost)
	if err != nil {
		return nil, err
	}
	return &AdminGuard{hash: hash}, nil
}

// Middleware rejects requests that do not carry the admin token as
// "Authorization: Bearer <token>".
func (g *AdminGuard) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" || bcrypt.CompareHashAndPassword(g.hash, []byte(token)) != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}
