package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/odremano/OBProyect/internal/auth"
	"github.com/odremano/OBProyect/internal/config"
)

const (
	ContextUserID    = "userID"
	ContextNegocioID = "negocioID"
	ContextUserRole  = "userRole"
)

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_authorization_header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_header"})
			return
		}

		claims, err := auth.Parse(cfg.JWTSecret, parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextNegocioID, claims.NegocioID)
		c.Set(ContextUserRole, claims.Role)

		c.Next()
	}
}

// RequireRole corta el request si el rol del token no está en la lista.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextUserRole)
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient_role"})
	}
}

// UserID lee el id de usuario que dejó AuthMiddleware.
func UserID(c *gin.Context) uint {
	return c.GetUint(ContextUserID)
}

// NegocioID lee el tenant que dejó AuthMiddleware.
func NegocioID(c *gin.Context) uint {
	return c.GetUint(ContextNegocioID)
}
