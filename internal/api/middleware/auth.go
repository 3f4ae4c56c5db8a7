package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Marga-Ghale/glam-studio-backend/internal/auth"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware gates admin routes behind the external identity provider.
// Three terminal outcomes: proceed with the principal in context, 401 for a
// missing/invalid credential, 500 when verification itself broke down.
func AuthMiddleware(verifier auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			log.Printf("❌ [Auth] Missing Authorization header - Path: %s", c.Request.URL.Path)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized", "message": "No token provided"})
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			log.Printf("❌ [Auth] Invalid header format - Path: %s", c.Request.URL.Path)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized", "message": "No token provided"})
			c.Abort()
			return
		}

		principal, err := verifier.Verify(c.Request.Context(), parts[1])
		if err != nil {
			if errors.Is(err, auth.ErrInvalidToken) {
				log.Printf("❌ [Auth] Invalid token - Path: %s, Error: %v", c.Request.URL.Path, err)
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized", "message": "Invalid token"})
				c.Abort()
				return
			}
			log.Printf("❌ [Auth] Verification failed - Path: %s, Error: %v", c.Request.URL.Path, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error", "message": "Authentication failed"})
			c.Abort()
			return
		}

		c.Set("principal", principal)
		c.Set("userID", principal.UID)
		c.Next()
	}
}

// RequestLogger logs all incoming requests with details
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		duration := time.Since(start)
		status := c.Writer.Status()

		statusEmoji := "✅"
		if status >= 400 && status < 500 {
			statusEmoji = "⚠️"
		} else if status >= 500 {
			statusEmoji = "❌"
		}

		log.Printf("%s [%s] %s %d - %v", statusEmoji, method, path, status, duration)
	}
}

// GetPrincipal extracts the verified principal from the gin context
func GetPrincipal(c *gin.Context) *auth.Principal {
	value, exists := c.Get("principal")
	if !exists {
		return nil
	}
	principal, _ := value.(*auth.Principal)
	return principal
}
