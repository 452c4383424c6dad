package service

import (
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const uidContextKey = "uid"

// AuthMiddleware verifies the Firebase ID token from the Authorization
// header and stores the caller's uid in the request context. Mutating
// and me-scoped routes are mounted behind it.
func AuthMiddleware(authClient *auth.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idToken := c.GetHeader("Authorization")
		idToken = strings.TrimPrefix(idToken, "Bearer ")
		if idToken == "" {
			logger.Warn("No ID token found",
				zap.String("path", c.Request.URL.Path),
				zap.String("ip", c.ClientIP()))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing Authorization token"})
			c.Abort()
			return
		}

		token, err := authClient.VerifyIDToken(c.Request.Context(), idToken)
		if err != nil {
			logger.Warn("Error verifying ID token",
				zap.String("path", c.Request.URL.Path),
				zap.String("ip", c.ClientIP()),
				zap.Error(err))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid Authorization token"})
			c.Abort()
			return
		}

		c.Set(uidContextKey, token.UID)
		c.Next()
	}
}

// callerUid returns the authenticated uid placed by AuthMiddleware.
func callerUid(c *gin.Context) string {
	return c.GetString(uidContextKey)
}
