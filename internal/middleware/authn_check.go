package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	firebase "firebase.google.com/go/v4"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	firebaseutil "github.com/Shivaganesh9/DailyReflectAI/internal/firebase"
)

const authTokenCacheTTL = time.Hour

// AuthMiddleware verifies the Bearer ID token and sets the owning user's
// uid in the request context. Verified tokens are cached in Redis so the
// Firebase round trip happens once per token per hour.
func AuthMiddleware(firebaseApp *firebase.App, redisClient *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		const bearerPrefix = "Bearer "
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header must start with 'Bearer '"})
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, bearerPrefix)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token is required"})
			c.Abort()
			return
		}

		ctx := context.Background()

		// Cached verification first
		var userUID string
		cacheKey := "auth_token:" + token
		if redisClient != nil {
			if cached, err := redisClient.Get(ctx, cacheKey).Result(); err == nil && cached != "" {
				userUID = cached
			}
		}

		// Fall back to verifying the ID token with Firebase
		if userUID == "" && firebaseApp != nil {
			if authClient, err := firebaseutil.GetAuthClient(firebaseApp); err == nil {
				if idToken, err := authClient.VerifyIDToken(ctx, token); err == nil {
					userUID = idToken.UID
					if redisClient != nil {
						redisClient.Set(ctx, cacheKey, userUID, authTokenCacheTTL)
					}
				}
			}
		}

		if userUID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("uid", userUID)
		c.Next()
	}
}
