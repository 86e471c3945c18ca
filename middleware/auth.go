package middleware

import (
	"net/http"
	"strings"
	"time"

	userRepo "voyago/database/repository/user"
	"voyago/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

const tokenCacheTTL = time.Hour

// JWTAuthMiddleware validates the Bearer token and sets "userID" on the
// context. The token hash is checked against the auth cache first; on a
// cache miss the user record's stored hash is consulted and the cache is
// repopulated.
func JWTAuthMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		computedHash := utils.HashToken(tokenString)

		cachedHash, err := utils.GetCachedAuthToken(userID)
		if err == nil {
			if cachedHash != computedHash {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch"})
				return
			}
			c.Set("userID", userID)
			c.Next()
			return
		}
		if err != redis.Nil {
			utils.GetLogger().Warn("auth cache lookup failed, falling back to DB", zap.Error(err))
		}

		// Cache miss: consult the stored token hash on the user record.
		proj := bson.M{"id": 1, "tokenHash": 1}
		usr, err := users.GetByIDWithProjection(userID, proj)
		if err != nil || usr == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication error"})
			return
		}
		if usr.TokenHash == "" || usr.TokenHash != computedHash {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch"})
			return
		}

		if err := utils.CacheAuthToken(userID, computedHash, tokenCacheTTL); err != nil {
			utils.GetLogger().Warn("failed to repopulate auth cache", zap.Error(err))
		}

		c.Set("userID", userID)
		c.Next()
	}
}
