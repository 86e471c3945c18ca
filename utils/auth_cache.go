// File: utils/auth_cache.go
package utils

import (
	"context"
	"time"
)

// AuthCachePrefix namespaces token-hash entries in the auth cache.
const AuthCachePrefix = "authToken:"

// CacheAuthToken stores the hash of an issued token keyed by user ID so the
// auth middleware can validate requests without a database round trip.
func CacheAuthToken(userID, tokenHash string, ttl time.Duration) error {
	client := GetAuthCacheClient()
	ctx := context.Background()
	return client.Set(ctx, AuthCachePrefix+userID, tokenHash, ttl).Err()
}

// GetCachedAuthToken returns the cached token hash for a user, if any.
func GetCachedAuthToken(userID string) (string, error) {
	client := GetAuthCacheClient()
	ctx := context.Background()
	return client.Get(ctx, AuthCachePrefix+userID).Result()
}

// EvictAuthToken removes a user's cached token hash (logout / account deletion).
func EvictAuthToken(userID string) error {
	client := GetAuthCacheClient()
	ctx := context.Background()
	return client.Del(ctx, AuthCachePrefix+userID).Err()
}
