// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"meetsync/config"

	"github.com/go-redis/redis/v8"
)

// AuthCacheClient is the dedicated client for authorization caching.
var AuthCacheClient *redis.Client

// InitAuthCache initializes the Redis client for authorization caching
// (session tokens and revocations).
func InitAuthCache() {
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := AuthCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Auth Cache): %v", err)
	}
}

// GetAuthCacheClient returns the Redis client for authorization caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}

// CacheAuthToken stores the hash of an issued token under the user's auth key.
// Middleware compares against it so that logout (key deletion) revokes the token.
func CacheAuthToken(userID, tokenHash string) error {
	ctx := context.Background()
	return GetAuthCacheClient().Set(ctx, AuthCachePrefix+userID, tokenHash, AuthCacheTTL).Err()
}

// GetCachedAuthToken returns the cached token hash for a user, or redis.Nil.
func GetCachedAuthToken(userID string) (string, error) {
	ctx := context.Background()
	return GetAuthCacheClient().Get(ctx, AuthCachePrefix+userID).Result()
}

// RevokeAuthToken drops the cached token hash, invalidating the session.
func RevokeAuthToken(userID string) error {
	ctx := context.Background()
	return GetAuthCacheClient().Del(ctx, AuthCachePrefix+userID).Err()
}
