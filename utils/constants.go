// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
// Sessions outlive it only by re-authenticating through Google.
const AuthCacheTTL = 12 * time.Hour
