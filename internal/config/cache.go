package config

import (
    "strings"
    "time"
)

// CacheConfig defines settings for the response cache placed in front of the
// read-only venue and event listings.  Caching is disabled when Enabled is
// false or no Redis client is configured.  KeyStrategy chooses which parts
// of the request form the key; "user_route_query" keeps per-viewer answers
// apart.
type CacheConfig struct {
    Enabled      bool
    Methods      map[string]bool
    TTL          time.Duration
    KeyStrategy  string
    Prefix       string
    MaxBodyBytes int
}

// LoadCacheConfig reads environment variables to build a CacheConfig.  Defaults
// are used when variables are not set.  All methods are upper-cased.
func LoadCacheConfig() CacheConfig {
    return CacheConfig{
        Enabled:      getenv("CACHE_ENABLED", "true") == "true",
        Methods:      parseMethods(getenv("CACHE_METHODS", "GET")),
        TTL:          parseDur(getenv("CACHE_TTL", "10s")),
        KeyStrategy:  getenv("CACHE_KEY_STRATEGY", "user_route_query"),
        Prefix:       getenv("CACHE_PREFIX", "tk:cache"),
        MaxBodyBytes: atoi(getenv("CACHE_MAX_BODY_BYTES", "262144")),
    }
}

func parseMethods(s string) map[string]bool {
    m := map[string]bool{}
    for _, p := range strings.Split(s, ",") {
        p = strings.TrimSpace(strings.ToUpper(p))
        if p != "" {
            m[p] = true
        }
    }
    return m
}

func parseDur(s string) time.Duration {
    d, err := time.ParseDuration(s)
    if err != nil {
        return time.Second
    }
    return d
}
