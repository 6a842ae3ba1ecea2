// Package store holds the optional persistence layers: a Redis verdict
// cache and a Postgres audit trail. Both are disabled by empty
// configuration and the engine runs fine without either.
package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shilpgohil/Content-moderation-for-Thesis/pkg/moderation"
)

// VerdictCache caches verdicts keyed by content hash so repeated and
// copy-pasted messages skip the full pipeline.
type VerdictCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewVerdictCache connects to Redis at url. An empty url returns a
// disabled cache; a connection failure logs a warning and disables
// caching rather than failing startup.
func NewVerdictCache(ctx context.Context, url string, ttl time.Duration) *VerdictCache {
	if url == "" {
		return &VerdictCache{}
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		log.Printf("[WARN] verdict cache disabled: bad redis url: %v", err)
		return &VerdictCache{}
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("[WARN] verdict cache disabled: %v", err)
		return &VerdictCache{}
	}
	log.Printf("[STARTUP] verdict cache connected, ttl %s", ttl)
	return &VerdictCache{client: client, ttl: ttl}
}

// Enabled reports whether caching is active.
func (c *VerdictCache) Enabled() bool { return c != nil && c.client != nil }

// Key hashes message content into a cache key. Verdicts depend only
// on content, so identical messages share an entry.
func Key(text string) string {
	sum := sha256.Sum256([]byte(text))
	return "moderation:verdict:" + hex.EncodeToString(sum[:])
}

// Get returns the cached verdict for text, or false on miss or error.
func (c *VerdictCache) Get(ctx context.Context, text string) (moderation.Verdict, bool) {
	var verdict moderation.Verdict
	if !c.Enabled() {
		return verdict, false
	}
	raw, err := c.client.Get(ctx, Key(text)).Bytes()
	if err != nil {
		return verdict, false
	}
	if err := json.Unmarshal(raw, &verdict); err != nil {
		return verdict, false
	}
	return verdict, true
}

// Set stores a verdict for text. Errors are logged and dropped: a
// cache write must never fail a moderation request.
func (c *VerdictCache) Set(ctx context.Context, text string, verdict moderation.Verdict) {
	if !c.Enabled() {
		return
	}
	raw, err := json.Marshal(verdict)
	if err != nil {
		log.Printf("[WARN] verdict cache encode failed: %v", err)
		return
	}
	if err := c.client.Set(ctx, Key(text), raw, c.ttl).Err(); err != nil {
		log.Printf("[WARN] verdict cache write failed: %v", err)
	}
}

// Close releases the Redis connection.
func (c *VerdictCache) Close() error {
	if !c.Enabled() {
		return nil
	}
	return c.client.Close()
}

// Stats returns cache-side counters for the health endpoint.
func (c *VerdictCache) Stats(ctx context.Context) (string, error) {
	if !c.Enabled() {
		return "", fmt.Errorf("cache disabled")
	}
	return c.client.Info(ctx, "stats").Result()
}
