package store

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"github.com/shilpgohil/Content-moderation-for-Thesis/pkg/moderation"
)

func testCache(t *testing.T) (*VerdictCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	cache := NewVerdictCache(context.Background(), "redis://"+mr.Addr(), time.Minute)
	if !cache.Enabled() {
		t.Fatalf("cache should be enabled against test redis")
	}
	t.Cleanup(func() { cache.Close() })
	return cache, mr
}

func TestKeyDeterministic(t *testing.T) {
	a := Key("guaranteed returns, dm me")
	b := Key("guaranteed returns, dm me")
	c := Key("guaranteed returns, dm me!")

	if a != b {
		t.Errorf("same content produced different keys: %q vs %q", a, b)
	}
	if a == c {
		t.Errorf("different content produced the same key")
	}
	if !strings.HasPrefix(a, "moderation:verdict:") {
		t.Errorf("key %q missing namespace prefix", a)
	}
}

func TestCacheRoundTrip(t *testing.T) {
	cache, _ := testCache(t)
	ctx := context.Background()

	text := "pay the joining fee to my upi"
	stored := moderation.Verdict{
		Action:     moderation.ActionBlock,
		Confidence: 0.9,
		RiskScore:  0.91,
		Flags:      []string{"scam:joining fee"},
	}

	if _, ok := cache.Get(ctx, text); ok {
		t.Fatalf("Get before Set reported a hit")
	}

	cache.Set(ctx, text, stored)

	got, ok := cache.Get(ctx, text)
	if !ok {
		t.Fatalf("Get after Set missed")
	}
	if got.Action != stored.Action || got.RiskScore != stored.RiskScore {
		t.Errorf("round trip changed verdict: %+v", got)
	}
	if len(got.Flags) != 1 || got.Flags[0] != "scam:joining fee" {
		t.Errorf("Flags = %v", got.Flags)
	}
}

func TestCacheEntryExpires(t *testing.T) {
	cache, mr := testCache(t)
	ctx := context.Background()

	text := "what is a good sip amount"
	cache.Set(ctx, text, moderation.Verdict{Action: moderation.ActionAllow})

	mr.FastForward(2 * time.Minute)

	if _, ok := cache.Get(ctx, text); ok {
		t.Errorf("entry survived past its ttl")
	}
}

func TestCacheDisabledNoOps(t *testing.T) {
	ctx := context.Background()
	cache := NewVerdictCache(ctx, "", time.Minute)

	if cache.Enabled() {
		t.Fatalf("empty url should disable the cache")
	}

	// All operations degrade to no-ops without panicking.
	cache.Set(ctx, "text", moderation.Verdict{Action: moderation.ActionAllow})
	if _, ok := cache.Get(ctx, "text"); ok {
		t.Errorf("disabled cache reported a hit")
	}
	if _, err := cache.Stats(ctx); err == nil {
		t.Errorf("Stats on disabled cache should error")
	}
	if err := cache.Close(); err != nil {
		t.Errorf("Close on disabled cache: %v", err)
	}
}

func TestCacheBadURLDisables(t *testing.T) {
	cache := NewVerdictCache(context.Background(), "not a url", time.Minute)
	if cache.Enabled() {
		t.Errorf("unparseable url should disable the cache")
	}
}

func TestCacheUnreachableServerDisables(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	cache := NewVerdictCache(context.Background(), "redis://"+addr, time.Minute)
	if cache.Enabled() {
		t.Errorf("unreachable server should disable the cache")
	}
}
