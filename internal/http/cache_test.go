package http

import (
	"fmt"
	"testing"
	"time"
)

func TestLRUCacheBasicOperations(t *testing.T) {
	cache := newLRUCache[string](3, time.Minute)

	cache.Set("a", "1")
	cache.Set("b", "2")

	if v, ok := cache.Get("a"); !ok || v != "1" {
		t.Fatalf("get a = %q, %v", v, ok)
	}
	if _, ok := cache.Get("missing"); ok {
		t.Fatal("missing key should not be found")
	}

	cache.Delete("a")
	if _, ok := cache.Get("a"); ok {
		t.Fatal("deleted key should not be found")
	}
}

func TestLRUCacheEviction(t *testing.T) {
	cache := newLRUCache[int](3, time.Minute)

	for i := 0; i < 3; i++ {
		cache.Set(fmt.Sprintf("k%d", i), i)
	}

	// Touch k0 so it becomes most recently used, then overflow.
	cache.Get("k0")
	cache.Set("k3", 3)

	if _, ok := cache.Get("k1"); ok {
		t.Fatal("least recently used entry should have been evicted")
	}
	for _, key := range []string{"k0", "k2", "k3"} {
		if _, ok := cache.Get(key); !ok {
			t.Fatalf("key %s should survive eviction", key)
		}
	}
}

func TestLRUCacheTTLExpiry(t *testing.T) {
	cache := newLRUCache[int](10, 10*time.Millisecond)

	cache.Set("k", 1)
	if _, ok := cache.Get("k"); !ok {
		t.Fatal("fresh entry should be found")
	}

	time.Sleep(20 * time.Millisecond)
	if _, ok := cache.Get("k"); ok {
		t.Fatal("expired entry should not be found")
	}
}

func TestLRUCacheClear(t *testing.T) {
	cache := newLRUCache[int](10, time.Minute)

	for i := 0; i < 5; i++ {
		cache.Set(fmt.Sprintf("k%d", i), i)
	}
	cache.Clear()

	for i := 0; i < 5; i++ {
		if _, ok := cache.Get(fmt.Sprintf("k%d", i)); ok {
			t.Fatalf("entry k%d should be gone after Clear", i)
		}
	}

	// Cache remains usable after Clear.
	cache.Set("fresh", 42)
	if v, ok := cache.Get("fresh"); !ok || v != 42 {
		t.Fatalf("get fresh = %d, %v", v, ok)
	}
}

func TestLRUCacheCleanExpired(t *testing.T) {
	cache := newLRUCache[int](10, 10*time.Millisecond)

	cache.Set("a", 1)
	cache.Set("b", 2)
	time.Sleep(20 * time.Millisecond)

	if removed := cache.CleanExpired(); removed != 2 {
		t.Fatalf("removed = %d, want 2", removed)
	}
}

func TestRateLimiterAllow(t *testing.T) {
	rl := &rateLimiter{
		clients:     make(map[string]*clientInfo),
		stopCleanup: make(chan struct{}),
	}
	metrics := &securityMetrics{}

	for i := 0; i < 60; i++ {
		if !rl.allow("10.0.0.1", metrics) {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if rl.allow("10.0.0.1", metrics) {
		t.Fatal("request 61 should be rejected")
	}
	if metrics.RateLimitHits() != 1 {
		t.Fatalf("rate limit hits = %d, want 1", metrics.RateLimitHits())
	}

	// Other clients are unaffected.
	if !rl.allow("10.0.0.2", metrics) {
		t.Fatal("different client should be allowed")
	}
}
