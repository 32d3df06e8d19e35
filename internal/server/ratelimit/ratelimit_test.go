package ratelimit

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestTokenBucket_Allow(t *testing.T) {
	bucket := newTokenBucket(10, 1.0) // 10 tokens, 1 token per second

	// Full burst is allowed immediately
	for i := 0; i < 10; i++ {
		if !bucket.allow() {
			t.Errorf("Expected request %d to be allowed", i+1)
		}
	}

	// 11th request should be denied
	if bucket.allow() {
		t.Error("Expected 11th request to be denied")
	}
}

func TestTokenBucket_Refill(t *testing.T) {
	bucket := newTokenBucket(10, 1.0)

	for i := 0; i < 10; i++ {
		bucket.allow()
	}

	// Wait for one token to refill
	time.Sleep(1100 * time.Millisecond)

	if !bucket.allow() {
		t.Error("Expected request to be allowed after refill")
	}
	if bucket.allow() {
		t.Error("Expected request to be denied after consuming refilled token")
	}
}

func TestTokenBucket_GetStatus(t *testing.T) {
	bucket := newTokenBucket(10, 1.0)

	for i := 0; i < 5; i++ {
		bucket.allow()
	}

	remaining, _ := bucket.getStatus()
	if remaining != 5 {
		t.Errorf("Expected 5 remaining tokens, got %d", remaining)
	}
}

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := limiter.Allow("client", "/api/scan", "POST")
		if !allowed {
			t.Fatal("Disabled limiter should allow everything")
		}
	}
}

func TestLimiter_EndpointLimit(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		Whitelist:     map[string]bool{},
		Blacklist:     map[string]bool{},
		EndpointConfigs: []EndpointConfig{
			{Path: "/api/scan", Method: "POST", Limit: 3, Window: time.Minute, Burst: 3},
		},
	})
	defer limiter.Stop()

	for i := 0; i < 3; i++ {
		allowed, info := limiter.Allow("client", "/api/scan", "POST")
		if !allowed {
			t.Fatalf("Expected request %d to be allowed", i+1)
		}
		if info.Limit != 3 {
			t.Errorf("Expected limit 3, got %d", info.Limit)
		}
	}

	allowed, info := limiter.Allow("client", "/api/scan", "POST")
	if allowed {
		t.Error("Expected 4th request to be denied")
	}
	if info.RetryAfter <= 0 {
		t.Error("Expected positive RetryAfter when denied")
	}
}

func TestLimiter_ClientsAreIndependent(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		Whitelist:     map[string]bool{},
		Blacklist:     map[string]bool{},
		EndpointConfigs: []EndpointConfig{
			{Path: "/api/scan", Method: "POST", Limit: 1, Window: time.Minute, Burst: 1},
		},
	})
	defer limiter.Stop()

	allowed, _ := limiter.Allow("client-a", "/api/scan", "POST")
	if !allowed {
		t.Fatal("Expected client-a's first request to be allowed")
	}
	allowed, _ = limiter.Allow("client-a", "/api/scan", "POST")
	if allowed {
		t.Error("Expected client-a's second request to be denied")
	}

	allowed, _ = limiter.Allow("client-b", "/api/scan", "POST")
	if !allowed {
		t.Error("Expected client-b to have its own bucket")
	}
}

func TestLimiter_WhitelistAndBlacklist(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Minute,
		Whitelist:     map[string]bool{"10.0.0.1": true},
		Blacklist:     map[string]bool{"10.0.0.2": true},
	})
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		allowed, _ := limiter.Allow("10.0.0.1", "/api/scan", "POST")
		if !allowed {
			t.Fatal("Whitelisted client should never be limited")
		}
	}

	allowed, _ := limiter.Allow("10.0.0.2", "/api/scan", "POST")
	if allowed {
		t.Error("Blacklisted client should always be denied")
	}
}

func TestLimiter_ConcurrentAccess(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		Whitelist:     map[string]bool{},
		Blacklist:     map[string]bool{},
	})
	defer limiter.Stop()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			clientID := fmt.Sprintf("client-%d", n%4)
			for j := 0; j < 50; j++ {
				limiter.Allow(clientID, "/api/resumes", "GET")
			}
		}(i)
	}
	wg.Wait()
}

func TestMatchEndpoint_HealthIsUnlimited(t *testing.T) {
	config := MatchEndpoint("/api/health", "GET", DefaultEndpointConfigs())
	if config == nil {
		t.Fatal("Expected health check config")
	}
	if config.Limit != 0 {
		t.Errorf("Expected unlimited health check, got limit %d", config.Limit)
	}
}

func TestMatchEndpoint_ExactMatch(t *testing.T) {
	configs := DefaultEndpointConfigs()

	config := MatchEndpoint("/api/scan", "POST", configs)
	if config == nil {
		t.Fatal("Expected a match for POST /api/scan")
	}
	if config.Limit != 60 {
		t.Errorf("Expected limit 60, got %d", config.Limit)
	}
}

func TestMatchEndpoint_MethodMismatch(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/api/scan", Method: "POST", Limit: 3, Window: time.Minute},
	}

	if config := MatchEndpoint("/api/scan", "GET", configs); config != nil {
		t.Error("Expected no match for a different method")
	}
}

func TestMatchEndpoint_PrefixMatch(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/api/match/", Method: "GET", Limit: 5, Window: time.Minute},
	}

	config := MatchEndpoint("/api/match/job/abc", "GET", configs)
	if config == nil {
		t.Fatal("Expected prefix match")
	}
	if config.Limit != 5 {
		t.Errorf("Expected limit 5, got %d", config.Limit)
	}
}
