package ratelimit

import (
	"context"
	"testing"
	"time"
)

func testConfig() *Config {
	return &Config{
		Enabled:         true,
		WindowDuration:  time.Minute,
		DefaultRequests: 60,
		PublicRequests:  100,
		BookingRequests: 30,
		CommitRequests:  10,
		AdminRequests:   200,
		HealthRequests:  300,
		WhitelistedIPs:  []string{"10.0.0.1"},
	}
}

func TestResultFromEvalRejectsOverBudget(t *testing.T) {
	// Full window: the script replies {0, limit, 0} without recording the request
	result, err := resultFromEval([]interface{}{int64(0), int64(10), int64(0)}, 10, 1718000000)
	if err != nil {
		t.Fatalf("resultFromEval: %v", err)
	}
	if result.Allowed {
		t.Fatal("over-budget request must be rejected")
	}
	if result.Remaining != 0 {
		t.Fatalf("expected 0 remaining, got %d", result.Remaining)
	}
	if result.Limit != 10 {
		t.Fatalf("expected limit 10, got %d", result.Limit)
	}
}

func TestResultFromEvalAllowsWithinBudget(t *testing.T) {
	result, err := resultFromEval([]interface{}{int64(1), int64(3), int64(7)}, 10, 1718000000)
	if err != nil {
		t.Fatalf("resultFromEval: %v", err)
	}
	if !result.Allowed {
		t.Fatal("within-budget request must be allowed")
	}
	if result.Remaining != 7 {
		t.Fatalf("expected 7 remaining, got %d", result.Remaining)
	}
}

func TestResultFromEvalLastSlotStillAllowed(t *testing.T) {
	// The request that fills the window is itself allowed
	result, err := resultFromEval([]interface{}{int64(1), int64(10), int64(0)}, 10, 1718000000)
	if err != nil {
		t.Fatalf("resultFromEval: %v", err)
	}
	if !result.Allowed {
		t.Fatal("the request filling the last slot must be allowed")
	}
	if result.Remaining != 0 {
		t.Fatalf("expected 0 remaining, got %d", result.Remaining)
	}
}

func TestResultFromEvalRejectsMalformedReply(t *testing.T) {
	if _, err := resultFromEval([]interface{}{int64(1), int64(3)}, 10, 0); err == nil {
		t.Fatal("expected error for short reply")
	}
	if _, err := resultFromEval([]interface{}{"1", "3", "7"}, 10, 0); err == nil {
		t.Fatal("expected error for non-integer reply")
	}
}

func TestWindowMemberUnique(t *testing.T) {
	// Requests arriving on the same timestamp still get distinct members
	now := time.Now()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		member := windowMember(now)
		if seen[member] {
			t.Fatalf("duplicate member %q", member)
		}
		seen[member] = true
	}
}

func TestIsAllowedDisabledSkipsRedis(t *testing.T) {
	cfg := testConfig()
	cfg.Enabled = false

	// nil client: touching Redis would panic
	limiter := NewRateLimiter(nil, cfg)

	result, err := limiter.IsAllowed(context.Background(), "192.0.2.1", RateLimitTypeCommit)
	if err != nil {
		t.Fatalf("IsAllowed: %v", err)
	}
	if !result.Allowed {
		t.Fatal("disabled limiter must allow everything")
	}
	if result.Remaining != cfg.CommitRequests {
		t.Fatalf("expected full budget %d, got %d", cfg.CommitRequests, result.Remaining)
	}
}

func TestIsAllowedWhitelistedSkipsRedis(t *testing.T) {
	limiter := NewRateLimiter(nil, testConfig())

	result, err := limiter.IsAllowed(context.Background(), "10.0.0.1", RateLimitTypeDefault)
	if err != nil {
		t.Fatalf("IsAllowed: %v", err)
	}
	if !result.Allowed {
		t.Fatal("whitelisted IP must be allowed")
	}
}

func TestGetLimitTiers(t *testing.T) {
	limiter := NewRateLimiter(nil, testConfig())

	cases := []struct {
		limitType RateLimitType
		want      int
	}{
		{RateLimitTypeDefault, 60},
		{RateLimitTypePublic, 100},
		{RateLimitTypeBooking, 30},
		{RateLimitTypeCommit, 10},
		{RateLimitTypeAdmin, 200},
		{RateLimitTypeHealth, 300},
		{RateLimitType("unknown"), 60},
	}
	for _, tc := range cases {
		if got := limiter.getLimit(tc.limitType); got != tc.want {
			t.Errorf("getLimit(%s) = %d, want %d", tc.limitType, got, tc.want)
		}
	}
}
