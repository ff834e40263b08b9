package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(configs []EndpointConfig) *Limiter {
	return NewLimiter(&Config{
		Enabled:         true,
		DefaultLimit:    100,
		DefaultWindow:   time.Minute,
		CleanupInterval: 0, // no background goroutine in tests
		Whitelist:       make(map[string]bool),
		Blacklist:       make(map[string]bool),
		EndpointConfigs: configs,
	})
}

func TestTokenBucketExhaustsBurst(t *testing.T) {
	bucket := newTokenBucket(3, 0.001) // effectively no refill during the test

	for i := 0; i < 3; i++ {
		assert.True(t, bucket.allow(), "request %d should be allowed", i)
	}
	assert.False(t, bucket.allow(), "burst exhausted")
}

func TestLimiterEnforcesEndpointBurst(t *testing.T) {
	limiter := newTestLimiter([]EndpointConfig{
		{Path: "/v1/analyze", Method: "POST", Limit: 2, Window: time.Hour, Burst: 2},
	})
	defer limiter.Stop()

	allowed, _ := limiter.Allow("10.0.0.1", "/v1/analyze", "POST")
	require.True(t, allowed)
	allowed, _ = limiter.Allow("10.0.0.1", "/v1/analyze", "POST")
	require.True(t, allowed)

	allowed, info := limiter.Allow("10.0.0.1", "/v1/analyze", "POST")
	assert.False(t, allowed)
	assert.Equal(t, 2, info.Limit)
	assert.GreaterOrEqual(t, info.RetryAfter, time.Duration(0))
}

func TestLimiterIsolatesClients(t *testing.T) {
	limiter := newTestLimiter([]EndpointConfig{
		{Path: "/v1/analyze", Method: "POST", Limit: 1, Window: time.Hour, Burst: 1},
	})
	defer limiter.Stop()

	allowed, _ := limiter.Allow("10.0.0.1", "/v1/analyze", "POST")
	require.True(t, allowed)
	allowed, _ = limiter.Allow("10.0.0.1", "/v1/analyze", "POST")
	require.False(t, allowed)

	// A different client gets its own bucket.
	allowed, _ = limiter.Allow("10.0.0.2", "/v1/analyze", "POST")
	assert.True(t, allowed)
}

func TestLimiterWhitelistAndBlacklist(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Hour,
		Whitelist:     map[string]bool{"10.0.0.9": true},
		Blacklist:     map[string]bool{"10.0.0.66": true},
	})
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		allowed, _ := limiter.Allow("10.0.0.9", "/v1/analyze", "POST")
		assert.True(t, allowed, "whitelisted client is never limited")
	}

	allowed, _ := limiter.Allow("10.0.0.66", "/v1/analyze", "POST")
	assert.False(t, allowed, "blacklisted client is always rejected")
}

func TestLimiterDisabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := limiter.Allow("10.0.0.1", "/v1/analyze", "POST")
		require.True(t, allowed)
	}
}

func TestMatchEndpoint(t *testing.T) {
	configs := DefaultEndpointConfigs()

	tests := []struct {
		name      string
		path      string
		method    string
		wantPath  string
		wantNil   bool
		unlimited bool
	}{
		{name: "exact analyze", path: "/v1/analyze", method: "POST", wantPath: "/v1/analyze"},
		{name: "exact token", path: "/v1/token", method: "POST", wantPath: "/v1/token"},
		{name: "prefix analyses id", path: "/v1/analyses/0b1c", method: "GET", wantPath: "/v1/analyses/"},
		{name: "health unlimited", path: "/health", method: "GET", unlimited: true},
		{name: "unknown falls through", path: "/v1/unknown", method: "GET", wantNil: true},
		{name: "method mismatch", path: "/v1/analyze", method: "GET", wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchEndpoint(tt.path, tt.method, configs)
			if tt.wantNil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			if tt.unlimited {
				assert.LessOrEqual(t, got.Limit, 0)
				return
			}
			assert.Equal(t, tt.wantPath, got.Path)
		})
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "")
	t.Setenv("RATE_LIMIT_WHITELIST", "10.0.0.1, 10.0.0.2")

	config := LoadConfig()
	require.True(t, config.Enabled)
	assert.Equal(t, 1000, config.DefaultLimit)
	assert.Equal(t, time.Minute, config.DefaultWindow)
	assert.True(t, config.Whitelist["10.0.0.1"])
	assert.True(t, config.Whitelist["10.0.0.2"])
	assert.NotEmpty(t, config.EndpointConfigs)
}

func TestLoadConfigDisabled(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	config := LoadConfig()
	assert.False(t, config.Enabled)
}
