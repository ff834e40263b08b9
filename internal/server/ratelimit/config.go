package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig is the rate limit for one endpoint. Paths ending in "/"
// are matched by prefix so "/v1/analyses/" covers "/v1/analyses/{id}".
type EndpointConfig struct {
	Path   string
	Method string
	Limit  int           // requests per window
	Window time.Duration
	Burst  int           // burst capacity, defaults to Limit if 0
}

// LoadConfig builds rate limiting configuration from environment variables.
func LoadConfig() *Config {
	enabled := getEnvBool("RATE_LIMIT_ENABLED", true)
	if !enabled {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         enabled,
		DefaultLimit:    getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 1000),
		DefaultWindow:   getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Whitelist:       parseIPList(os.Getenv("RATE_LIMIT_WHITELIST")),
		Blacklist:       parseIPList(os.Getenv("RATE_LIMIT_BLACKLIST")),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the per-endpoint limits for the analyzer API.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Analysis calls hit the embedding provider, so they get the
		// strictest limits.
		{Path: "/v1/analyze", Method: "POST", Limit: 30, Window: time.Minute, Burst: 5},

		// ATS scoring is local computation only.
		{Path: "/v1/ats", Method: "POST", Limit: 120, Window: time.Minute, Burst: 20},

		// Token issuance runs bcrypt verification; keep it slow to blunt
		// brute-force attempts against the operator key.
		{Path: "/v1/token", Method: "POST", Limit: 10, Window: time.Minute, Burst: 3},

		// History reads are cheap database lookups.
		{Path: "/v1/analyses", Method: "GET", Limit: 300, Window: time.Minute, Burst: 50},
		{Path: "/v1/analyses/", Method: "GET", Limit: 300, Window: time.Minute, Burst: 50},
	}
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		ip = strings.TrimSpace(ip)
		if ip != "" {
			result[ip] = true
		}
	}
	return result
}
