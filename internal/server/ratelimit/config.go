package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // exact path, "*" segment pattern, or prefix ending in "/"
	Method string        // HTTP method (GET, POST, etc.)
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// LoadConfig loads rate limiting configuration from environment variables.
func LoadConfig() *Config {
	enabled := getEnvBool("RATE_LIMIT_ENABLED", true)
	if !enabled {
		return &Config{
			Enabled: false,
		}
	}

	defaultLimit := getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 1000)
	defaultWindow := getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute)
	cleanupInterval := getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute)

	whitelist := parseIPList(getEnvString("RATE_LIMIT_WHITELIST", ""))
	blacklist := parseIPList(getEnvString("RATE_LIMIT_BLACKLIST", ""))

	return &Config{
		Enabled:         enabled,
		DefaultLimit:    defaultLimit,
		DefaultWindow:   defaultWindow,
		CleanupInterval: cleanupInterval,
		Whitelist:       whitelist,
		Blacklist:       blacklist,
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the endpoint-specific limits.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Tier 1: calls that reach the LLM or a headless browser
		{Path: "/sessions/*/suggestions", Method: "POST", Limit: 60, Window: time.Hour, Burst: 5},
		{Path: "/resumes/*/export", Method: "GET", Limit: 60, Window: time.Hour, Burst: 5},

		// Tier 2: credential checks
		{Path: "/auth/register", Method: "POST", Limit: 10, Window: time.Hour, Burst: 3},
		{Path: "/auth/login", Method: "POST", Limit: 30, Window: time.Hour, Burst: 5},
		{Path: "/auth/password", Method: "PUT", Limit: 10, Window: time.Hour, Burst: 3},

		// Tier 3: writes; editing sends one request per keystroke batch
		{Path: "/resumes", Method: "POST", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/resumes/", Method: "PUT", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/resumes/", Method: "DELETE", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/sessions", Method: "POST", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/sessions/", Method: "PATCH", Limit: 600, Window: time.Minute, Burst: 60},
		{Path: "/sessions/", Method: "POST", Limit: 300, Window: time.Minute, Burst: 30},
		{Path: "/sessions/", Method: "PUT", Limit: 300, Window: time.Minute, Burst: 30},
		{Path: "/sessions/", Method: "DELETE", Limit: 300, Window: time.Minute, Burst: 30},
		{Path: "/dashboard/tasks", Method: "POST", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/dashboard/tasks/", Method: "PUT", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/dashboard/tasks/", Method: "DELETE", Limit: 100, Window: time.Minute, Burst: 10},

		// reads fall through to the default limit
	}
}

// getEnvString gets an environment variable as a string with a default value.
func getEnvString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as an integer with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool gets an environment variable as a boolean with a default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as a duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// parseIPList parses a comma-separated list of IP addresses into a map.
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	if list == "" {
		return result
	}

	ips := strings.Split(list, ",")
	for _, ip := range ips {
		ip = strings.TrimSpace(ip)
		if ip != "" {
			result[ip] = true
		}
	}

	return result
}

