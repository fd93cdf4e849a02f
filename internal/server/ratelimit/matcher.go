package ratelimit

import (
	"strings"
)

// MatchEndpoint returns the configuration for a request, or nil to use the default.
//
// Patterns match in three ways, tried in order: exact path, path segments
// where "*" stands for any one segment (e.g. "/sessions/*/suggestions"), and
// prefix for patterns ending in "/".
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	// health checks are never limited
	if path == "/health" && method == "GET" {
		return &EndpointConfig{}
	}

	for i := range configs {
		if configs[i].Method == method && configs[i].Path == path {
			return &configs[i]
		}
	}

	for i := range configs {
		if configs[i].Method == method && strings.Contains(configs[i].Path, "*") && matchSegments(configs[i].Path, path) {
			return &configs[i]
		}
	}

	for i := range configs {
		config := &configs[i]
		if config.Method == method && strings.HasSuffix(config.Path, "/") && strings.HasPrefix(path, config.Path) {
			return config
		}
	}

	return nil
}

func matchSegments(pattern, path string) bool {
	want := strings.Split(strings.Trim(pattern, "/"), "/")
	got := strings.Split(strings.Trim(path, "/"), "/")
	if len(want) != len(got) {
		return false
	}
	for i := range want {
		if want[i] != "*" && want[i] != got[i] {
			return false
		}
		if want[i] == "*" && got[i] == "" {
			return false
		}
	}
	return true
}
