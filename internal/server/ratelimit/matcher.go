package ratelimit

import "strings"

// unlimited marks an endpoint as exempt from rate limiting.
var unlimited = EndpointConfig{}

// MatchEndpoint finds the configuration for a path and method. Exact path
// matches win over prefix matches; configs whose Path ends in "/" match any
// path under that prefix (so "/api/resumes/" covers "/api/resumes/{id}").
// Returns nil when nothing matches, in which case the caller applies the
// default limit.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	// Health probes must never be throttled.
	if path == "/health" && method == "GET" {
		return &unlimited
	}

	for i := range configs {
		if configs[i].Method == method && configs[i].Path == path {
			return &configs[i]
		}
	}

	for i := range configs {
		cfg := &configs[i]
		if cfg.Method == method && strings.HasSuffix(cfg.Path, "/") && strings.HasPrefix(path, cfg.Path) {
			return cfg
		}
	}

	return nil
}
