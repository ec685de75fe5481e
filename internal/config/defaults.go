package config

import "time"

// Default values applied as the lowest-priority configuration source.
// They mirror a bare local setup: loopback listener, generous concurrency
// ceiling, immediate load shedding once the ceiling is reached.
const (
	DefaultHTTPAddress           = "127.0.0.1:8080"
	DefaultRequestTimeout        = 20 * time.Second
	DefaultMaxConcurrentRequests = 10240
	DefaultThrottleBacklog       = 0
	DefaultBacklogTimeout        = 60 * time.Second
	DefaultEnvironment           = "local"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Environment: DefaultEnvironment,
		},
		Server: Server{
			HTTPAddress:           DefaultHTTPAddress,
			RequestTimeout:        DefaultRequestTimeout,
			MaxConcurrentRequests: DefaultMaxConcurrentRequests,
			ThrottleBacklog:       DefaultThrottleBacklog,
			BacklogTimeout:        DefaultBacklogTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: 15 * time.Second,
		},
	}
}
