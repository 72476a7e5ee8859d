package apiclient

import (
	"sync"

	"github.com/tair/property-browser/internal/config"
	"github.com/tair/property-browser/pkg/logger"
)

// RoundRobin rotates requests across property API instances
type RoundRobin struct {
	servers []string
	current int
	mu      sync.Mutex
}

// NewRoundRobin creates a balancer; an empty list falls back to the default API origin
func NewRoundRobin(servers []string) *RoundRobin {
	if len(servers) == 0 {
		servers = []string{config.DefaultAPIBase}
	}

	logger.Logger.Debug().
		Int("server_count", len(servers)).
		Strs("servers", servers).
		Msg("Property API balancer initialized")

	return &RoundRobin{
		servers: append([]string(nil), servers...),
	}
}

// Next returns the next base URL
func (rr *RoundRobin) Next() string {
	rr.mu.Lock()
	defer rr.mu.Unlock()

	server := rr.servers[rr.current]
	rr.current = (rr.current + 1) % len(rr.servers)
	return server
}

// Servers returns a copy of the configured base URLs
func (rr *RoundRobin) Servers() []string {
	rr.mu.Lock()
	defer rr.mu.Unlock()
	return append([]string(nil), rr.servers...)
}
