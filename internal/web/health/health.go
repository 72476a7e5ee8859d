package health

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tair/property-browser/internal/apiclient"
	"github.com/tair/property-browser/pkg/logger"
)

const (
	StatusHealthy   = "healthy"
	StatusDegraded  = "degraded"
	StatusUnhealthy = "unhealthy"
)

// ComponentHealth represents the health of one dependency
type ComponentHealth struct {
	Name      string        `json:"name"`
	Status    string        `json:"status"`
	URL       string        `json:"url,omitempty"`
	Latency   time.Duration `json:"latency_ms"`
	Error     string        `json:"error,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}

// Report is the readiness answer
type Report struct {
	Service    string                     `json:"service"`
	Status     string                     `json:"status"`
	Components map[string]ComponentHealth `json:"components"`
	Breaker    map[string]interface{}     `json:"circuit_breaker"`
	Uptime     time.Duration              `json:"uptime_seconds"`
}

// Checker checks the property API instances and the session store
type Checker struct {
	service    string
	api        *apiclient.Client
	healthPath string
	redis      *redis.Client
	startTime  time.Time
}

// NewChecker creates a new health checker; redisClient may be nil
func NewChecker(service string, api *apiclient.Client, healthPath string, redisClient *redis.Client) *Checker {
	return &Checker{
		service:    service,
		api:        api,
		healthPath: healthPath,
		redis:      redisClient,
		startTime:  time.Now(),
	}
}

// CheckAPI checks a single property API instance
func (h *Checker) CheckAPI(ctx context.Context, base string) ComponentHealth {
	start := time.Now()
	result := ComponentHealth{
		Name:      "property-api",
		URL:       base,
		Timestamp: start,
		Status:    StatusHealthy,
	}

	if err := h.api.Ping(ctx, base, h.healthPath); err != nil {
		result.Status = StatusUnhealthy
		result.Error = err.Error()
	}
	result.Latency = time.Since(start)
	return result
}

// CheckRedis pings the session store
func (h *Checker) CheckRedis(ctx context.Context) ComponentHealth {
	start := time.Now()
	result := ComponentHealth{
		Name:      "redis",
		Timestamp: start,
		Status:    StatusHealthy,
	}

	if err := h.redis.Ping(ctx).Err(); err != nil {
		result.Status = StatusUnhealthy
		result.Error = err.Error()
	}
	result.Latency = time.Since(start)
	return result
}

// CheckAll checks every dependency concurrently
func (h *Checker) CheckAll(ctx context.Context) Report {
	components := make(map[string]ComponentHealth)
	var wg sync.WaitGroup
	var mu sync.Mutex

	record := func(key string, c ComponentHealth) {
		mu.Lock()
		components[key] = c
		mu.Unlock()

		if c.Status == StatusHealthy {
			logger.Logger.Debug().
				Str("component", key).
				Dur("latency", c.Latency).
				Msg("Health check")
		} else {
			logger.Logger.Warn().
				Str("component", key).
				Str("error", c.Error).
				Msg("Health check failed")
		}
	}

	for _, base := range h.api.Servers() {
		wg.Add(1)
		go func(b string) {
			defer wg.Done()
			record("api:"+b, h.CheckAPI(ctx, b))
		}(base)
	}

	if h.redis != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			record("redis", h.CheckRedis(ctx))
		}()
	}

	wg.Wait()

	return Report{
		Service:    h.service,
		Status:     overallStatus(components),
		Components: components,
		Breaker:    h.api.Breaker().Stats(),
		Uptime:     time.Since(h.startTime),
	}
}

func overallStatus(components map[string]ComponentHealth) string {
	healthy := 0
	for _, c := range components {
		if c.Status == StatusHealthy {
			healthy++
		}
	}

	switch {
	case healthy == len(components):
		return StatusHealthy
	case healthy > 0:
		return StatusDegraded
	default:
		return StatusUnhealthy
	}
}

// QuickCheck reports only the process itself
func (h *Checker) QuickCheck() map[string]interface{} {
	return map[string]interface{}{
		"status":    StatusHealthy,
		"service":   h.service,
		"uptime":    time.Since(h.startTime).Seconds(),
		"timestamp": time.Now(),
	}
}
