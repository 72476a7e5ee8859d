//go:build wireinject
// +build wireinject

package web

import (
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	browsercommand "github.com/tair/property-browser/internal/browser/usecase/command"
	"github.com/tair/property-browser/internal/config"
	"github.com/tair/property-browser/internal/session"
)

// InitializeServer wires the web server; redisClient and publisher may be nil
func InitializeServer(
	cfg *config.Config,
	store session.Store,
	redisClient *redis.Client,
	publisher browsercommand.EventPublisher,
	reg prometheus.Registerer,
) (*Server, error) {
	wire.Build(
		RepositorySet,
		SelectorSet,
		BrowserSet,
		WebSet,
	)
	return nil, nil
}
