package web

import (
	"strings"

	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"github.com/tair/property-browser/internal/apiclient"
	browsercommand "github.com/tair/property-browser/internal/browser/usecase/command"
	browserquery "github.com/tair/property-browser/internal/browser/usecase/query"
	"github.com/tair/property-browser/internal/config"
	"github.com/tair/property-browser/internal/domain"
	"github.com/tair/property-browser/internal/repository"
	selectorcommand "github.com/tair/property-browser/internal/selector/usecase/command"
	selectorquery "github.com/tair/property-browser/internal/selector/usecase/query"
	"github.com/tair/property-browser/internal/session"
	"github.com/tair/property-browser/internal/web/handler"
	"github.com/tair/property-browser/internal/web/health"
	"github.com/tair/property-browser/internal/web/middleware"
)

// ProvideAPIClient provides the property API client with metrics
func ProvideAPIClient(cfg *config.Config, reg prometheus.Registerer) *apiclient.Client {
	return apiclient.New(cfg.API, apiclient.WithMetrics(apiclient.NewMetrics(reg)))
}

// ProvideTracingRepository wraps the API client with repository spans
func ProvideTracingRepository(client *apiclient.Client) *repository.TracingRepository {
	return repository.NewTracingRepository(client)
}

// ProvideUserRepository provides the user repository
func ProvideUserRepository(repo *repository.TracingRepository) domain.UserRepository {
	return repo
}

// ProvidePropertyRepository provides the property repository
func ProvidePropertyRepository(repo *repository.TracingRepository) domain.PropertyRepository {
	return repo
}

// ProvideFavoriteRepository provides the favorite repository
func ProvideFavoriteRepository(repo *repository.TracingRepository) domain.FavoriteRepository {
	return repo
}

// Selector use case providers
func ProvideListUsersHandler(users domain.UserRepository) *selectorquery.ListUsersHandler {
	return selectorquery.NewListUsersHandler(users)
}

func ProvidePickIdentityHandler(users domain.UserRepository, store session.Store) *selectorcommand.PickIdentityHandler {
	return selectorcommand.NewPickIdentityHandler(users, store)
}

// Browser use case providers
func ProvidePriceFormatter(cfg *config.Config) *browserquery.PriceFormatter {
	return browserquery.NewPriceFormatter(cfg.Locale)
}

func ProvideLoadListingHandler(
	properties domain.PropertyRepository,
	favorites domain.FavoriteRepository,
	prices *browserquery.PriceFormatter,
) *browserquery.LoadListingHandler {
	return browserquery.NewLoadListingHandler(properties, favorites, prices)
}

func ProvideGetLikersHandler(users domain.UserRepository, favorites domain.FavoriteRepository) *browserquery.GetLikersHandler {
	return browserquery.NewGetLikersHandler(users, favorites)
}

func ProvideLikePropertyHandler(
	users domain.UserRepository,
	favorites domain.FavoriteRepository,
	publisher browsercommand.EventPublisher,
) *browsercommand.LikePropertyHandler {
	return browsercommand.NewLikePropertyHandler(users, favorites, publisher)
}

func ProvideLogoutHandler(store session.Store) *browsercommand.LogoutHandler {
	return browsercommand.NewLogoutHandler(store)
}

// Web providers
func ProvideSelectorHandler(
	listUsers *selectorquery.ListUsersHandler,
	pickIdentity *selectorcommand.PickIdentityHandler,
) *handler.SelectorHandler {
	return handler.NewSelectorHandler(listUsers, pickIdentity)
}

func ProvideBrowserHandler(
	cfg *config.Config,
	loadListing *browserquery.LoadListingHandler,
	getLikers *browserquery.GetLikersHandler,
	likeProperty *browsercommand.LikePropertyHandler,
	logout *browsercommand.LogoutHandler,
) *handler.BrowserHandler {
	lang, _, _ := strings.Cut(cfg.Locale, "-")
	return handler.NewBrowserHandler(loadListing, getLikers, likeProperty, logout, lang)
}

func ProvidePageMetrics(reg prometheus.Registerer) *middleware.PageMetrics {
	return middleware.NewPageMetrics(reg)
}

func ProvideHealthChecker(cfg *config.Config, client *apiclient.Client, redisClient *redis.Client) *health.Checker {
	return health.NewChecker(cfg.ServiceName, client, cfg.API.HealthCheck, redisClient)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideAPIClient,
	ProvideTracingRepository,
	ProvideUserRepository,
	ProvidePropertyRepository,
	ProvideFavoriteRepository,
)

var SelectorSet = wire.NewSet(
	ProvideListUsersHandler,
	ProvidePickIdentityHandler,
)

var BrowserSet = wire.NewSet(
	ProvidePriceFormatter,
	ProvideLoadListingHandler,
	ProvideGetLikersHandler,
	ProvideLikePropertyHandler,
	ProvideLogoutHandler,
)

var WebSet = wire.NewSet(
	ProvideSelectorHandler,
	ProvideBrowserHandler,
	ProvidePageMetrics,
	ProvideHealthChecker,
	NewServer,
)
