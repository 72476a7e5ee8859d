package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/property-browser/internal/domain"
)

// Source is everything the property API offers
type Source interface {
	domain.UserRepository
	domain.PropertyRepository
	domain.FavoriteRepository
}

// TracingRepository wraps a Source with one span per repository operation
type TracingRepository struct {
	next   Source
	tracer trace.Tracer
}

// NewTracingRepository creates a new repository with tracing
func NewTracingRepository(next Source) *TracingRepository {
	return &TracingRepository{
		next:   next,
		tracer: otel.Tracer("property-repository"),
	}
}

func finish(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// ListUsers with tracing
func (r *TracingRepository) ListUsers(ctx context.Context) (users []domain.User, err error) {
	ctx, span := r.tracer.Start(ctx, "repository.ListUsers")
	defer func() { finish(span, err) }()

	users, err = r.next.ListUsers(ctx)
	span.SetAttributes(attribute.Int("users.count", len(users)))
	return users, err
}

// GetUser with tracing
func (r *TracingRepository) GetUser(ctx context.Context, id int) (user *domain.User, err error) {
	ctx, span := r.tracer.Start(ctx, "repository.GetUser",
		trace.WithAttributes(attribute.Int("user.id", id)),
	)
	defer func() { finish(span, err) }()

	return r.next.GetUser(ctx, id)
}

// ListProperties with tracing
func (r *TracingRepository) ListProperties(ctx context.Context) (properties []domain.Property, err error) {
	ctx, span := r.tracer.Start(ctx, "repository.ListProperties")
	defer func() { finish(span, err) }()

	properties, err = r.next.ListProperties(ctx)
	span.SetAttributes(attribute.Int("properties.count", len(properties)))
	return properties, err
}

// ListFavorites with tracing
func (r *TracingRepository) ListFavorites(ctx context.Context) (favorites domain.Favorites, err error) {
	ctx, span := r.tracer.Start(ctx, "repository.ListFavorites")
	defer func() { finish(span, err) }()

	favorites, err = r.next.ListFavorites(ctx)
	span.SetAttributes(attribute.Int("favorites.count", len(favorites)))
	return favorites, err
}

// ListUserFavoriteProperties with tracing
func (r *TracingRepository) ListUserFavoriteProperties(ctx context.Context, userID int) (favorites domain.Favorites, err error) {
	ctx, span := r.tracer.Start(ctx, "repository.ListUserFavoriteProperties",
		trace.WithAttributes(attribute.Int("user.id", userID)),
	)
	defer func() { finish(span, err) }()

	favorites, err = r.next.ListUserFavoriteProperties(ctx, userID)
	span.SetAttributes(attribute.Int("favorites.count", len(favorites)))
	return favorites, err
}

// CreateFavorite with tracing
func (r *TracingRepository) CreateFavorite(ctx context.Context, in domain.FavoriteInput) (favorite *domain.Favorite, err error) {
	ctx, span := r.tracer.Start(ctx, "repository.CreateFavorite",
		trace.WithAttributes(
			attribute.Int("user.id", in.UserID),
			attribute.Int("property.id", in.PropertyID),
		),
	)
	defer func() { finish(span, err) }()

	return r.next.CreateFavorite(ctx, in)
}
