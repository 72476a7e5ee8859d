package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/tair/property-browser/internal/browser/usecase/query"
	"github.com/tair/property-browser/internal/domain"
	"github.com/tair/property-browser/internal/events"
	"github.com/tair/property-browser/internal/session"
	"github.com/tair/property-browser/pkg/logger"
)

// ErrInvalidProperty is returned for non-positive property ids
var ErrInvalidProperty = errors.New("invalid property id")

// EventPublisher receives like events
type EventPublisher interface {
	PublishPropertyLiked(ctx context.Context, event events.PropertyLikedEvent) error
}

// LikePropertyCommand represents a click on the like control
type LikePropertyCommand struct {
	Session    session.Session
	PropertyID int
}

// LikeResult is the refreshed like state of the property
type LikeResult struct {
	// Skipped is set for anonymous sessions; no API call was made
	Skipped      bool
	AlreadyLiked bool
	Created      bool
	Liked        bool
	LikeCount    int
	Likers       *query.Likers
}

// LikePropertyHandler handles like property command
type LikePropertyHandler struct {
	users     domain.UserRepository
	favorites domain.FavoriteRepository
	publisher EventPublisher
}

// NewLikePropertyHandler creates a new like property handler; publisher may be nil
func NewLikePropertyHandler(users domain.UserRepository, favorites domain.FavoriteRepository, publisher EventPublisher) *LikePropertyHandler {
	return &LikePropertyHandler{
		users:     users,
		favorites: favorites,
		publisher: publisher,
	}
}

// Handle adds a favorite for the session user unless one already exists, then
// re-fetches the whole favorites collection and the property's likers.
// There is no un-like.
func (h *LikePropertyHandler) Handle(ctx context.Context, cmd LikePropertyCommand) (*LikeResult, error) {
	userID, ok := cmd.Session.UserID()
	if !ok {
		return &LikeResult{Skipped: true}, nil
	}
	if cmd.PropertyID <= 0 {
		return nil, ErrInvalidProperty
	}

	result := &LikeResult{}

	current, err := h.favorites.ListFavorites(ctx)
	if err != nil {
		// the duplicate guard is best effort; the API decides on uniqueness
		logger.Warn(ctx).Err(err).Msg("Failed to load favorites before like")
		current = nil
	}

	if err == nil && current.LikedBy(userID, cmd.PropertyID) {
		result.AlreadyLiked = true
	} else {
		in := domain.FavoriteInput{UserID: userID, PropertyID: cmd.PropertyID}
		if _, err := h.favorites.CreateFavorite(ctx, in); err != nil {
			return nil, fmt.Errorf("failed to like property %d: %w", cmd.PropertyID, err)
		}
		result.Created = true
	}

	refreshed, err := h.favorites.ListFavorites(ctx)
	if err != nil {
		logger.Error(ctx).Err(err).Int("property_id", cmd.PropertyID).Msg("Failed to refresh favorites after like")
		refreshed = current
	}

	result.LikeCount = refreshed.CountFor(cmd.PropertyID)
	result.Liked = refreshed.LikedBy(userID, cmd.PropertyID)
	result.Likers = query.ResolveLikers(ctx, h.users, refreshed, cmd.PropertyID)

	logger.Info(ctx).
		Int("user_id", userID).
		Int("property_id", cmd.PropertyID).
		Bool("created", result.Created).
		Int("like_count", result.LikeCount).
		Msg("Property liked")

	if result.Created && h.publisher != nil {
		event := events.PropertyLikedEvent{
			UserID:     userID,
			Username:   cmd.Session.Username(),
			PropertyID: cmd.PropertyID,
			LikeCount:  result.LikeCount,
		}
		if err := h.publisher.PublishPropertyLiked(ctx, event); err != nil {
			logger.Error(ctx).Err(err).Int("property_id", cmd.PropertyID).Msg("Failed to publish property liked event")
		}
	}

	return result, nil
}
