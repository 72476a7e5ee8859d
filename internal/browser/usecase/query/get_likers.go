package query

import (
	"context"

	"github.com/tair/property-browser/internal/domain"
	"github.com/tair/property-browser/pkg/logger"
)

// PlaceholderNoLikes is shown in the tooltip when nobody liked the property
const PlaceholderNoLikes = "ยังไม่มีคนกดไลค์"

// Likers is the "who liked this" tooltip content
type Likers struct {
	PropertyID  int      `json:"propertyId"`
	Usernames   []string `json:"usernames"`
	Placeholder string   `json:"placeholder,omitempty"`
}

// GetLikersQuery represents the hover on a like count
type GetLikersQuery struct {
	PropertyID int
}

// GetLikersHandler handles get likers query
type GetLikersHandler struct {
	users     domain.UserRepository
	favorites domain.FavoriteRepository
}

// NewGetLikersHandler creates a new get likers handler
func NewGetLikersHandler(users domain.UserRepository, favorites domain.FavoriteRepository) *GetLikersHandler {
	return &GetLikersHandler{users: users, favorites: favorites}
}

// Handle re-fetches all favorites and resolves each liker on every call
func (h *GetLikersHandler) Handle(ctx context.Context, q GetLikersQuery) *Likers {
	favorites, err := h.favorites.ListFavorites(ctx)
	if err != nil {
		logger.Error(ctx).Err(err).Int("property_id", q.PropertyID).Msg("Failed to load favorites for likers")
		favorites = nil
	}
	return ResolveLikers(ctx, h.users, favorites, q.PropertyID)
}

// ResolveLikers looks up liker usernames one by one, in favorites order.
// Lookups that fail are dropped.
func ResolveLikers(ctx context.Context, users domain.UserRepository, favorites domain.Favorites, propertyID int) *Likers {
	likers := &Likers{PropertyID: propertyID, Usernames: []string{}}

	for _, uid := range favorites.LikerIDs(propertyID) {
		user, err := users.GetUser(ctx, uid)
		if err != nil {
			logger.Warn(ctx).Err(err).Int("user_id", uid).Msg("Dropping unresolved liker")
			continue
		}
		likers.Usernames = append(likers.Usernames, user.Username)
	}

	if len(likers.Usernames) == 0 {
		likers.Placeholder = PlaceholderNoLikes
	}
	return likers
}
