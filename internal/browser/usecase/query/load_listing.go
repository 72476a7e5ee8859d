package query

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/tair/property-browser/internal/domain"
	"github.com/tair/property-browser/internal/session"
	"github.com/tair/property-browser/pkg/logger"
)

// Card is one rendered property
type Card struct {
	Property   domain.Property
	PriceLabel string
	LikeCount  int
	LikedByMe  bool
}

// Listing is the state of the property browser screen
type Listing struct {
	Username   string
	Identified bool
	Cards      []Card
}

// LoadListingQuery represents the query to render the property browser
type LoadListingQuery struct {
	Session session.Session
}

// LoadListingHandler handles load listing query
type LoadListingHandler struct {
	properties domain.PropertyRepository
	favorites  domain.FavoriteRepository
	prices     *PriceFormatter
}

// NewLoadListingHandler creates a new load listing handler
func NewLoadListingHandler(properties domain.PropertyRepository, favorites domain.FavoriteRepository, prices *PriceFormatter) *LoadListingHandler {
	return &LoadListingHandler{
		properties: properties,
		favorites:  favorites,
		prices:     prices,
	}
}

// Handle fetches properties, all favorites and (when identified) the user's own
// favorites concurrently. Each failure is logged and treated as an empty list.
func (h *LoadListingHandler) Handle(ctx context.Context, q LoadListingQuery) *Listing {
	userID, identified := q.Session.UserID()

	var (
		properties []domain.Property
		all        domain.Favorites
		mine       domain.Favorites
		g          errgroup.Group
	)

	g.Go(func() error {
		p, err := h.properties.ListProperties(ctx)
		if err != nil {
			logger.Error(ctx).Err(err).Msg("Failed to load properties")
			return nil
		}
		properties = p
		return nil
	})

	g.Go(func() error {
		f, err := h.favorites.ListFavorites(ctx)
		if err != nil {
			logger.Error(ctx).Err(err).Msg("Failed to load favorites")
			return nil
		}
		all = f
		return nil
	})

	if identified {
		g.Go(func() error {
			f, err := h.favorites.ListUserFavoriteProperties(ctx, userID)
			if err != nil {
				logger.Error(ctx).Err(err).Int("user_id", userID).Msg("Failed to load user favorites")
				return nil
			}
			mine = f
			return nil
		})
	}

	_ = g.Wait()

	mineIDs := mine.PropertyIDs()
	listing := &Listing{
		Username:   q.Session.Username(),
		Identified: identified,
		Cards:      make([]Card, 0, len(properties)),
	}
	for _, p := range properties {
		card := Card{
			Property:   p,
			PriceLabel: h.prices.Format(p.Price),
			LikeCount:  all.CountFor(p.ID),
		}
		if identified {
			_, inMine := mineIDs[p.ID]
			card.LikedByMe = inMine || all.LikedBy(userID, p.ID)
		}
		listing.Cards = append(listing.Cards, card)
	}

	logger.Debug(ctx).
		Int("properties", len(properties)).
		Int("favorites", len(all)).
		Bool("identified", identified).
		Msg("Listing loaded")

	return listing
}
