package query

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/property-browser/internal/domain"
	"github.com/tair/property-browser/internal/session"
)

type fakeAPI struct {
	mu          sync.Mutex
	users       map[int]domain.User
	properties  []domain.Property
	favorites   domain.Favorites
	mine        domain.Favorites
	propErr     error
	favErr      error
	mineErr     error
	mineCalls   int
	userLookups []int
}

func (f *fakeAPI) ListUsers(context.Context) ([]domain.User, error) {
	var out []domain.User
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeAPI) GetUser(_ context.Context, id int) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.userLookups = append(f.userLookups, id)
	u, ok := f.users[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return &u, nil
}

func (f *fakeAPI) ListProperties(context.Context) ([]domain.Property, error) {
	return f.properties, f.propErr
}

func (f *fakeAPI) ListFavorites(context.Context) (domain.Favorites, error) {
	return f.favorites, f.favErr
}

func (f *fakeAPI) ListUserFavoriteProperties(context.Context, int) (domain.Favorites, error) {
	f.mu.Lock()
	f.mineCalls++
	f.mu.Unlock()
	return f.mine, f.mineErr
}

func (f *fakeAPI) CreateFavorite(context.Context, domain.FavoriteInput) (*domain.Favorite, error) {
	return nil, errors.New("not used")
}

func identified(id, name string) session.Session {
	return session.Session{ID: "sid", Identity: &session.Identity{UserID: id, Username: name}}
}

func TestLoadListingIdentified(t *testing.T) {
	api := &fakeAPI{
		properties: []domain.Property{
			{ID: 3, Title: "Condo", Price: 1500000},
			{ID: 4, Title: "House", Price: 2500000.5},
		},
		favorites: domain.Favorites{
			{UserID: 7, PropertyID: 3},
			{UserID: 8, PropertyID: 3},
		},
	}
	handler := NewLoadListingHandler(api, api, NewPriceFormatter("th-TH"))

	listing := handler.Handle(context.Background(), LoadListingQuery{Session: identified("7", "alice")})

	assert.True(t, listing.Identified)
	assert.Equal(t, "alice", listing.Username)
	require.Len(t, listing.Cards, 2)
	assert.True(t, listing.Cards[0].LikedByMe)
	assert.Equal(t, 2, listing.Cards[0].LikeCount)
	assert.Equal(t, "฿1,500,000", listing.Cards[0].PriceLabel)
	assert.False(t, listing.Cards[1].LikedByMe)
	assert.Equal(t, 0, listing.Cards[1].LikeCount)
	assert.Equal(t, 1, api.mineCalls)
}

func TestLoadListingUsesUserFavorites(t *testing.T) {
	api := &fakeAPI{
		properties: []domain.Property{{ID: 5, Title: "Loft"}},
		mine:       domain.Favorites{{Property: &domain.PropertySummary{ID: 5}}},
	}
	handler := NewLoadListingHandler(api, api, NewPriceFormatter("th-TH"))

	listing := handler.Handle(context.Background(), LoadListingQuery{Session: identified("7", "alice")})

	require.Len(t, listing.Cards, 1)
	assert.True(t, listing.Cards[0].LikedByMe)
	assert.Equal(t, 0, listing.Cards[0].LikeCount)
}

func TestLoadListingAnonymous(t *testing.T) {
	api := &fakeAPI{
		properties: []domain.Property{{ID: 3}},
		favorites:  domain.Favorites{{UserID: 7, PropertyID: 3}},
	}
	handler := NewLoadListingHandler(api, api, NewPriceFormatter("th-TH"))

	listing := handler.Handle(context.Background(), LoadListingQuery{Session: session.Session{ID: "sid"}})

	assert.False(t, listing.Identified)
	require.Len(t, listing.Cards, 1)
	assert.False(t, listing.Cards[0].LikedByMe)
	assert.Equal(t, 1, listing.Cards[0].LikeCount)
	assert.Zero(t, api.mineCalls)
}

func TestLoadListingDegradesOnFailures(t *testing.T) {
	api := &fakeAPI{
		properties: []domain.Property{{ID: 3}},
		favErr:     errors.New("boom"),
		mineErr:    errors.New("boom"),
	}
	handler := NewLoadListingHandler(api, api, NewPriceFormatter("th-TH"))

	listing := handler.Handle(context.Background(), LoadListingQuery{Session: identified("7", "alice")})

	require.Len(t, listing.Cards, 1)
	assert.Equal(t, 0, listing.Cards[0].LikeCount)
	assert.False(t, listing.Cards[0].LikedByMe)

	api.propErr = errors.New("down")
	listing = handler.Handle(context.Background(), LoadListingQuery{Session: identified("7", "alice")})
	assert.Empty(t, listing.Cards)
}

func TestGetLikers(t *testing.T) {
	api := &fakeAPI{
		users: map[int]domain.User{
			7: {ID: 7, Username: "alice"},
			8: {ID: 8, Username: "bob"},
		},
		favorites: domain.Favorites{
			{UserID: 8, PropertyID: 3},
			{UserID: 9, PropertyID: 3},
			{UserID: 7, PropertyID: 3},
			{UserID: 7, PropertyID: 4},
		},
	}
	handler := NewGetLikersHandler(api, api)

	likers := handler.Handle(context.Background(), GetLikersQuery{PropertyID: 3})

	assert.Equal(t, []string{"bob", "alice"}, likers.Usernames)
	assert.Empty(t, likers.Placeholder)
	assert.Equal(t, []int{8, 9, 7}, api.userLookups)

	// no cache: a second hover resolves again
	handler.Handle(context.Background(), GetLikersQuery{PropertyID: 3})
	assert.Len(t, api.userLookups, 6)
}

func TestGetLikersPlaceholder(t *testing.T) {
	api := &fakeAPI{favErr: errors.New("down")}
	handler := NewGetLikersHandler(api, api)

	likers := handler.Handle(context.Background(), GetLikersQuery{PropertyID: 3})

	assert.Empty(t, likers.Usernames)
	assert.Equal(t, PlaceholderNoLikes, likers.Placeholder)
}

func TestPriceFormatter(t *testing.T) {
	tests := []struct {
		locale string
		price  float64
		want   string
	}{
		{"th-TH", 1500000, "฿1,500,000"},
		{"en-US", 999, "฿999"},
		{"not a locale", 12345, "฿12,345"},
		{"th-TH", 1234.567, "฿1,234.567"},
		{"th-TH", 1234.5678, "฿1,234.568"},
		{"th-TH", 2500.5, "฿2,500.5"},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPriceFormatter(tt.locale).Format(tt.price))
		})
	}
}
