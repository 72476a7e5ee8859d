package command

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/property-browser/internal/domain"
	"github.com/tair/property-browser/internal/events"
	"github.com/tair/property-browser/internal/session"
)

type fakeAPI struct {
	users     map[int]domain.User
	favorites domain.Favorites
	listErrs  []error
	createErr error
	calls     []string
	created   []domain.FavoriteInput
}

func (f *fakeAPI) ListUsers(context.Context) ([]domain.User, error) {
	return nil, nil
}

func (f *fakeAPI) GetUser(_ context.Context, id int) (*domain.User, error) {
	f.calls = append(f.calls, "get-user")
	u, ok := f.users[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return &u, nil
}

func (f *fakeAPI) ListFavorites(context.Context) (domain.Favorites, error) {
	f.calls = append(f.calls, "list")
	if len(f.listErrs) > 0 {
		err := f.listErrs[0]
		f.listErrs = f.listErrs[1:]
		if err != nil {
			return nil, err
		}
	}
	return f.favorites, nil
}

func (f *fakeAPI) ListUserFavoriteProperties(context.Context, int) (domain.Favorites, error) {
	return nil, nil
}

func (f *fakeAPI) CreateFavorite(_ context.Context, in domain.FavoriteInput) (*domain.Favorite, error) {
	f.calls = append(f.calls, "create")
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, in)
	f.favorites = append(f.favorites, domain.Favorite{UserID: in.UserID, PropertyID: in.PropertyID})
	return &domain.Favorite{UserID: in.UserID, PropertyID: in.PropertyID}, nil
}

type fakePublisher struct {
	events []events.PropertyLikedEvent
}

func (p *fakePublisher) PublishPropertyLiked(_ context.Context, e events.PropertyLikedEvent) error {
	p.events = append(p.events, e)
	return nil
}

func identified(id, name string) session.Session {
	return session.Session{ID: "sid", Identity: &session.Identity{UserID: id, Username: name}}
}

func TestLikeProperty(t *testing.T) {
	api := &fakeAPI{users: map[int]domain.User{42: {ID: 42, Username: "carol"}}}
	pub := &fakePublisher{}
	handler := NewLikePropertyHandler(api, api, pub)

	result, err := handler.Handle(context.Background(), LikePropertyCommand{Session: identified("42", "carol"), PropertyID: 9})

	require.NoError(t, err)
	assert.Equal(t, []domain.FavoriteInput{{UserID: 42, PropertyID: 9}}, api.created)
	require.GreaterOrEqual(t, len(api.calls), 3)
	assert.Equal(t, []string{"list", "create", "list"}, api.calls[:3])
	assert.True(t, result.Created)
	assert.True(t, result.Liked)
	assert.Equal(t, 1, result.LikeCount)
	assert.Equal(t, []string{"carol"}, result.Likers.Usernames)

	require.Len(t, pub.events, 1)
	assert.Equal(t, 9, pub.events[0].PropertyID)
	assert.Equal(t, "carol", pub.events[0].Username)
	assert.Equal(t, 1, pub.events[0].LikeCount)
}

func TestLikePropertyAnonymousIsNoop(t *testing.T) {
	api := &fakeAPI{}
	handler := NewLikePropertyHandler(api, api, nil)

	result, err := handler.Handle(context.Background(), LikePropertyCommand{Session: session.Session{ID: "sid"}, PropertyID: 9})

	require.NoError(t, err)
	assert.True(t, result.Skipped)
	assert.Empty(t, api.calls)
}

func TestLikePropertyAlreadyLiked(t *testing.T) {
	api := &fakeAPI{
		users:     map[int]domain.User{42: {ID: 42, Username: "carol"}},
		favorites: domain.Favorites{{UserID: 42, PropertyID: 9}},
	}
	pub := &fakePublisher{}
	handler := NewLikePropertyHandler(api, api, pub)

	result, err := handler.Handle(context.Background(), LikePropertyCommand{Session: identified("42", "carol"), PropertyID: 9})

	require.NoError(t, err)
	assert.True(t, result.AlreadyLiked)
	assert.False(t, result.Created)
	assert.NotContains(t, api.calls, "create")
	assert.Equal(t, 1, result.LikeCount)
	assert.Empty(t, pub.events)
}

func TestLikePropertyCreateFails(t *testing.T) {
	api := &fakeAPI{createErr: errors.New("boom")}
	handler := NewLikePropertyHandler(api, api, nil)

	_, err := handler.Handle(context.Background(), LikePropertyCommand{Session: identified("42", "carol"), PropertyID: 9})

	require.Error(t, err)
	assert.Equal(t, []string{"list", "create"}, api.calls)
}

func TestLikePropertyRefreshFailureKeepsPriorState(t *testing.T) {
	api := &fakeAPI{
		favorites: domain.Favorites{{UserID: 1, PropertyID: 9}},
		listErrs:  []error{nil, errors.New("down")},
		users:     map[int]domain.User{1: {ID: 1, Username: "alice"}},
	}
	handler := NewLikePropertyHandler(api, api, nil)

	result, err := handler.Handle(context.Background(), LikePropertyCommand{Session: identified("42", "carol"), PropertyID: 9})

	require.NoError(t, err)
	assert.True(t, result.Created)
	assert.False(t, result.Liked)
	assert.Equal(t, 1, result.LikeCount)
	assert.Equal(t, []string{"alice"}, result.Likers.Usernames)
}

func TestLikePropertyInvalidID(t *testing.T) {
	api := &fakeAPI{}
	handler := NewLikePropertyHandler(api, api, nil)

	_, err := handler.Handle(context.Background(), LikePropertyCommand{Session: identified("42", "carol"), PropertyID: 0})

	assert.ErrorIs(t, err, ErrInvalidProperty)
	assert.Empty(t, api.calls)
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	require.NoError(t, store.Save(ctx, "sid", session.Identity{UserID: "7", Username: "alice"}))

	handler := NewLogoutHandler(store)
	require.NoError(t, handler.Handle(ctx, LogoutCommand{SessionID: "sid"}))

	identity, err := store.Load(ctx, "sid")
	require.NoError(t, err)
	assert.Nil(t, identity)
	assert.Empty(t, store.Fields("sid"))

	assert.NoError(t, handler.Handle(ctx, LogoutCommand{}))
}
