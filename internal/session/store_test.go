package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client, time.Hour), mr
}

func TestStores(t *testing.T) {
	redisStore, _ := newRedisStore(t)
	stores := map[string]Store{
		"memory": NewMemoryStore(),
		"redis":  redisStore,
	}

	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			identity, err := store.Load(ctx, "missing")
			require.NoError(t, err)
			assert.Nil(t, identity)

			require.NoError(t, store.Save(ctx, "s1", Identity{UserID: "7", Username: "alice"}))
			identity, err = store.Load(ctx, "s1")
			require.NoError(t, err)
			assert.Equal(t, &Identity{UserID: "7", Username: "alice"}, identity)

			require.NoError(t, store.Clear(ctx, "s1"))
			identity, err = store.Load(ctx, "s1")
			require.NoError(t, err)
			assert.Nil(t, identity)

			assert.ErrorIs(t, store.Save(ctx, "s2", Identity{Username: "nobody"}), ErrInvalidIdentity)
		})
	}
}

func TestRedisStoreUsesIdentityKeysAndTTL(t *testing.T) {
	store, mr := newRedisStore(t)

	require.NoError(t, store.Save(context.Background(), "abc", Identity{UserID: "42", Username: "bob"}))

	assert.Equal(t, "42", mr.HGet("session:abc", "userId"))
	assert.Equal(t, "bob", mr.HGet("session:abc", "username"))
	assert.Equal(t, time.Hour, mr.TTL("session:abc"))
}

func TestSessionState(t *testing.T) {
	tests := []struct {
		name    string
		session Session
		want    State
		userID  int
	}{
		{"no identity", Session{ID: "x"}, Anonymous, 0},
		{"empty user id", Session{Identity: &Identity{Username: "ghost"}}, Anonymous, 0},
		{"non numeric id", Session{Identity: &Identity{UserID: "abc"}}, Anonymous, 0},
		{"identified", Session{Identity: &Identity{UserID: "7", Username: "alice"}}, Identified, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.session.State())
			id, ok := tt.session.UserID()
			assert.Equal(t, tt.want == Identified, ok)
			assert.Equal(t, tt.userID, id)
		})
	}
}

func TestLoadSession(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Save(context.Background(), "sid-1", Identity{UserID: "3", Username: "carol"}))

	s, err := Load(context.Background(), store, "sid-1")
	require.NoError(t, err)
	assert.Equal(t, Identified, s.State())
	assert.Equal(t, "carol", s.Username())

	s, err = Load(context.Background(), store, "")
	require.NoError(t, err)
	assert.Equal(t, Anonymous, s.State())
	assert.Empty(t, s.Username())
}

func TestMemoryStoreOwnsItsKeys(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	buf := []byte("session-one")
	borrowed := utils.UnsafeString(buf)
	require.NoError(t, store.Save(ctx, borrowed, Identity{UserID: "7", Username: "alice"}))

	// the caller's buffer is reused for another request
	copy(buf, "session-two")

	identity, err := store.Load(ctx, "session-one")
	require.NoError(t, err)
	assert.Equal(t, &Identity{UserID: "7", Username: "alice"}, identity)

	identity, err = store.Load(ctx, "session-two")
	require.NoError(t, err)
	assert.Nil(t, identity)
}
