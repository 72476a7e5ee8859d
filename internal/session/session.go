package session

import (
	"context"
	"errors"
	"strconv"

	"github.com/google/uuid"
)

// Keys of the two identity entries kept per session
const (
	KeyUserID   = "userId"
	KeyUsername = "username"
)

// ErrInvalidIdentity is returned when saving an identity without a user id
var ErrInvalidIdentity = errors.New("identity requires a user id")

// State is the login state of a browser session
type State int

const (
	// Anonymous sessions can browse; liking is a no-op
	Anonymous State = iota
	// Identified sessions carry a picked user
	Identified
)

func (s State) String() string {
	if s == Identified {
		return "identified"
	}
	return "anonymous"
}

// Identity is the picked user, kept as the strings the session store holds
type Identity struct {
	UserID   string
	Username string
}

// NumericID parses the stored user id
func (i Identity) NumericID() (int, bool) {
	id, err := strconv.Atoi(i.UserID)
	if err != nil {
		return 0, false
	}
	return id, true
}

// Session is the per-browser context handed to the use cases
type Session struct {
	ID       string
	Identity *Identity
}

// State reports whether an identity with a usable user id is present
func (s Session) State() State {
	if s.Identity == nil || s.Identity.UserID == "" {
		return Anonymous
	}
	if _, ok := s.Identity.NumericID(); !ok {
		return Anonymous
	}
	return Identified
}

// UserID returns the numeric user id of an identified session
func (s Session) UserID() (int, bool) {
	if s.State() != Identified {
		return 0, false
	}
	return s.Identity.NumericID()
}

// Username returns the stored username or ""
func (s Session) Username() string {
	if s.Identity == nil {
		return ""
	}
	return s.Identity.Username
}

// NewID returns a fresh session id
func NewID() string {
	return uuid.NewString()
}

// Store persists identities per session id
type Store interface {
	// Load returns nil, nil for unknown sessions
	Load(ctx context.Context, id string) (*Identity, error)
	Save(ctx context.Context, id string, identity Identity) error
	Clear(ctx context.Context, id string) error
}

// Load resolves a session id into a Session; an empty id is anonymous
func Load(ctx context.Context, store Store, id string) (Session, error) {
	if id == "" {
		return Session{}, nil
	}
	identity, err := store.Load(ctx, id)
	if err != nil {
		return Session{ID: id}, err
	}
	return Session{ID: id, Identity: identity}, nil
}

func identityFromFields(fields map[string]string) *Identity {
	userID := fields[KeyUserID]
	username := fields[KeyUsername]
	if userID == "" && username == "" {
		return nil
	}
	return &Identity{UserID: userID, Username: username}
}
