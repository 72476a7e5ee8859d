package command

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/tair/property-browser/internal/domain"
	"github.com/tair/property-browser/internal/session"
	"github.com/tair/property-browser/pkg/logger"
)

var (
	// ErrNoSelection is returned when the login action fires without a chosen user
	ErrNoSelection = errors.New("no user selected")
	// ErrUnknownUser is returned when the chosen id is not in the user list
	ErrUnknownUser = errors.New("selected user does not exist")
)

// PickIdentityCommand represents the login action of the selection screen
type PickIdentityCommand struct {
	SessionID string
	UserID    string
}

// PickIdentityHandler handles identity picks
type PickIdentityHandler struct {
	users domain.UserRepository
	store session.Store
}

// NewPickIdentityHandler creates a new pick identity handler
func NewPickIdentityHandler(users domain.UserRepository, store session.Store) *PickIdentityHandler {
	return &PickIdentityHandler{users: users, store: store}
}

// Handle resolves the chosen user and stores (userId, username) in the session.
// This is an identity pick; no credentials are involved.
func (h *PickIdentityHandler) Handle(ctx context.Context, cmd PickIdentityCommand) (*session.Identity, error) {
	if cmd.UserID == "" {
		return nil, ErrNoSelection
	}
	if cmd.SessionID == "" {
		return nil, fmt.Errorf("pick identity: empty session id")
	}

	users, err := h.users.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}

	var picked *domain.User
	for i := range users {
		if strconv.Itoa(users[i].ID) == cmd.UserID {
			picked = &users[i]
			break
		}
	}
	if picked == nil {
		return nil, ErrUnknownUser
	}

	identity := session.Identity{
		UserID:   strconv.Itoa(picked.ID),
		Username: picked.Username,
	}
	if err := h.store.Save(ctx, cmd.SessionID, identity); err != nil {
		return nil, fmt.Errorf("failed to store identity: %w", err)
	}

	logger.Info(ctx).
		Int("user_id", picked.ID).
		Str("username", picked.Username).
		Msg("Identity picked")

	return &identity, nil
}
