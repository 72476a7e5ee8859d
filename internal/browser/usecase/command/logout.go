package command

import (
	"context"
	"fmt"

	"github.com/tair/property-browser/internal/session"
	"github.com/tair/property-browser/pkg/logger"
)

// LogoutCommand represents the logout action
type LogoutCommand struct {
	SessionID string
}

// LogoutHandler handles logout command
type LogoutHandler struct {
	store session.Store
}

// NewLogoutHandler creates a new logout handler
func NewLogoutHandler(store session.Store) *LogoutHandler {
	return &LogoutHandler{store: store}
}

// Handle removes both identity entries of the session
func (h *LogoutHandler) Handle(ctx context.Context, cmd LogoutCommand) error {
	if cmd.SessionID == "" {
		return nil
	}
	if err := h.store.Clear(ctx, cmd.SessionID); err != nil {
		return fmt.Errorf("failed to log out: %w", err)
	}
	logger.Info(ctx).Msg("Identity cleared")
	return nil
}
