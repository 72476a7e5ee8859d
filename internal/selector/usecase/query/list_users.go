package query

import (
	"context"
	"strconv"

	"github.com/tair/property-browser/internal/apiclient"
	"github.com/tair/property-browser/internal/domain"
	"github.com/tair/property-browser/pkg/logger"
)

// Messages shown when the user list cannot be loaded
const (
	MessageUnreachable = "Cannot connect to the server. Please check that the API is running and try again."
	MessageAPIError    = "The server returned an error while loading users. Please try again."
)

// Option is one entry of the user dropdown
type Option struct {
	Value string
	Label string
}

// SelectorView is the state of the identity selection screen
type SelectorView struct {
	Users    []domain.User
	Selected string
	Error    string
	CanRetry bool
}

// Options returns one dropdown entry per fetched user
func (v *SelectorView) Options() []Option {
	opts := make([]Option, 0, len(v.Users))
	for _, u := range v.Users {
		opts = append(opts, Option{Value: strconv.Itoa(u.ID), Label: u.Username})
	}
	return opts
}

// CanLogin is true exactly when an option is chosen
func (v *SelectorView) CanLogin() bool {
	return v.Selected != ""
}

// ListUsersQuery represents the query to load the selection screen
type ListUsersQuery struct {
	Selected string
}

// ListUsersHandler handles list users query
type ListUsersHandler struct {
	users domain.UserRepository
}

// NewListUsersHandler creates a new list users handler
func NewListUsersHandler(users domain.UserRepository) *ListUsersHandler {
	return &ListUsersHandler{users: users}
}

// Handle loads the full user list. Failures never propagate: they become a
// retryable message that tells connectivity problems apart from API errors.
func (h *ListUsersHandler) Handle(ctx context.Context, q ListUsersQuery) *SelectorView {
	view := &SelectorView{Selected: q.Selected}

	users, err := h.users.ListUsers(ctx)
	if err != nil {
		logger.Error(ctx).Err(err).Msg("Failed to load users")
		view.Error = ErrorMessage(err)
		view.CanRetry = true
		view.Selected = ""
		return view
	}

	view.Users = users
	if q.Selected != "" && !containsUser(users, q.Selected) {
		view.Selected = ""
	}
	return view
}

// ErrorMessage maps a user-list failure to the message shown on screen
func ErrorMessage(err error) string {
	if apiclient.IsConnectivity(err) {
		return MessageUnreachable
	}
	return MessageAPIError
}

func containsUser(users []domain.User, id string) bool {
	for _, u := range users {
		if strconv.Itoa(u.ID) == id {
			return true
		}
	}
	return false
}
