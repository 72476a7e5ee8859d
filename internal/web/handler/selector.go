package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tair/property-browser/internal/selector/usecase/command"
	"github.com/tair/property-browser/internal/selector/usecase/query"
	"github.com/tair/property-browser/internal/session"
	"github.com/tair/property-browser/internal/web/middleware"
	"github.com/tair/property-browser/internal/web/views"
	"github.com/tair/property-browser/pkg/logger"
)

// SelectorHandler serves the identity selection screen
type SelectorHandler struct {
	listUsers    *query.ListUsersHandler
	pickIdentity *command.PickIdentityHandler
}

// NewSelectorHandler creates a new selector handler
func NewSelectorHandler(listUsers *query.ListUsersHandler, pickIdentity *command.PickIdentityHandler) *SelectorHandler {
	return &SelectorHandler{
		listUsers:    listUsers,
		pickIdentity: pickIdentity,
	}
}

// Index sends the browser to the screen matching its session state
func (h *SelectorHandler) Index(c *fiber.Ctx) error {
	if middleware.CurrentSession(c).State() == session.Identified {
		return c.Redirect("/properties", fiber.StatusSeeOther)
	}
	return c.Redirect("/login", fiber.StatusSeeOther)
}

// ShowLogin godoc
// @Summary Identity selection page
// @Description Lists every user of the property API in a dropdown
// @Tags Selector
// @Produce html
// @Param userId query string false "Preselected user id"
// @Success 200 {string} string "HTML page"
// @Router /login [get]
func (h *SelectorHandler) ShowLogin(c *fiber.Ctx) error {
	view := h.listUsers.Handle(c.UserContext(), query.ListUsersQuery{Selected: c.Query("userId")})
	return c.Render("login", loginPage(view))
}

// Login godoc
// @Summary Pick an identity
// @Description Stores the chosen user in the session and redirects to the listing
// @Tags Selector
// @Accept x-www-form-urlencoded
// @Produce html
// @Param userId formData string true "User id"
// @Success 303 {string} string "Redirect to /properties"
// @Failure 400 {string} string "Selection page with an error"
// @Router /login [post]
func (h *SelectorHandler) Login(c *fiber.Ctx) error {
	ctx := c.UserContext()
	sess := middleware.CurrentSession(c)
	userID := c.FormValue("userId")

	_, err := h.pickIdentity.Handle(ctx, command.PickIdentityCommand{
		SessionID: sess.ID,
		UserID:    userID,
	})
	if err == nil {
		return c.Redirect("/properties", fiber.StatusSeeOther)
	}

	logger.Warn(ctx).Err(err).Str("user_id", userID).Msg("Identity selection rejected")

	view := h.listUsers.Handle(ctx, query.ListUsersQuery{Selected: userID})
	if view.Error == "" {
		view.Error = pickErrorMessage(err)
		view.CanRetry = true
	}
	return c.Status(fiber.StatusBadRequest).Render("login", loginPage(view))
}

func pickErrorMessage(err error) string {
	switch {
	case errors.Is(err, command.ErrNoSelection):
		return "Please choose a user."
	case errors.Is(err, command.ErrUnknownUser):
		return "The selected user no longer exists. Please choose again."
	default:
		return query.ErrorMessage(err)
	}
}

func loginPage(view *query.SelectorView) views.Page {
	return views.Page{
		Lang:  "en",
		Title: "User Selection",
		View:  view,
	}
}
