package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tair/property-browser/internal/browser/usecase/command"
	"github.com/tair/property-browser/internal/browser/usecase/query"
	"github.com/tair/property-browser/internal/web/middleware"
	"github.com/tair/property-browser/internal/web/views"
	"github.com/tair/property-browser/pkg/logger"
)

// LikeResponse is the JSON answer of a like made with fetch
type LikeResponse struct {
	Skipped     bool     `json:"skipped,omitempty"`
	Liked       bool     `json:"liked"`
	LikeCount   int      `json:"likeCount"`
	Usernames   []string `json:"usernames"`
	Placeholder string   `json:"placeholder,omitempty"`
}

// BrowserHandler serves the property listing and its actions
type BrowserHandler struct {
	loadListing  *query.LoadListingHandler
	getLikers    *query.GetLikersHandler
	likeProperty *command.LikePropertyHandler
	logout       *command.LogoutHandler
	lang         string
}

// NewBrowserHandler creates a new browser handler
func NewBrowserHandler(
	loadListing *query.LoadListingHandler,
	getLikers *query.GetLikersHandler,
	likeProperty *command.LikePropertyHandler,
	logout *command.LogoutHandler,
	lang string,
) *BrowserHandler {
	return &BrowserHandler{
		loadListing:  loadListing,
		getLikers:    getLikers,
		likeProperty: likeProperty,
		logout:       logout,
		lang:         lang,
	}
}

// ShowProperties godoc
// @Summary Property listing page
// @Description Renders every property with its like count and the session user's like state
// @Tags Properties
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router /properties [get]
func (h *BrowserHandler) ShowProperties(c *fiber.Ctx) error {
	listing := h.loadListing.Handle(c.UserContext(), query.LoadListingQuery{
		Session: middleware.CurrentSession(c),
	})

	return c.Render("properties", views.Page{
		Lang:    h.lang,
		Title:   "รายการอสังหาริมทรัพย์",
		Listing: listing,
	})
}

// Like godoc
// @Summary Like a property
// @Description Adds a favorite for the session user, then re-reads all favorites. Anonymous sessions are ignored.
// @Tags Properties
// @Produce json
// @Param id path int true "Property ID"
// @Success 200 {object} LikeResponse
// @Success 303 {string} string "Redirect to /properties for form posts"
// @Failure 400 {object} object{error=string}
// @Failure 429 {object} object{error=string,message=string}
// @Failure 502 {object} object{error=string}
// @Router /properties/{id}/like [post]
func (h *BrowserHandler) Like(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid property id")
	}

	ctx := c.UserContext()
	result, err := h.likeProperty.Handle(ctx, command.LikePropertyCommand{
		Session:    middleware.CurrentSession(c),
		PropertyID: id,
	})
	if err != nil {
		logger.Error(ctx).Err(err).Int("property_id", id).Msg("Like failed")
		if wantsJSON(c) {
			return fiber.NewError(fiber.StatusBadGateway, "failed to like property")
		}
		return c.Redirect("/properties", fiber.StatusSeeOther)
	}

	if !wantsJSON(c) {
		return c.Redirect("/properties", fiber.StatusSeeOther)
	}

	resp := LikeResponse{
		Skipped:   result.Skipped,
		Liked:     result.Liked,
		LikeCount: result.LikeCount,
		Usernames: []string{},
	}
	if result.Likers != nil {
		resp.Usernames = result.Likers.Usernames
		resp.Placeholder = result.Likers.Placeholder
	}
	return c.JSON(resp)
}

// Likers godoc
// @Summary Who liked a property
// @Description Resolves the usernames of every user who liked the property. Never cached.
// @Tags Properties
// @Produce json
// @Param id path int true "Property ID"
// @Success 200 {object} query.Likers
// @Failure 400 {object} object{error=string}
// @Router /properties/{id}/likers [get]
func (h *BrowserHandler) Likers(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid property id")
	}

	return c.JSON(h.getLikers.Handle(c.UserContext(), query.GetLikersQuery{PropertyID: id}))
}

// Logout godoc
// @Summary Log out
// @Description Clears the session identity and returns to the selection page
// @Tags Selector
// @Success 303 {string} string "Redirect to /login"
// @Router /logout [post]
func (h *BrowserHandler) Logout(c *fiber.Ctx) error {
	sess := middleware.CurrentSession(c)
	if err := h.logout.Handle(c.UserContext(), command.LogoutCommand{SessionID: sess.ID}); err != nil {
		return err
	}
	return c.Redirect("/login", fiber.StatusSeeOther)
}

func wantsJSON(c *fiber.Ctx) bool {
	return c.Accepts(fiber.MIMETextHTML, fiber.MIMEApplicationJSON) == fiber.MIMEApplicationJSON
}
