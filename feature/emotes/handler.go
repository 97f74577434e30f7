package emotes

import (
	"emote-manager/core/errcat"
	"emote-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for emotes.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the emote routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/emotes")
	group.Post("/preview", h.HandlePreview)
	group.Get("/searchemotes", h.HandleSearch)
	group.Get("/getchanneleditors", h.HandleEditors)
	group.Get("/getusereditoraccess", h.HandleEditorAccess)
	group.Post("/add", h.HandleAdd)
	group.Post("/remove", h.HandleRemove)
	group.Post("/rename", h.HandleRename)
}

// HandlePreview renders CDN preview links for the given targets.
// @Summary Preview emotes
// @Description Resolve emote ids, links and names and render CDN preview URLs without modifying anything.
// @Tags emotes
// @Accept json
// @Produce json
// @Param request body PreviewRequest true "Preview request"
// @Success 200 {object} apiResponse "Preview report"
// @Failure 400 {object} apiResponse "Invalid request"
// @Failure 500 {object} apiResponse "Internal Server Error"
// @Router /emotes/preview [post]
func (h *Handler) HandlePreview(c *fiber.Ctx) error {
	var req PreviewRequest
	if err := c.BodyParser(&req); err != nil {
		return h.fail(c, h.service.errors.New(errcat.CodeEmptyTargetList))
	}

	result, err := h.service.Preview(c.Context(), req)
	if err != nil {
		h.log(c).Error("Emote preview failed", zap.Error(err))
		return h.fail(c, err)
	}
	return c.JSON(apiResponse{Success: true, Result: result})
}

// HandleSearch lists emote names in a channel's active set.
// @Summary Search channel emotes
// @Description List the emote names of a channel's active set, optionally filtered by name or tags.
// @Tags emotes
// @Produce json
// @Param channel query string true "Channel name"
// @Param query query string false "Substring name filter"
// @Param tags query string false "Substring tag filter (takes priority over query)"
// @Success 200 {object} apiResponse "Emote names"
// @Failure 500 {object} apiResponse "Internal Server Error"
// @Router /emotes/searchemotes [get]
func (h *Handler) HandleSearch(c *fiber.Ctx) error {
	names, err := h.service.Search(c.Context(), c.Query("channel"), c.Query("query"), c.Query("tags"))
	if err != nil {
		h.log(c).Error("Emote search failed", zap.Error(err))
		return h.fail(c, err)
	}
	return c.JSON(apiResponse{Success: true, Result: names})
}

// HandleEditors lists the editors of a channel.
// @Summary List channel editors
// @Description List the usernames with editor rights on the channel.
// @Tags emotes
// @Produce json
// @Param user query string true "Channel name"
// @Success 200 {object} apiResponse "Editor usernames"
// @Failure 500 {object} apiResponse "Internal Server Error"
// @Router /emotes/getchanneleditors [get]
func (h *Handler) HandleEditors(c *fiber.Ctx) error {
	editors, err := h.service.ChannelEditors(c.Context(), c.Query("user"))
	if err != nil {
		h.log(c).Error("Editor list failed", zap.Error(err))
		return h.fail(c, err)
	}
	return c.JSON(apiResponse{Success: true, Result: editors})
}

// HandleEditorAccess lists the channels a user can edit.
// @Summary List editor access
// @Description List the channels the user has editor rights on.
// @Tags emotes
// @Produce json
// @Param user query string true "User name"
// @Success 200 {object} apiResponse "Channel names"
// @Failure 500 {object} apiResponse "Internal Server Error"
// @Router /emotes/getusereditoraccess [get]
func (h *Handler) HandleEditorAccess(c *fiber.Ctx) error {
	channels, err := h.service.EditorAccess(c.Context(), c.Query("user"))
	if err != nil {
		h.log(c).Error("Editor access lookup failed", zap.Error(err))
		return h.fail(c, err)
	}
	return c.JSON(apiResponse{Success: true, Result: channels})
}

// HandleAdd adds emotes to a channel's active set.
// @Summary Add emotes
// @Description Resolve the targets and add each emote to the target channel's active set.
// @Tags emotes
// @Accept json
// @Produce json
// @Param request body ModifyRequest true "Add request"
// @Success 200 {object} apiResponse "Outcome report"
// @Failure 400 {object} apiResponse "Invalid request"
// @Failure 403 {object} apiResponse "No editor access"
// @Failure 500 {object} apiResponse "Internal Server Error"
// @Router /emotes/add [post]
func (h *Handler) HandleAdd(c *fiber.Ctx) error {
	var req ModifyRequest
	if err := c.BodyParser(&req); err != nil {
		return h.fail(c, h.service.errors.New(errcat.CodeEmptyTargetList))
	}

	result, err := h.service.Add(c.Context(), req)
	if err != nil {
		h.log(c).Error("Emote add failed", zap.Error(err))
		return h.fail(c, err)
	}
	return c.JSON(apiResponse{Success: true, Result: result})
}

// HandleRemove removes emotes from a channel's active set.
// @Summary Remove emotes
// @Description Remove each target emote present in the target channel's active set.
// @Tags emotes
// @Accept json
// @Produce json
// @Param request body ModifyRequest true "Remove request"
// @Success 200 {object} apiResponse "Outcome report"
// @Failure 400 {object} apiResponse "Invalid request"
// @Failure 403 {object} apiResponse "No editor access"
// @Failure 500 {object} apiResponse "Internal Server Error"
// @Router /emotes/remove [post]
func (h *Handler) HandleRemove(c *fiber.Ctx) error {
	var req ModifyRequest
	if err := c.BodyParser(&req); err != nil {
		return h.fail(c, h.service.errors.New(errcat.CodeEmptyTargetList))
	}

	result, err := h.service.Remove(c.Context(), req)
	if err != nil {
		h.log(c).Error("Emote remove failed", zap.Error(err))
		return h.fail(c, err)
	}
	return c.JSON(apiResponse{Success: true, Result: result})
}

// HandleRename renames a single emote in a channel's active set.
// @Summary Rename emote
// @Description Rename one emote in the target channel's active set by removing and re-adding it.
// @Tags emotes
// @Accept json
// @Produce json
// @Param request body ModifyRequest true "Rename request"
// @Success 200 {object} apiResponse "Outcome report"
// @Failure 400 {object} apiResponse "Invalid request"
// @Failure 403 {object} apiResponse "No editor access"
// @Failure 500 {object} apiResponse "Internal Server Error"
// @Router /emotes/rename [post]
func (h *Handler) HandleRename(c *fiber.Ctx) error {
	var req ModifyRequest
	if err := c.BodyParser(&req); err != nil {
		return h.fail(c, h.service.errors.New(errcat.CodeEmptyTargetList))
	}

	result, err := h.service.Rename(c.Context(), req)
	if err != nil {
		h.log(c).Error("Emote rename failed", zap.Error(err))
		return h.fail(c, err)
	}
	return c.JSON(apiResponse{Success: true, Result: result})
}

func (h *Handler) log(c *fiber.Ctx) *zap.Logger {
	return logger.WithRayID(h.service.logger, c)
}

// fail writes the error envelope with the status mapped from the error code:
// caller mistakes are 400, missing permission is 403, everything else 500.
func (h *Handler) fail(c *fiber.Ctx, err error) error {
	desc := h.service.errors.Wrap(err)

	status := fiber.StatusInternalServerError
	switch desc.Code {
	case errcat.CodeEmptyTargetList, errcat.CodeMultiTargetRename:
		status = fiber.StatusBadRequest
	case errcat.CodePermissionDenied:
		status = fiber.StatusForbidden
	}
	return c.Status(status).JSON(apiResponse{Success: false, Error: desc})
}
