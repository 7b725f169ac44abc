package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/toolkithub/accounts/internal/middleware"
	"github.com/toolkithub/accounts/internal/services"
	"github.com/toolkithub/accounts/internal/types"
	"github.com/toolkithub/accounts/internal/utils"
	"gorm.io/gorm"
)

// ActivityHandler handles usage, favorites, preferences and search history
// routes
type ActivityHandler struct {
	DB *gorm.DB
}

// SaveFavoritesRequest is the body of a favorites save. A single tool id is
// accepted in place of an array.
type SaveFavoritesRequest struct {
	Tools types.FlexList[string] `json:"tools"`
}

// AddSearchRequest is the body of a search history append.
type AddSearchRequest struct {
	Identity     string `json:"identity"`
	Query        string `json:"searchQuery" validate:"required,max=512"`
	ResultsCount int    `json:"resultsCount" validate:"gte=0"`
}

// RecordUsage handles POST /api/activity/usage/:toolId
// @Summary Record one use of a tool
// @Description Increments the global counter; authenticated callers also get a last-used marker. Not gated by credits.
// @Tags Activity
// @Produce json
// @Param toolId path string true "Tool id"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /activity/usage/{toolId} [post]
func (h *ActivityHandler) RecordUsage(c *fiber.Ctx) error {
	identity := middleware.Identity(c)
	toolID := c.Params("toolId")

	if err := services.RecordToolUsage(h.DB, identity, toolID); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "recordUsage")
	}

	return utils.MutationSuccessResponse(c, fiber.Map{"toolId": toolID})
}

// GetUsageCount handles GET /api/activity/usage/:toolId
// @Summary Get the global usage count for a tool
// @Description A never-used tool yields 0, not an error
// @Tags Activity
// @Produce json
// @Param toolId path string true "Tool id"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /activity/usage/{toolId} [get]
func (h *ActivityHandler) GetUsageCount(c *fiber.Ctx) error {
	toolID := c.Params("toolId")

	count, err := services.GetToolUsageCount(h.DB, toolID)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "getUsageCount")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"toolId":     toolID,
		"usageCount": count,
	})
}

// GetAllUsageCounts handles GET /api/activity/usage
// @Summary Get every tool's global usage count
// @Tags Activity
// @Produce json
// @Success 200 {object} map[string]uint64
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /activity/usage [get]
func (h *ActivityHandler) GetAllUsageCounts(c *fiber.Ctx) error {
	counts, err := services.GetAllToolUsageCounts(h.DB)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "getAllUsageCounts")
	}

	return c.Status(fiber.StatusOK).JSON(counts)
}

// GetFavorites handles GET /api/activity/favorites
// @Summary Get the caller's favorite tool ids
// @Tags Activity
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Success 204
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /activity/favorites [get]
func (h *ActivityHandler) GetFavorites(c *fiber.Ctx) error {
	identity := middleware.Identity(c)

	tools, exists, err := services.GetFavorites(h.DB, identity)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "getFavorites")
	}
	if !exists {
		return c.SendStatus(fiber.StatusNoContent)
	}
	if tools == nil {
		tools = []string{}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"tools": tools})
}

// SaveFavorites handles POST /api/activity/favorites
// @Summary Replace the caller's favorite tool set
// @Description Full-replace semantics; the submitted list is the new set
// @Tags Activity
// @Accept json
// @Produce json
// @Param body body SaveFavoritesRequest true "New favorite set"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /activity/favorites [post]
func (h *ActivityHandler) SaveFavorites(c *fiber.Ctx) error {
	identity := middleware.Identity(c)

	var body SaveFavoritesRequest
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "activity.validation.input")
	}

	if err := services.SaveFavorites(h.DB, identity, body.Tools.Slice()); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "saveFavorites")
	}

	return utils.MutationSuccessResponse(c, nil)
}

// GetPreferences handles GET /api/activity/preferences
// @Summary Get the caller's UI preferences
// @Tags Activity
// @Produce json
// @Success 200 {object} models.UserPreferences
// @Success 204
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /activity/preferences [get]
func (h *ActivityHandler) GetPreferences(c *fiber.Ctx) error {
	identity := middleware.Identity(c)

	preferences, err := services.GetPreferences(h.DB, identity)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "getPreferences")
	}
	if preferences == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}

	return c.Status(fiber.StatusOK).JSON(preferences)
}

// SavePreferences handles POST /api/activity/preferences
// @Summary Save the caller's UI preferences
// @Tags Activity
// @Accept json
// @Produce json
// @Param body body services.PreferencesInput true "Preference fields"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /activity/preferences [post]
func (h *ActivityHandler) SavePreferences(c *fiber.Ctx) error {
	identity := middleware.Identity(c)

	var input services.PreferencesInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "activity.validation.input")
	}
	if err := utils.ValidateStruct(&input); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "activity.validation.input")
	}

	if err := services.SavePreferences(h.DB, identity, input); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "savePreferences")
	}

	return utils.MutationSuccessResponse(c, nil)
}

// AddSearch handles POST /api/activity/search
// @Summary Append one search history entry
// @Description The identity in the body must match the caller; writing another identity's history is rejected
// @Tags Activity
// @Accept json
// @Produce json
// @Param body body AddSearchRequest true "Search entry"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /activity/search [post]
func (h *ActivityHandler) AddSearch(c *fiber.Ctx) error {
	identity := middleware.Identity(c)

	var body AddSearchRequest
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "activity.validation.input")
	}
	if err := utils.ValidateStruct(&body); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "activity.validation.input")
	}

	if body.Identity != "" && body.Identity != identity {
		return utils.UnauthorizedResponse(c, "Cannot write another identity's search history", "activity.authorization.identity")
	}

	if err := services.AddSearchHistory(h.DB, identity, body.Query, body.ResultsCount); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "addSearch")
	}

	return utils.MutationSuccessResponse(c, nil)
}

// GetSearch handles GET /api/activity/search
// @Summary Get the caller's search history in insertion order
// @Tags Activity
// @Produce json
// @Success 200 {array} models.SearchHistoryEntry
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /activity/search [get]
func (h *ActivityHandler) GetSearch(c *fiber.Ctx) error {
	identity := middleware.Identity(c)

	entries, err := services.GetSearchHistory(h.DB, identity)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "getSearch")
	}

	return c.Status(fiber.StatusOK).JSON(entries)
}
