package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/toolkithub/accounts/internal/models"
	"github.com/toolkithub/accounts/internal/services"
	"github.com/toolkithub/accounts/internal/types"
	"github.com/toolkithub/accounts/internal/utils"
	"gorm.io/gorm"
)

// CatalogHandler handles tool category, tool page and tool list routes
type CatalogHandler struct {
	DB *gorm.DB
}

// AddCategoryRequest is the body of an admin category creation.
type AddCategoryRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description" validate:"max=1024"`
}

// AddPageRequest is the body of an admin tool page creation.
type AddPageRequest struct {
	Title      string                `json:"title" validate:"required,max=255"`
	Content    string                `json:"content"`
	CategoryID types.FlexUint64      `json:"categoryId"`
	Files      []models.ToolPageFile `json:"files"`
}

// parseID parses a numeric path parameter.
func parseID(c *fiber.Ctx, name string) (uint64, error) {
	return strconv.ParseUint(c.Params(name), 10, 64)
}

// AddCategory handles POST /api/catalog/categories
// @Summary Create a tool category
// @Description Admin-only; ids are assigned sequentially and never reused
// @Tags Catalog
// @Accept json
// @Produce json
// @Param body body AddCategoryRequest true "Category fields"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /catalog/categories [post]
func (h *CatalogHandler) AddCategory(c *fiber.Ctx) error {
	var body AddCategoryRequest
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "catalog.validation.input")
	}
	if err := utils.ValidateStruct(&body); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "catalog.validation.input")
	}

	category, err := services.AddToolCategory(h.DB, body.Name, body.Description)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "addCategory")
	}

	return utils.MutationSuccessResponse(c, fiber.Map{"id": category.CategoryID})
}

// AddPage handles POST /api/catalog/pages
// @Summary Create a tool page under an existing category
// @Description Admin-only; a missing category yields 404 and nothing is written
// @Tags Catalog
// @Accept json
// @Produce json
// @Param body body AddPageRequest true "Page fields"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /catalog/pages [post]
func (h *CatalogHandler) AddPage(c *fiber.Ctx) error {
	var body AddPageRequest
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "catalog.validation.input")
	}
	if err := utils.ValidateStruct(&body); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "catalog.validation.input")
	}

	page, err := services.AddToolPage(h.DB, body.Title, body.Content, body.CategoryID.Uint64(), body.Files)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFoundResponse(c, "Category "+strconv.FormatUint(body.CategoryID.Uint64(), 10)+" not found")
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "addPage")
	}

	return utils.MutationSuccessResponse(c, fiber.Map{"id": page.PageID})
}

// GetAllCategories handles GET /api/catalog/categories
// @Summary List every tool category
// @Tags Catalog
// @Produce json
// @Success 200 {array} models.ToolCategory
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /catalog/categories [get]
func (h *CatalogHandler) GetAllCategories(c *fiber.Ctx) error {
	categories, err := services.GetAllToolCategories(h.DB)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "getAllCategories")
	}

	return c.Status(fiber.StatusOK).JSON(categories)
}

// GetCategory handles GET /api/catalog/categories/:id
// @Summary Get one tool category
// @Tags Catalog
// @Produce json
// @Param id path int true "Category id"
// @Success 200 {object} models.ToolCategory
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /catalog/categories/{id} [get]
func (h *CatalogHandler) GetCategory(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, "Invalid category id", fiber.StatusBadRequest, "catalog.validation.input")
	}

	category, err := services.GetToolCategory(h.DB, id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFoundResponse(c, "Category "+c.Params("id")+" not found")
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "getCategory")
	}

	return c.Status(fiber.StatusOK).JSON(category)
}

// GetPagesByCategory handles GET /api/catalog/categories/:id/pages
// @Summary List the pages of a category
// @Tags Catalog
// @Produce json
// @Param id path int true "Category id"
// @Success 200 {array} models.ToolPage
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /catalog/categories/{id}/pages [get]
func (h *CatalogHandler) GetPagesByCategory(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, "Invalid category id", fiber.StatusBadRequest, "catalog.validation.input")
	}

	pages, err := services.GetToolPagesByCategory(h.DB, id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFoundResponse(c, "Category "+c.Params("id")+" not found")
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "getPagesByCategory")
	}

	return c.Status(fiber.StatusOK).JSON(pages)
}

// GetAllPages handles GET /api/catalog/pages
// @Summary List every tool page
// @Tags Catalog
// @Produce json
// @Success 200 {array} models.ToolPage
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /catalog/pages [get]
func (h *CatalogHandler) GetAllPages(c *fiber.Ctx) error {
	pages, err := services.GetAllToolPages(h.DB)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "getAllPages")
	}

	return c.Status(fiber.StatusOK).JSON(pages)
}

// GetPage handles GET /api/catalog/pages/:id
// @Summary Get one tool page
// @Tags Catalog
// @Produce json
// @Param id path int true "Page id"
// @Success 200 {object} models.ToolPage
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /catalog/pages/{id} [get]
func (h *CatalogHandler) GetPage(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, "Invalid page id", fiber.StatusBadRequest, "catalog.validation.input")
	}

	page, err := services.GetToolPage(h.DB, id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFoundResponse(c, "Page "+c.Params("id")+" not found")
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "getPage")
	}

	return c.Status(fiber.StatusOK).JSON(page)
}

// Initialize handles POST /api/catalog/initialize
// @Summary Populate the tool catalog from the embedded seed
// @Description Idempotent bootstrap; a second call is a no-op
// @Tags Catalog
// @Produce json
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /catalog/initialize [post]
func (h *CatalogHandler) Initialize(c *fiber.Ctx) error {
	initialized, err := services.InitializeTools(h.DB)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "initialize")
	}

	return utils.MutationSuccessResponse(c, fiber.Map{"initialized": initialized})
}

// GetAllTools handles GET /api/catalog/tools
// @Summary List the tool catalog with live usage and favorite counts
// @Tags Catalog
// @Produce json
// @Success 200 {array} services.ToolListing
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /catalog/tools [get]
func (h *CatalogHandler) GetAllTools(c *fiber.Ctx) error {
	tools, err := services.GetAllTools(h.DB)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "getAllTools")
	}

	return c.Status(fiber.StatusOK).JSON(tools)
}
