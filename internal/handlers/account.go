package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/toolkithub/accounts/internal/config"
	"github.com/toolkithub/accounts/internal/middleware"
	"github.com/toolkithub/accounts/internal/models"
	"github.com/toolkithub/accounts/internal/services"
	"github.com/toolkithub/accounts/internal/types"
	"github.com/toolkithub/accounts/internal/utils"
	"gorm.io/gorm"
)

// AccountHandler handles profile, credit and role routes
type AccountHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

// ConsumeCreditsRequest is the body of a credit consumption call.
type ConsumeCreditsRequest struct {
	Amount types.FlexUint64 `json:"amount"`
}

// UpdateCreditsRequest is the body of an admin allowance update.
type UpdateCreditsRequest struct {
	TotalCreditsAllowed types.FlexUint64 `json:"totalCreditsAllowed"`
}

// AssignRoleRequest is the body of an admin role assignment.
type AssignRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

// GetOwnProfile handles GET /api/account/profile
// @Summary Get the caller's profile
// @Description Get the authenticated caller's own profile; 204 when none exists
// @Tags Account
// @Produce json
// @Success 200 {object} models.UserProfile
// @Success 204
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /account/profile [get]
func (h *AccountHandler) GetOwnProfile(c *fiber.Ctx) error {
	identity := middleware.Identity(c)

	profile, err := services.GetProfile(h.DB, identity)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "getOwnProfile")
	}
	if profile == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}

	return c.Status(fiber.StatusOK).JSON(profile)
}

// SaveOwnProfile handles POST /api/account/profile
// @Summary Save the caller's profile
// @Description Upsert the caller's own profile; the identity always comes from the credential, never the body
// @Tags Account
// @Accept json
// @Produce json
// @Param body body services.ProfileInput true "Profile fields"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /account/profile [post]
func (h *AccountHandler) SaveOwnProfile(c *fiber.Ctx) error {
	identity := middleware.Identity(c)

	var input services.ProfileInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "account.validation.input")
	}
	if err := utils.ValidateStruct(&input); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "account.validation.input")
	}

	profile, err := services.SaveProfile(h.DB, identity, input, h.Cfg.DefaultCreditAllowance)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "saveOwnProfile")
	}

	return utils.MutationSuccessResponse(c, fiber.Map{"profile": profile})
}

// GetProfile handles GET /api/account/profile/:identity
// @Summary Get a profile by identity
// @Description Public read of any identity's profile; 204 when none exists
// @Tags Account
// @Produce json
// @Param identity path string true "Identity"
// @Success 200 {object} models.UserProfile
// @Success 204
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /account/profile/{identity} [get]
func (h *AccountHandler) GetProfile(c *fiber.Ctx) error {
	identity := c.Params("identity")

	profile, err := services.GetProfile(h.DB, identity)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "getProfile")
	}
	if profile == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}

	return c.Status(fiber.StatusOK).JSON(profile)
}

// GetDisplayName handles GET /api/account/display-name/:identity
// @Summary Get a display name by identity
// @Tags Account
// @Produce json
// @Param identity path string true "Identity"
// @Success 200 {object} map[string]interface{}
// @Success 204
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /account/display-name/{identity} [get]
func (h *AccountHandler) GetDisplayName(c *fiber.Ctx) error {
	identity := c.Params("identity")

	displayName, exists, err := services.GetDisplayName(h.DB, identity)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "getDisplayName")
	}
	if !exists {
		return c.SendStatus(fiber.StatusNoContent)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"identity":    identity,
		"displayName": displayName,
	})
}

// UpdateCredits handles POST /api/account/credits/:identity
// @Summary Set an identity's credit allowance
// @Description Admin-only; rejected when the new allowance is below the credits already consumed
// @Tags Account
// @Accept json
// @Produce json
// @Param identity path string true "Identity"
// @Param body body UpdateCreditsRequest true "New allowance"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /account/credits/{identity} [post]
func (h *AccountHandler) UpdateCredits(c *fiber.Ctx) error {
	identity := c.Params("identity")

	var body UpdateCreditsRequest
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "account.validation.input")
	}

	err := services.UpdateProfileCredits(h.DB, identity, body.TotalCreditsAllowed.Uint64())
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFoundResponse(c, "Profile not found for identity '"+identity+"'")
		}
		if errors.Is(err, services.ErrAllowanceBelowConsumed) {
			return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "account.validation.allowance")
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "updateCredits")
	}

	return utils.MutationSuccessResponse(c, fiber.Map{
		"identity":            identity,
		"totalCreditsAllowed": body.TotalCreditsAllowed,
	})
}

// ConsumeCredits handles POST /api/account/credits/consume
// @Summary Consume credits from the caller's balance
// @Description Atomic check-then-increment; insufficient balance yields consumed=false, not an error
// @Tags Account
// @Accept json
// @Produce json
// @Param body body ConsumeCreditsRequest true "Amount to consume"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /account/credits/consume [post]
func (h *AccountHandler) ConsumeCredits(c *fiber.Ctx) error {
	identity := middleware.Identity(c)

	var body ConsumeCreditsRequest
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "account.validation.input")
	}
	if body.Amount.Uint64() == 0 {
		return utils.ErrorResponse(c, "Amount must be greater than zero", fiber.StatusBadRequest, "account.validation.input")
	}

	consumed, err := services.ConsumeCredits(h.DB, identity, body.Amount.Uint64())
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "consumeCredits")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"ok":       true,
		"consumed": consumed,
		"amount":   body.Amount,
	})
}

// GetCreditBalance handles GET /api/account/credits/:identity
// @Summary Get an identity's derived credit status
// @Tags Account
// @Produce json
// @Param identity path string true "Identity"
// @Success 200 {object} services.CreditStatus
// @Success 204
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /account/credits/{identity} [get]
func (h *AccountHandler) GetCreditBalance(c *fiber.Ctx) error {
	identity := c.Params("identity")

	status, err := services.GetCreditBalance(h.DB, identity)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "getCreditBalance")
	}
	if status == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}

	return c.Status(fiber.StatusOK).JSON(status)
}

// ListCreditBalances handles GET /api/account/credits
// @Summary List every identity's derived credit status
// @Description Admin-only, computed on demand, never cached
// @Tags Account
// @Produce json
// @Success 200 {array} services.CreditStatus
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /account/credits [get]
func (h *AccountHandler) ListCreditBalances(c *fiber.Ctx) error {
	statuses, err := services.ListAllCreditBalances(h.DB)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "listCreditBalances")
	}

	return c.Status(fiber.StatusOK).JSON(statuses)
}

// AssignRole handles POST /api/account/role/:identity
// @Summary Assign a role to an identity
// @Description Admin-only; re-assigning the same role is a no-op success
// @Tags Account
// @Accept json
// @Produce json
// @Param identity path string true "Identity"
// @Param body body AssignRoleRequest true "Role to assign"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /account/role/{identity} [post]
func (h *AccountHandler) AssignRole(c *fiber.Ctx) error {
	identity := c.Params("identity")

	var body AssignRoleRequest
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "account.validation.input")
	}
	if err := utils.ValidateStruct(&body); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "account.validation.input")
	}

	if err := services.AssignUserRole(h.DB, identity, body.Role); err != nil {
		if errors.Is(err, services.ErrInvalidRole) {
			return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "account.validation.role")
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "assignRole")
	}

	return utils.MutationSuccessResponse(c, fiber.Map{
		"identity": identity,
		"role":     body.Role,
	})
}

// GetOwnRole handles GET /api/account/role
// @Summary Get the caller's role
// @Description Anonymous callers and identities with no assignment are guests
// @Tags Account
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /account/role [get]
func (h *AccountHandler) GetOwnRole(c *fiber.Ctx) error {
	identity := middleware.Identity(c)

	role := models.RoleGuest
	if identity != "" {
		var err error
		role, err = services.GetUserRole(h.DB, identity)
		if err != nil {
			return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "getOwnRole")
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"role": role})
}

// IsAdmin handles GET /api/account/role/admin
// @Summary Report whether the caller is an admin
// @Description Never itself requires admin privilege to invoke
// @Tags Account
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /account/role/admin [get]
func (h *AccountHandler) IsAdmin(c *fiber.Ctx) error {
	identity := middleware.Identity(c)

	admin := false
	if identity != "" {
		var err error
		admin, err = services.IsAdmin(h.DB, identity)
		if err != nil {
			return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "isAdmin")
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"admin": admin})
}
