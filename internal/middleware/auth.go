package middleware

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/toolkithub/accounts/internal/config"
	"github.com/toolkithub/accounts/internal/services"
	"github.com/toolkithub/accounts/internal/types"
	"gorm.io/gorm"
)

// Identity returns the caller identity resolved by the auth middleware, or
// the empty string for anonymous callers.
func Identity(c *fiber.Ctx) string {
	identity, _ := c.Locals("identity").(string)
	return identity
}

// AuthUser requires an authenticated caller and stores the resolved
// identity in the request context.
func AuthUser(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, err := resolveIdentity(c, cfg)
		if err != nil {
			return &types.CustomError{
				Code:    fiber.StatusForbidden,
				Message: err.Error(),
				Type:    "account.authorization.user",
			}
		}
		c.Locals("identity", identity)
		return c.Next()
	}
}

// AuthAdmin requires an authenticated caller whose local role assignment is
// admin. Role gating always consults the role store, never the transport
// credential.
func AuthAdmin(cfg *config.Config, db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, err := resolveIdentity(c, cfg)
		if err != nil {
			return &types.CustomError{
				Code:    fiber.StatusForbidden,
				Message: err.Error(),
				Type:    "account.authorization.admin",
			}
		}

		isAdmin, err := services.RequireAdmin(db, identity)
		if err != nil {
			return &types.CustomError{
				Code:    fiber.StatusInternalServerError,
				Message: fmt.Sprintf("Role lookup failed: %v", err),
				Type:    "account.authorization.admin",
			}
		}
		if !isAdmin {
			return &types.CustomError{
				Code:    fiber.StatusForbidden,
				Message: "Admin role required",
				Type:    "account.authorization.admin",
			}
		}

		c.Locals("identity", identity)
		return c.Next()
	}
}

// OptionalAuth resolves the caller identity when a credential is present
// and lets anonymous callers through.
func OptionalAuth(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, err := resolveIdentity(c, cfg)
		if err == nil {
			c.Locals("identity", identity)
		}
		return c.Next()
	}
}

// resolveIdentity authenticates the transport credential and maps it to the
// stable identity value used as the key for all per-user state.
func resolveIdentity(c *fiber.Ctx, cfg *config.Config) (string, error) {
	switch cfg.AuthMode {
	case config.AuthModeToken:
		header := c.Get(fiber.HeaderAuthorization)
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			return "", fmt.Errorf("bearer token not found")
		}
		return services.ValidateToken(cfg.JWTSecret, token)

	default:
		session := c.Cookies("cookie_session")
		if session == "" {
			return "", fmt.Errorf("authorizer cookie \"cookie_session\" not found")
		}
		if !services.IsAuthorizerInitialized() {
			if err := services.InitAuthorizer(cfg, c.Protocol(), c.Hostname()); err != nil {
				return "", fmt.Errorf("authorizer init failed: %w", err)
			}
		}
		return services.ValidateSession(session)
	}
}
