package services

import (
	"errors"

	"github.com/toolkithub/accounts/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GetUserRole returns the role assigned to an identity, defaulting to guest
// when no assignment exists.
func GetUserRole(db *gorm.DB, identity string) (string, error) {
	var role models.UserRole
	err := db.Where("identity = ?", identity).First(&role).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.RoleGuest, nil
		}
		return "", err
	}
	return role.Role, nil
}

// IsAdmin reports whether an identity holds the admin role. Any caller may
// ask; this performs no privilege check itself.
func IsAdmin(db *gorm.DB, identity string) (bool, error) {
	role, err := GetUserRole(db, identity)
	if err != nil {
		return false, err
	}
	return role == models.RoleAdmin, nil
}

// RequireAdmin is the single guard consulted by every privileged operation.
// An identity with no stored role is treated as a non-admin rather than an
// error.
func RequireAdmin(db *gorm.DB, identity string) (bool, error) {
	if identity == "" {
		return false, nil
	}
	return IsAdmin(db, identity)
}

// AssignUserRole assigns a role to the target identity. Re-assigning the
// same role is a no-op success. The caller must already be verified as
// admin; this function does not check.
func AssignUserRole(db *gorm.DB, targetIdentity, role string) error {
	if !models.ValidRole(role) {
		return ErrInvalidRole
	}

	assignment := models.UserRole{
		Identity: targetIdentity,
		Role:     role,
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "identity"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"role": role}),
	}).Create(&assignment).Error
}
