package database

import (
	"log"

	"github.com/toolkithub/accounts/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedAdminRoles ensures every configured admin identity has an admin role
// assignment. Only role assignment by an existing admin is exposed over the
// API, so the first admin has to come from configuration. Existing
// assignments are never downgraded here.
func SeedAdminRoles(db *gorm.DB, identities []string) error {
	for _, identity := range identities {
		role := models.UserRole{
			Identity: identity,
			Role:     models.RoleAdmin,
		}
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "identity"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"role": models.RoleAdmin}),
		}).Create(&role).Error
		if err != nil {
			return err
		}
		log.Printf("Seeded admin role for identity %s", identity)
	}
	return nil
}
