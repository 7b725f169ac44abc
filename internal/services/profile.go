package services

import (
	"errors"
	"time"

	"github.com/toolkithub/accounts/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProfileInput carries the caller-editable profile fields. The identity is
// never taken from input; it always comes from the authenticated caller.
type ProfileInput struct {
	DisplayName string `json:"displayName" validate:"max=255"`
	Email       string `json:"email" validate:"omitempty,email"`
}

// GetProfile returns the profile for an identity, or nil when none exists.
// Absence is a valid result, not an error, and no profile is created as a
// side effect.
func GetProfile(db *gorm.DB, identity string) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := db.Where("identity = ?", identity).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// SaveProfile upserts the caller's own profile. First-time creation assigns
// the configured default credit allowance with zero consumption; subsequent
// saves only touch the self-service fields, never the credit ledger.
func SaveProfile(db *gorm.DB, identity string, input ProfileInput, defaultAllowance uint64) (*models.UserProfile, error) {
	var saved models.UserProfile

	err := db.Transaction(func(tx *gorm.DB) error {
		// Reserve the row first so two concurrent first saves cannot both
		// take the create path; the loser of the insert race falls through
		// to the locked read below and updates instead.
		fresh := models.UserProfile{
			Identity:            identity,
			DisplayName:         input.DisplayName,
			Email:               input.Email,
			TotalCreditsAllowed: defaultAllowance,
			CreditsConsumed:     0,
			RegistrationDate:    time.Now().UTC(),
		}
		res := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "identity"}},
			DoNothing: true,
		}).Create(&fresh)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			saved = fresh
			return nil
		}

		var profile models.UserProfile
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("identity = ?", identity).
			First(&profile).Error
		if err != nil {
			return err
		}

		updates := map[string]interface{}{
			"display_name": input.DisplayName,
			"email":        input.Email,
		}
		if err := tx.Model(&profile).Updates(updates).Error; err != nil {
			return err
		}
		profile.DisplayName = input.DisplayName
		profile.Email = input.Email
		saved = profile
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &saved, nil
}

// GetDisplayName returns the display name for an identity. The second
// return reports whether a profile exists at all.
func GetDisplayName(db *gorm.DB, identity string) (string, bool, error) {
	profile, err := GetProfile(db, identity)
	if err != nil {
		return "", false, err
	}
	if profile == nil {
		return "", false, nil
	}
	return profile.DisplayName, true, nil
}

// UpdateProfileCredits sets the credit allowance for an identity. Lowering
// the allowance below the credits already consumed is rejected so the
// ledger invariant holds and consumption history is preserved.
func UpdateProfileCredits(db *gorm.DB, identity string, totalCreditsAllowed uint64) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var profile models.UserProfile
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("identity = ?", identity).
			First(&profile).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if totalCreditsAllowed < profile.CreditsConsumed {
			return ErrAllowanceBelowConsumed
		}

		return tx.Model(&profile).
			Update("total_credits_allowed", totalCreditsAllowed).Error
	})
}
