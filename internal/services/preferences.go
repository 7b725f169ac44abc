package services

import (
	"errors"

	"github.com/toolkithub/accounts/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PreferencesInput carries the caller-editable UI preference fields.
type PreferencesInput struct {
	Theme                  string `json:"theme" validate:"required,max=32"`
	NotificationSettings   string `json:"notificationSettings" validate:"max=255"`
	DefaultMeasurementUnit string `json:"defaultMeasurementUnit" validate:"max=32"`
}

// SavePreferences upserts the caller's preference bag with full-replace
// semantics.
func SavePreferences(db *gorm.DB, identity string, input PreferencesInput) error {
	preferences := models.UserPreferences{
		Identity:               identity,
		Theme:                  input.Theme,
		NotificationSettings:   input.NotificationSettings,
		DefaultMeasurementUnit: input.DefaultMeasurementUnit,
	}
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "identity"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"theme":                    input.Theme,
			"notification_settings":    input.NotificationSettings,
			"default_measurement_unit": input.DefaultMeasurementUnit,
		}),
	}).Create(&preferences).Error
}

// GetPreferences returns the caller's preferences, or nil when never saved.
func GetPreferences(db *gorm.DB, identity string) (*models.UserPreferences, error) {
	var preferences models.UserPreferences
	err := db.Where("identity = ?", identity).First(&preferences).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &preferences, nil
}
