package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toolkithub/accounts/internal/services"
)

func TestSavePreferences(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, services.SavePreferences(db, "user-1", services.PreferencesInput{
		Theme:                  "dark",
		NotificationSettings:   "all",
		DefaultMeasurementUnit: "metric",
	}))

	prefs, err := services.GetPreferences(db, "user-1")
	require.NoError(t, err)
	require.NotNil(t, prefs)
	assert.Equal(t, "dark", prefs.Theme)
	assert.Equal(t, "all", prefs.NotificationSettings)
	assert.Equal(t, "metric", prefs.DefaultMeasurementUnit)

	// Saves replace the whole bag, including cleared fields
	require.NoError(t, services.SavePreferences(db, "user-1", services.PreferencesInput{
		Theme: "light",
	}))

	prefs, err = services.GetPreferences(db, "user-1")
	require.NoError(t, err)
	require.NotNil(t, prefs)
	assert.Equal(t, "light", prefs.Theme)
	assert.Empty(t, prefs.NotificationSettings)
	assert.Empty(t, prefs.DefaultMeasurementUnit)
}

func TestGetPreferencesAbsent(t *testing.T) {
	db := setupTestDB(t)

	prefs, err := services.GetPreferences(db, "nobody")
	require.NoError(t, err)
	assert.Nil(t, prefs)
}
