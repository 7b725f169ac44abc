package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toolkithub/accounts/internal/models"
	"github.com/toolkithub/accounts/internal/services"
)

func TestGetUserRoleDefaultsToGuest(t *testing.T) {
	db := setupTestDB(t)

	role, err := services.GetUserRole(db, "unassigned")
	require.NoError(t, err)
	assert.Equal(t, models.RoleGuest, role)
}

func TestAssignUserRole(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, services.AssignUserRole(db, "target", models.RoleUser))

	role, err := services.GetUserRole(db, "target")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, role)

	// Re-assigning the same role is a no-op success
	require.NoError(t, services.AssignUserRole(db, "target", models.RoleUser))

	// Assigning a different role overwrites
	require.NoError(t, services.AssignUserRole(db, "target", models.RoleAdmin))
	role, err = services.GetUserRole(db, "target")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, role)
}

func TestAssignUserRoleInvalid(t *testing.T) {
	db := setupTestDB(t)

	err := services.AssignUserRole(db, "target", "superuser")
	assert.ErrorIs(t, err, services.ErrInvalidRole)

	role, err := services.GetUserRole(db, "target")
	require.NoError(t, err)
	assert.Equal(t, models.RoleGuest, role)
}

func TestIsAdmin(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, services.AssignUserRole(db, "boss", models.RoleAdmin))
	require.NoError(t, services.AssignUserRole(db, "member", models.RoleUser))

	isAdmin, err := services.IsAdmin(db, "boss")
	require.NoError(t, err)
	assert.True(t, isAdmin)

	isAdmin, err = services.IsAdmin(db, "member")
	require.NoError(t, err)
	assert.False(t, isAdmin)

	isAdmin, err = services.IsAdmin(db, "nobody")
	require.NoError(t, err)
	assert.False(t, isAdmin)
}

func TestRequireAdmin(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, services.AssignUserRole(db, "boss", models.RoleAdmin))

	ok, err := services.RequireAdmin(db, "boss")
	require.NoError(t, err)
	assert.True(t, ok)

	// Anonymous callers are never admins
	ok, err = services.RequireAdmin(db, "")
	require.NoError(t, err)
	assert.False(t, ok)
}
