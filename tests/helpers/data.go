package helpers

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/toolkithub/accounts/internal/models"
	"gorm.io/gorm"
)

// RandomIdentity returns a unique identity for test isolation
func RandomIdentity() string {
	return uuid.New().String()
}

// RandomEmail returns a unique email address for test signups
func RandomEmail() string {
	return fmt.Sprintf("test-%s@example.com", uuid.New().String()[:8])
}

// CreateTestProfile creates a profile row with the given credit state
func CreateTestProfile(t *testing.T, db *gorm.DB, identity string, allowance, consumed uint64) {
	t.Helper()
	profile := models.UserProfile{
		Identity:            identity,
		DisplayName:         "Test User " + identity[:8],
		TotalCreditsAllowed: allowance,
		CreditsConsumed:     consumed,
		RegistrationDate:    time.Now().UTC(),
	}
	if err := db.Create(&profile).Error; err != nil {
		t.Fatalf("Failed to create profile: %v", err)
	}
}

// CreateTestRole assigns a role directly, bypassing the admin guard
func CreateTestRole(t *testing.T, db *gorm.DB, identity, role string) {
	t.Helper()
	record := models.UserRole{
		Identity: identity,
		Role:     role,
	}
	if err := db.Create(&record).Error; err != nil {
		t.Fatalf("Failed to create role: %v", err)
	}
}

// CreateTestCategory creates a tool category and returns its id
func CreateTestCategory(t *testing.T, db *gorm.DB, name, description string) uint64 {
	t.Helper()
	category := models.ToolCategory{
		Name:        name,
		Description: description,
	}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("Failed to create category: %v", err)
	}
	return category.CategoryID
}

// CreateTestTool creates a catalog tool entry
func CreateTestTool(t *testing.T, db *gorm.DB, toolID, name, category string) {
	t.Helper()
	tool := models.Tool{
		ToolID:   toolID,
		Name:     name,
		Category: category,
	}
	if err := db.Create(&tool).Error; err != nil {
		t.Fatalf("Failed to create tool: %v", err)
	}
}
