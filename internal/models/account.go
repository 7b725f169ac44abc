package models

import (
	"time"
)

// Role values assigned to identities. An identity with no UserRole row is a guest.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
	RoleGuest = "guest"
)

// ValidRole reports whether role is one of the assignable role values.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser || role == RoleGuest
}

// UserProfile holds the per-identity account record, including the credit ledger
// counters. CreditsConsumed never exceeds TotalCreditsAllowed.
type UserProfile struct {
	Identity            string `gorm:"primaryKey;size:64" json:"identity"`
	DisplayName         string `gorm:"size:255" json:"displayName"`
	Email               string `gorm:"size:255" json:"email"`
	TotalCreditsAllowed uint64 `gorm:"not null;default:0" json:"totalCreditsAllowed"`
	CreditsConsumed     uint64 `gorm:"not null;default:0" json:"creditsConsumed"`
	RegistrationDate    time.Time `json:"registrationDate"`
	CreatedAt           time.Time `json:"-"`
	UpdatedAt           time.Time `json:"-"`
}

// UserRole holds an explicit role assignment for an identity.
type UserRole struct {
	Identity  string `gorm:"primaryKey;size:64" json:"identity"`
	Role      string `gorm:"size:16;not null" json:"role"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName overrides the table name for UserProfile
func (UserProfile) TableName() string {
	return "user_profiles"
}

// TableName overrides the table name for UserRole
func (UserRole) TableName() string {
	return "user_roles"
}
