package models

import (
	"time"
)

// UserFavorites holds the set of favorited tool ids for an identity.
// The Tools column is a JSON array of tool-id strings; saves replace the
// whole set.
type UserFavorites struct {
	Identity  string `gorm:"primaryKey;size:64" json:"identity"`
	Tools     JSON   `json:"tools"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// UserPreferences holds the UI preference bag for an identity.
type UserPreferences struct {
	Identity               string `gorm:"primaryKey;size:64" json:"identity"`
	Theme                  string `gorm:"size:32" json:"theme"`
	NotificationSettings   string `gorm:"size:255" json:"notificationSettings,omitempty"`
	DefaultMeasurementUnit string `gorm:"size:32" json:"defaultMeasurementUnit,omitempty"`
	CreatedAt              time.Time `json:"-"`
	UpdatedAt              time.Time `json:"-"`
}

// SearchHistoryEntry is one append-only search log record for an identity.
type SearchHistoryEntry struct {
	EntryID      uint64 `gorm:"primaryKey;autoIncrement" json:"-"`
	Identity     string `gorm:"size:64;not null;index:idx_search_identity" json:"identity"`
	Query        string `gorm:"size:512;not null" json:"searchQuery"`
	ResultsCount int    `gorm:"not null;default:0" json:"resultsCount"`
	CreatedAt    time.Time `json:"timestamp"`
}

// ToolUsageCount is the global per-tool aggregate usage counter. It only
// ever increases, once per successful usage recording.
type ToolUsageCount struct {
	ToolID     string `gorm:"primaryKey;size:128" json:"toolId"`
	UsageCount uint64 `gorm:"not null;default:0" json:"usageCount"`
	UpdatedAt  time.Time `json:"-"`
}

// ToolUsageRecord marks the last use of a tool by an identity.
type ToolUsageRecord struct {
	RecordID   uint64 `gorm:"primaryKey;autoIncrement" json:"-"`
	Identity   string `gorm:"size:64;not null;index:idx_usage_identity_tool,unique" json:"identity"`
	ToolID     string `gorm:"size:128;not null;index:idx_usage_identity_tool,unique" json:"toolId"`
	LastUsedAt time.Time `json:"lastUsedAt"`
}

// TableName overrides the table name for UserFavorites
func (UserFavorites) TableName() string {
	return "user_favorites"
}

// TableName overrides the table name for UserPreferences
func (UserPreferences) TableName() string {
	return "user_preferences"
}

// TableName overrides the table name for SearchHistoryEntry
func (SearchHistoryEntry) TableName() string {
	return "search_history"
}

// TableName overrides the table name for ToolUsageCount
func (ToolUsageCount) TableName() string {
	return "tool_usage_counts"
}

// TableName overrides the table name for ToolUsageRecord
func (ToolUsageRecord) TableName() string {
	return "tool_usage_records"
}
