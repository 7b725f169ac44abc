package models

import (
	"time"
)

// ToolCategory is an admin-authored category for tool pages. Ids are
// assigned sequentially and never reused.
type ToolCategory struct {
	CategoryID  uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Description string `gorm:"size:1024" json:"description"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

// ToolPageFile is a binary attachment on a tool page, stored inline in the
// page's Files JSON column with base64-encoded data.
type ToolPageFile struct {
	Name        string `json:"name"`
	ContentType string `json:"contentType"`
	Data        string `json:"data"`
}

// ToolPage is an admin-authored content page attached to a category.
type ToolPage struct {
	PageID     uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Title      string `gorm:"size:255;not null" json:"title"`
	Content    string `gorm:"type:text" json:"content"`
	CategoryID uint64 `gorm:"not null;index" json:"categoryId"`
	Files      JSON   `json:"files"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
}

// Tool is one entry of the static tool catalog, populated once by the
// idempotent bootstrap from the embedded seed.
type Tool struct {
	ToolID    string `gorm:"primaryKey;size:128" json:"id"`
	Name      string `gorm:"size:255;not null" json:"name"`
	Icon      string `gorm:"size:64" json:"icon"`
	Category  string `gorm:"size:255" json:"category"`
	CreatedAt time.Time `json:"-"`
}

// TableName overrides the table name for ToolCategory
func (ToolCategory) TableName() string {
	return "tool_categories"
}

// TableName overrides the table name for ToolPage
func (ToolPage) TableName() string {
	return "tool_pages"
}

// TableName overrides the table name for Tool
func (Tool) TableName() string {
	return "tools"
}
