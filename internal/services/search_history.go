package services

import (
	"github.com/toolkithub/accounts/internal/models"
	"gorm.io/gorm"
)

// AddSearchHistory appends one search log entry for an identity. The log is
// append-only; there is no update or delete. Ownership validation (the
// identity must be the caller) happens at the handler boundary.
func AddSearchHistory(db *gorm.DB, identity, query string, resultsCount int) error {
	entry := models.SearchHistoryEntry{
		Identity:     identity,
		Query:        query,
		ResultsCount: resultsCount,
	}
	return db.Create(&entry).Error
}

// GetSearchHistory returns the identity's search log in insertion order.
func GetSearchHistory(db *gorm.DB, identity string) ([]models.SearchHistoryEntry, error) {
	var entries []models.SearchHistoryEntry
	err := db.Where("identity = ?", identity).
		Order("entry_id").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
