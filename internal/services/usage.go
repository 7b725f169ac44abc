package services

import (
	"errors"
	"time"

	"github.com/toolkithub/accounts/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RecordToolUsage increments the global usage counter for a tool and, when
// the caller is authenticated, upserts the per-identity last-used marker.
// Usage recording is deliberately not gated by credits; credit enforcement
// is the caller's separate concern.
func RecordToolUsage(db *gorm.DB, identity, toolID string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		// Counter upsert: two concurrent first uses must not race a
		// read-then-create, so the increment lives in the conflict clause.
		count := models.ToolUsageCount{ToolID: toolID, UsageCount: 1}
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tool_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"usage_count": gorm.Expr("usage_count + 1")}),
		}).Create(&count).Error
		if err != nil {
			return err
		}

		// Anonymous callers only move the global counter
		if identity == "" {
			return nil
		}

		record := models.ToolUsageRecord{
			Identity:   identity,
			ToolID:     toolID,
			LastUsedAt: time.Now().UTC(),
		}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "identity"}, {Name: "tool_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"last_used_at": record.LastUsedAt}),
		}).Create(&record).Error
	})
}

// GetToolUsageCount returns the global usage count for a tool. A tool that
// was never used yields 0, not an error.
func GetToolUsageCount(db *gorm.DB, toolID string) (uint64, error) {
	var count models.ToolUsageCount
	err := db.Where("tool_id = ?", toolID).First(&count).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return count.UsageCount, nil
}

// GetAllToolUsageCounts returns every tool's global usage count.
func GetAllToolUsageCounts(db *gorm.DB) (map[string]uint64, error) {
	var counts []models.ToolUsageCount
	if err := db.Find(&counts).Error; err != nil {
		return nil, err
	}

	result := make(map[string]uint64, len(counts))
	for _, c := range counts {
		result[c.ToolID] = c.UsageCount
	}
	return result, nil
}
