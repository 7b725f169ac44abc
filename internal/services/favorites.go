package services

import (
	"encoding/json"
	"errors"
	"log"

	"github.com/toolkithub/accounts/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SaveFavorites replaces the caller's favorite tool set wholesale. The
// submitted list is the new set; duplicates are dropped, order of first
// appearance is kept.
func SaveFavorites(db *gorm.DB, identity string, tools []string) error {
	seen := make(map[string]struct{}, len(tools))
	deduped := make([]string, 0, len(tools))
	for _, tool := range tools {
		if tool == "" {
			continue
		}
		if _, ok := seen[tool]; ok {
			continue
		}
		seen[tool] = struct{}{}
		deduped = append(deduped, tool)
	}

	encoded, err := json.Marshal(deduped)
	if err != nil {
		return err
	}

	favorites := models.UserFavorites{Identity: identity}
	favorites.Tools.JSON = encoded

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "identity"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"tools": favorites.Tools}),
	}).Create(&favorites).Error
}

// GetFavorites returns the caller's favorite tool ids. The second return
// reports whether a favorites record exists at all.
func GetFavorites(db *gorm.DB, identity string) ([]string, bool, error) {
	var favorites models.UserFavorites
	err := db.Where("identity = ?", identity).First(&favorites).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var tools []string
	if len(favorites.Tools.JSON) > 0 {
		if err := json.Unmarshal(favorites.Tools.JSON, &tools); err != nil {
			return nil, true, err
		}
	}
	return tools, true, nil
}

// CountFavorites returns per-tool favorite counts across every identity,
// computed from the source store at read time.
func CountFavorites(db *gorm.DB) (map[string]uint64, error) {
	var rows []models.UserFavorites
	if err := db.Find(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]uint64)
	for _, row := range rows {
		if len(row.Tools.JSON) == 0 {
			continue
		}
		var tools []string
		if err := json.Unmarshal(row.Tools.JSON, &tools); err != nil {
			log.Printf("Skipping unreadable favorites row for %s: %v", row.Identity, err)
			continue
		}
		for _, tool := range tools {
			counts[tool]++
		}
	}
	return counts, nil
}
