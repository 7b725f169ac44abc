package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/toolkithub/accounts/data"
	"github.com/toolkithub/accounts/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ToolListing is one entry of the public tool list: the static catalog row
// merged with live usage and favorite counts computed at read time.
type ToolListing struct {
	ToolID        string `json:"id"`
	Name          string `json:"name"`
	Icon          string `json:"icon"`
	Category      string `json:"category"`
	UsageCount    uint64 `json:"usageCount"`
	FavoriteCount uint64 `json:"favoriteCount"`
}

type catalogSeed struct {
	Categories []struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	} `json:"categories"`
	Tools []struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Icon     string `json:"icon"`
		Category string `json:"category"`
	} `json:"tools"`
}

// AddToolCategory creates a category and returns it with its sequentially
// assigned id.
func AddToolCategory(db *gorm.DB, name, description string) (*models.ToolCategory, error) {
	category := models.ToolCategory{
		Name:        name,
		Description: description,
	}
	if err := db.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// AddToolPage creates a content page under an existing category. A missing
// category is ErrNotFound and nothing is written.
func AddToolPage(db *gorm.DB, title, content string, categoryID uint64, files []models.ToolPageFile) (*models.ToolPage, error) {
	var page models.ToolPage

	err := db.Transaction(func(tx *gorm.DB) error {
		var category models.ToolCategory
		err := tx.Where("category_id = ?", categoryID).First(&category).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if files == nil {
			files = []models.ToolPageFile{}
		}
		encoded, err := json.Marshal(files)
		if err != nil {
			return err
		}

		page = models.ToolPage{
			Title:      title,
			Content:    content,
			CategoryID: categoryID,
		}
		page.Files.JSON = encoded

		return tx.Create(&page).Error
	})
	if err != nil {
		return nil, err
	}

	return &page, nil
}

// GetAllToolCategories returns every category ordered by id.
func GetAllToolCategories(db *gorm.DB) ([]models.ToolCategory, error) {
	var categories []models.ToolCategory
	if err := db.Order("category_id").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// GetToolCategory returns one category by id, or ErrNotFound.
func GetToolCategory(db *gorm.DB, categoryID uint64) (*models.ToolCategory, error) {
	var category models.ToolCategory
	err := db.Where("category_id = ?", categoryID).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

// GetAllToolPages returns every tool page ordered by id.
func GetAllToolPages(db *gorm.DB) ([]models.ToolPage, error) {
	var pages []models.ToolPage
	if err := db.Order("page_id").Find(&pages).Error; err != nil {
		return nil, err
	}
	return pages, nil
}

// GetToolPage returns one tool page by id, or ErrNotFound.
func GetToolPage(db *gorm.DB, pageID uint64) (*models.ToolPage, error) {
	var page models.ToolPage
	err := db.Where("page_id = ?", pageID).First(&page).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &page, nil
}

// GetToolPagesByCategory returns the pages of an existing category ordered
// by id. A missing category is ErrNotFound.
func GetToolPagesByCategory(db *gorm.DB, categoryID uint64) ([]models.ToolPage, error) {
	if _, err := GetToolCategory(db, categoryID); err != nil {
		return nil, err
	}

	var pages []models.ToolPage
	err := db.Where("category_id = ?", categoryID).
		Order("page_id").
		Find(&pages).Error
	if err != nil {
		return nil, err
	}
	return pages, nil
}

// InitializeTools populates the tool catalog from the embedded seed exactly
// once. A second call detects the populated catalog and returns without
// effect; the bool return reports whether this call did the population.
func InitializeTools(db *gorm.DB) (bool, error) {
	initialized := false

	err := db.Transaction(func(tx *gorm.DB) error {
		var toolCount int64
		if err := tx.Model(&models.Tool{}).Count(&toolCount).Error; err != nil {
			return err
		}
		if toolCount > 0 {
			return nil
		}

		var seed catalogSeed
		if err := json.Unmarshal(data.CatalogSeedJSON, &seed); err != nil {
			return fmt.Errorf("invalid catalog seed: %w", err)
		}

		for _, c := range seed.Categories {
			category := models.ToolCategory{
				Name:        c.Name,
				Description: c.Description,
			}
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "name"}},
				DoNothing: true,
			}).Create(&category).Error
			if err != nil {
				return err
			}
		}

		for _, t := range seed.Tools {
			tool := models.Tool{
				ToolID:   t.ID,
				Name:     t.Name,
				Icon:     t.Icon,
				Category: t.Category,
			}
			if err := tx.Create(&tool).Error; err != nil {
				return err
			}
		}

		initialized = true
		return nil
	})
	if err != nil {
		return false, err
	}

	if initialized {
		log.Printf("Tool catalog initialized from embedded seed")
	}
	return initialized, nil
}

// GetAllTools returns the static tool catalog merged with live usage and
// favorite counts. The counts are read-only joins over the usage and
// favorites stores, never cached.
func GetAllTools(db *gorm.DB) ([]ToolListing, error) {
	var tools []models.Tool
	if err := db.Order("tool_id").Find(&tools).Error; err != nil {
		return nil, err
	}

	usageCounts, err := GetAllToolUsageCounts(db)
	if err != nil {
		return nil, err
	}
	favoriteCounts, err := CountFavorites(db)
	if err != nil {
		return nil, err
	}

	listings := make([]ToolListing, 0, len(tools))
	for _, tool := range tools {
		listings = append(listings, ToolListing{
			ToolID:        tool.ToolID,
			Name:          tool.Name,
			Icon:          tool.Icon,
			Category:      tool.Category,
			UsageCount:    usageCounts[tool.ToolID],
			FavoriteCount: favoriteCounts[tool.ToolID],
		})
	}
	return listings, nil
}
