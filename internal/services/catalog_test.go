package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toolkithub/accounts/internal/models"
	"github.com/toolkithub/accounts/internal/services"
)

func TestAddToolCategory(t *testing.T) {
	db := setupTestDB(t)

	first, err := services.AddToolCategory(db, "Converters", "Unit and format converters")
	require.NoError(t, err)
	second, err := services.AddToolCategory(db, "Formatters", "Code and data formatters")
	require.NoError(t, err)

	// Ids are assigned sequentially
	assert.Equal(t, first.CategoryID+1, second.CategoryID)

	categories, err := services.GetAllToolCategories(db)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Converters", categories[0].Name)
}

func TestAddToolPage(t *testing.T) {
	db := setupTestDB(t)

	category, err := services.AddToolCategory(db, "Converters", "")
	require.NoError(t, err)

	files := []models.ToolPageFile{
		{Name: "diagram.png", ContentType: "image/png", Data: "aGVsbG8="},
	}
	page, err := services.AddToolPage(db, "Length Converter Guide", "How to convert lengths", category.CategoryID, files)
	require.NoError(t, err)
	require.NotNil(t, page)
	assert.Equal(t, category.CategoryID, page.CategoryID)

	fetched, err := services.GetToolPage(db, page.PageID)
	require.NoError(t, err)
	assert.Equal(t, "Length Converter Guide", fetched.Title)
	assert.NotEmpty(t, fetched.Files.JSON)
}

func TestAddToolPageMissingCategory(t *testing.T) {
	db := setupTestDB(t)

	_, err := services.AddToolPage(db, "Orphan", "content", 999, nil)
	assert.ErrorIs(t, err, services.ErrNotFound)

	// Nothing written on refusal
	pages, err := services.GetAllToolPages(db)
	require.NoError(t, err)
	assert.Empty(t, pages)
}

func TestGetToolPagesByCategory(t *testing.T) {
	db := setupTestDB(t)

	converters, err := services.AddToolCategory(db, "Converters", "")
	require.NoError(t, err)
	formatters, err := services.AddToolCategory(db, "Formatters", "")
	require.NoError(t, err)

	_, err = services.AddToolPage(db, "Page A", "", converters.CategoryID, nil)
	require.NoError(t, err)
	_, err = services.AddToolPage(db, "Page B", "", converters.CategoryID, nil)
	require.NoError(t, err)
	_, err = services.AddToolPage(db, "Page C", "", formatters.CategoryID, nil)
	require.NoError(t, err)

	pages, err := services.GetToolPagesByCategory(db, converters.CategoryID)
	require.NoError(t, err)
	assert.Len(t, pages, 2)

	// An empty existing category is an empty list, not an error
	empty, err := services.AddToolCategory(db, "Empty", "")
	require.NoError(t, err)
	pages, err = services.GetToolPagesByCategory(db, empty.CategoryID)
	require.NoError(t, err)
	assert.Empty(t, pages)

	// A missing category is an error
	_, err = services.GetToolPagesByCategory(db, 999)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestGetToolCategoryMissing(t *testing.T) {
	db := setupTestDB(t)

	_, err := services.GetToolCategory(db, 42)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestInitializeToolsIdempotent(t *testing.T) {
	db := setupTestDB(t)

	initialized, err := services.InitializeTools(db)
	require.NoError(t, err)
	assert.True(t, initialized)

	tools, err := services.GetAllTools(db)
	require.NoError(t, err)
	require.NotEmpty(t, tools)

	// Repeat call detects the populated catalog and does nothing
	initialized, err = services.InitializeTools(db)
	require.NoError(t, err)
	assert.False(t, initialized)

	toolsAfter, err := services.GetAllTools(db)
	require.NoError(t, err)
	assert.Len(t, toolsAfter, len(tools))
}

func TestGetAllToolsMergesCounts(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, db.Create(&models.Tool{ToolID: "tool-a", Name: "Tool A"}).Error)
	require.NoError(t, db.Create(&models.Tool{ToolID: "tool-b", Name: "Tool B"}).Error)

	require.NoError(t, services.RecordToolUsage(db, "user-1", "tool-a"))
	require.NoError(t, services.RecordToolUsage(db, "user-2", "tool-a"))
	require.NoError(t, services.SaveFavorites(db, "user-1", []string{"tool-b"}))

	listings, err := services.GetAllTools(db)
	require.NoError(t, err)
	require.Len(t, listings, 2)

	assert.Equal(t, uint64(2), listings[0].UsageCount)
	assert.Equal(t, uint64(0), listings[0].FavoriteCount)
	assert.Equal(t, uint64(0), listings[1].UsageCount)
	assert.Equal(t, uint64(1), listings[1].FavoriteCount)
}
