package models_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/example/wardrobe/internal/database"
	"github.com/example/wardrobe/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// In-memory sqlite lives on a single connection.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func TestColorValidate(t *testing.T) {
	valid := []string{"#FFFFFF", "#000000", "#a52a2a", "#F0E68C"}
	for _, hex := range valid {
		color := models.Color{Name: "test", HexCode: hex}
		assert.NoError(t, color.Validate(), hex)
	}

	invalid := []string{"", "FFFFFF", "#FFF", "#GGGGGG", "#FFFFFFF", "white"}
	for _, hex := range invalid {
		color := models.Color{Name: "test", HexCode: hex}
		assert.Error(t, color.Validate(), hex)
	}
}

func TestValidateComposition(t *testing.T) {
	assert.NoError(t, models.ValidateComposition([]models.ProductMaterial{
		{Percentage: 0.9},
		{Percentage: 0.1},
	}))
	assert.NoError(t, models.ValidateComposition([]models.ProductMaterial{
		{Percentage: 1},
	}))

	assert.Error(t, models.ValidateComposition(nil))
	assert.Error(t, models.ValidateComposition([]models.ProductMaterial{
		{Percentage: 0.5},
		{Percentage: 0.4},
	}))
}

func TestBaseModelAssignsID(t *testing.T) {
	db := newTestDB(t)

	color := models.Color{Name: "White", HexCode: "#FFFFFF"}
	require.NoError(t, db.Create(&color).Error)
	assert.NotEqual(t, uuid.Nil, color.ID)
	assert.False(t, color.CreatedAt.IsZero())
}

func TestCategoryAncestors(t *testing.T) {
	db := newTestDB(t)

	root := models.Category{Name: "Shirts"}
	require.NoError(t, db.Create(&root).Error)
	mid := models.Category{Name: "Polo Shirt", ParentCategoryID: &root.ID}
	require.NoError(t, db.Create(&mid).Error)
	leaf := models.Category{Name: "Slim Polo", ParentCategoryID: &mid.ID}
	require.NoError(t, db.Create(&leaf).Error)

	ancestors, err := models.CategoryAncestors(db, leaf.ID)
	require.NoError(t, err)
	require.Len(t, ancestors, 2)
	assert.Equal(t, "Polo Shirt", ancestors[0].Name)
	assert.Equal(t, "Shirts", ancestors[1].Name)

	rootAncestors, err := models.CategoryAncestors(db, root.ID)
	require.NoError(t, err)
	assert.Empty(t, rootAncestors)
}

func TestCategoryAncestorsDetectsCycle(t *testing.T) {
	db := newTestDB(t)

	a := models.Category{Name: "A"}
	require.NoError(t, db.Create(&a).Error)
	b := models.Category{Name: "B", ParentCategoryID: &a.ID}
	require.NoError(t, db.Create(&b).Error)

	// Corrupt the chain: A's parent becomes B.
	require.NoError(t, db.Model(&a).Update("parent_category_id", b.ID).Error)

	_, err := models.CategoryAncestors(db, b.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cycle")
}
