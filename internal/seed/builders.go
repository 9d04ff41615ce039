package seed

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/example/wardrobe/internal/models"
)

// StockPolicy selects how seeded stock quantities are generated. The default
// is a fixed quantity per row; Random switches to a uniform draw in [0, 25).
type StockPolicy struct {
	FixedQuantity int
	Random        bool
}

func (p StockPolicy) quantity(rng *rand.Rand) int {
	if p.Random {
		return rng.Intn(25)
	}
	return p.FixedQuantity
}

// centOffset keeps seeded prices off round values so they are recognizable as
// demo data.
var centOffset = decimal.New(1, -2)

// BuildStockMatrix returns one stock row per (color, size) pair, colors outer,
// sizes inner. Each price is basePrice plus a uniform integer in [-5, +5),
// minus one cent. basePrice must be large enough that no price can go
// non-positive.
func BuildStockMatrix(product models.Product, colors []models.Color, sizes []models.Size, basePrice int, policy StockPolicy, rng *rand.Rand) ([]models.ProductStock, error) {
	if len(colors) == 0 || len(sizes) == 0 {
		return nil, fmt.Errorf("product %q: stock matrix needs colors and sizes", product.Name)
	}
	if basePrice <= 5 {
		return nil, fmt.Errorf("product %q: base price %d can produce a non-positive price", product.Name, basePrice)
	}

	rows := make([]models.ProductStock, 0, len(colors)*len(sizes))
	for _, color := range colors {
		for _, size := range sizes {
			jittered := int64(basePrice + rng.Intn(10) - 5)
			rows = append(rows, models.ProductStock{
				ProductID: product.ID,
				ColorID:   color.ID,
				SizeID:    size.ID,
				Stock:     policy.quantity(rng),
				Price:     decimal.NewFromInt(jittered).Sub(centOffset),
			})
		}
	}
	return rows, nil
}

// BuildCategorySizes associates every listed category with every size, so a
// sub-category shares its parent's size vocabulary without re-deriving it.
func BuildCategorySizes(categories []models.Category, sizes []models.Size) []models.CategorySize {
	rows := make([]models.CategorySize, 0, len(categories)*len(sizes))
	for _, category := range categories {
		for _, size := range sizes {
			rows = append(rows, models.CategorySize{
				CategoryID: category.ID,
				SizeID:     size.ID,
			})
		}
	}
	return rows
}

// SizeSpec names one size and its numeric ordering value.
type SizeSpec struct {
	Name  string
	Value int
}

// NewSizes builds size rows in the order given. Sizes are scoped to one
// category tree; trees never share rows even when display names repeat.
func NewSizes(specs []SizeSpec) []models.Size {
	sizes := make([]models.Size, 0, len(specs))
	for _, spec := range specs {
		sizes = append(sizes, models.Size{
			BaseModel: models.BaseModel{ID: uuid.New()},
			Name:      spec.Name,
			Value:     spec.Value,
		})
	}
	return sizes
}

func newColor(name, hexCode string) models.Color {
	return models.Color{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      name,
		HexCode:   hexCode,
	}
}

func newOccasion(name, description string) models.Occasion {
	return models.Occasion{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		Name:        name,
		Description: description,
	}
}

func newCategory(name string, parent *models.Category) models.Category {
	category := models.Category{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      name,
	}
	if parent != nil {
		parentID := parent.ID
		category.ParentCategoryID = &parentID
	}
	return category
}

func newMaterial(name string) models.Material {
	return models.Material{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      name,
	}
}

func newProduct(name, description string, mainMaterial models.Material, gender models.Gender, occasion models.Occasion, season models.Season, collectionYear int) models.Product {
	occasionID := occasion.ID
	year := collectionYear
	return models.Product{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		Name:           name,
		Description:    description,
		Season:         season,
		Gender:         gender,
		CollectionYear: &year,
		MainMaterialID: mainMaterial.ID,
		OccasionID:     &occasionID,
	}
}

func addImages(product *models.Product, color models.Color, urls []string) {
	product.Images = append(product.Images, models.ProductImage{
		ProductID: product.ID,
		ColorID:   color.ID,
		ImageURLs: urls,
	})
}

func addMaterial(product *models.Product, material models.Material, percentage float64) {
	product.Materials = append(product.Materials, models.ProductMaterial{
		ProductID:  product.ID,
		MaterialID: material.ID,
		Percentage: percentage,
	})
}

// addCategories joins the product to each category, assigning 1-based display
// order by list position.
func addCategories(product *models.Product, categories ...models.Category) {
	for i, category := range categories {
		product.Categories = append(product.Categories, models.ProductCategory{
			ProductID:  product.ID,
			CategoryID: category.ID,
			Order:      i + 1,
		})
	}
}

func addStocks(product *models.Product, colors []models.Color, sizes []models.Size, basePrice int, policy StockPolicy, rng *rand.Rand) error {
	stocks, err := BuildStockMatrix(*product, colors, sizes, basePrice, policy, rng)
	if err != nil {
		return err
	}
	product.Stocks = stocks
	return nil
}
