package models

import (
	"errors"
	"fmt"
	"math"
	"regexp"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is a node in the catalog tree. A category with no parent is a root;
// sub-categories reference their parent through ParentCategoryID.
type Category struct {
	BaseModel
	Name             string            `json:"name"`
	ParentCategoryID *uuid.UUID        `gorm:"type:uuid;index" json:"parent_category_id"`
	ParentCategory   *Category         `json:"parent_category,omitempty"`
	SubCategories    []Category        `gorm:"foreignKey:ParentCategoryID" json:"sub_categories,omitempty"`
	Sizes            []CategorySize    `json:"sizes,omitempty"`
	Products         []ProductCategory `json:"products,omitempty"`
}

// Size belongs to one category tree. Value orders sizes numerically: shoe sizes
// carry the literal number, clothing sizes a signed offset around M.
type Size struct {
	BaseModel
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type Color struct {
	BaseModel
	Name    string `json:"name"`
	HexCode string `json:"hex_code"`
}

type Material struct {
	BaseModel
	Name string `json:"name"`
}

// Occasion groups products by the situation they are worn in.
type Occasion struct {
	BaseModel
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Products    []Product `json:"products,omitempty"`
}

// CategorySize links a size definition to every category it applies to.
type CategorySize struct {
	BaseModel
	CategoryID uuid.UUID `gorm:"type:uuid;index" json:"category_id"`
	Category   *Category `json:"category,omitempty"`
	SizeID     uuid.UUID `gorm:"type:uuid;index" json:"size_id"`
	Size       *Size     `json:"size,omitempty"`
}

var hexCodePattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Validate checks that the hex code is of the form #RRGGBB.
func (c Color) Validate() error {
	if !hexCodePattern.MatchString(c.HexCode) {
		return fmt.Errorf("color %q: invalid hex code %q", c.Name, c.HexCode)
	}
	return nil
}

// ValidateComposition checks that a product's material percentages sum to 1.0.
func ValidateComposition(composition []ProductMaterial) error {
	if len(composition) == 0 {
		return errors.New("empty material composition")
	}
	var total float64
	for _, pm := range composition {
		total += pm.Percentage
	}
	if math.Abs(total-1.0) > 1e-9 {
		return fmt.Errorf("material composition sums to %v, want 1.0", total)
	}
	return nil
}

// maxCategoryDepth bounds ancestor walks so a corrupted parent chain cannot
// loop forever.
const maxCategoryDepth = 32

// CategoryAncestors returns the parent chain of a category, nearest first.
// It stops with an error if the chain revisits a node or exceeds the depth bound.
func CategoryAncestors(db *gorm.DB, id uuid.UUID) ([]Category, error) {
	var chain []Category
	seen := make(map[uuid.UUID]bool)

	current := id
	for depth := 0; depth <= maxCategoryDepth; depth++ {
		if seen[current] {
			return nil, fmt.Errorf("category %s: cycle through %s", id, current)
		}
		seen[current] = true

		var category Category
		if err := db.First(&category, "id = ?", current).Error; err != nil {
			return nil, err
		}
		if depth > 0 {
			chain = append(chain, category)
		}
		if category.ParentCategoryID == nil {
			return chain, nil
		}
		current = *category.ParentCategoryID
	}

	return nil, fmt.Errorf("category %s: parent chain exceeds depth %d", id, maxCategoryDepth)
}
