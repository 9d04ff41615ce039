package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// Season describes when a product is meant to be worn.
type Season string

const (
	SeasonSpring     Season = "Spring"
	SeasonSummer     Season = "Summer"
	SeasonAutumn     Season = "Autumn"
	SeasonWinter     Season = "Winter"
	SeasonDemiSeason Season = "DemiSeason"
	SeasonAll        Season = "All"
)

// Gender describes the audience a product targets.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderUnisex Gender = "Unisex"
)

type Product struct {
	BaseModel
	Name              string     `json:"name"`
	Description       string     `json:"description"`
	Season            Season     `gorm:"type:varchar(16)" json:"season"`
	Gender            Gender     `gorm:"type:varchar(16)" json:"gender"`
	CollectionYear    *int       `json:"collection_year"`
	MainMaterialID    uuid.UUID  `gorm:"type:uuid;index" json:"main_material_id"`
	MainMaterial      *Material  `json:"main_material,omitempty"`
	OccasionID        *uuid.UUID `gorm:"type:uuid" json:"occasion_id"`
	Occasion          *Occasion  `json:"occasion,omitempty"`
	SizeChartImageURL string     `json:"size_chart_image_url"`
	Discount          *float64   `json:"discount"`

	Images     []ProductImage    `json:"images,omitempty"`
	Stocks     []ProductStock    `json:"stocks,omitempty"`
	Materials  []ProductMaterial `json:"materials,omitempty"`
	Categories []ProductCategory `json:"categories,omitempty"`
}

// ProductStock is one stocked (product, color, size) combination. Combinations
// without a row are simply not offered.
type ProductStock struct {
	BaseModel
	ProductID uuid.UUID       `gorm:"type:uuid;index" json:"product_id"`
	Product   *Product        `json:"product,omitempty"`
	ColorID   uuid.UUID       `gorm:"type:uuid;index" json:"color_id"`
	Color     *Color          `json:"color,omitempty"`
	SizeID    uuid.UUID       `gorm:"type:uuid;index" json:"size_id"`
	Size      *Size           `json:"size,omitempty"`
	Stock     int             `json:"stock"`
	Price     decimal.Decimal `gorm:"type:decimal(12,2)" json:"price"`
}

// ProductImage holds the image set a product shows in a given color.
type ProductImage struct {
	BaseModel
	ProductID uuid.UUID      `gorm:"type:uuid;index" json:"product_id"`
	Product   *Product       `json:"product,omitempty"`
	ColorID   uuid.UUID      `gorm:"type:uuid;index" json:"color_id"`
	Color     *Color         `json:"color,omitempty"`
	ImageURLs pq.StringArray `gorm:"type:text[]" json:"image_urls"`
}

// ProductCategory joins a product to a category. Order is 1-based and drives
// display ordering among a product's categories.
type ProductCategory struct {
	BaseModel
	ProductID  uuid.UUID `gorm:"type:uuid;index" json:"product_id"`
	Product    *Product  `json:"product,omitempty"`
	CategoryID uuid.UUID `gorm:"type:uuid;index" json:"category_id"`
	Category   *Category `json:"category,omitempty"`
	Order      int       `gorm:"column:display_order" json:"order"`
}

// ProductMaterial is one entry of a product's weighted material composition.
type ProductMaterial struct {
	BaseModel
	ProductID  uuid.UUID `gorm:"type:uuid;index" json:"product_id"`
	Product    *Product  `json:"product,omitempty"`
	MaterialID uuid.UUID `gorm:"type:uuid;index" json:"material_id"`
	Material   *Material `json:"material,omitempty"`
	Percentage float64   `json:"percentage"`
}
