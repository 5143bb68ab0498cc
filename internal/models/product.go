package models

import (
	"time"

	"gorm.io/datatypes"
)

// Product represents an item in the catalog.
type Product struct {
	ID                string         `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name              string         `json:"name" gorm:"type:varchar(255)" validate:"required,max=255"`
	Description       string         `json:"description"`
	Price             float64        `json:"price" validate:"required,gte=0"`
	OriginalPrice     *float64       `json:"original_price,omitempty" validate:"omitempty,gte=0"`
	ImageURL          string         `json:"image_url" gorm:"type:varchar(500)"`
	Category          string         `json:"category" gorm:"type:varchar(100)"`
	StockQuantity     int            `json:"stock_quantity" gorm:"default:0" validate:"gte=0"`
	LowStockThreshold int            `json:"low_stock_threshold" gorm:"default:10"`
	SKU               string         `json:"sku" gorm:"uniqueIndex;type:varchar(100)"`
	Weight            *float64       `json:"weight,omitempty"`
	Dimensions        string         `json:"dimensions" gorm:"type:varchar(100)"`
	Rating            float64        `json:"rating" gorm:"default:0"`
	ReviewCount       int            `json:"review_count" gorm:"default:0"`
	IsActive          bool           `json:"is_active" gorm:"default:true"`
	Featured          bool           `json:"featured" gorm:"default:false"`
	ProductBenefits   string         `json:"product_benefits"`
	Directions        string         `json:"directions"`
	Ingredients       string         `json:"ingredients"`
	NutritionFacts    datatypes.JSON `json:"nutrition_facts,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

// InStock reports whether the product can satisfy the requested quantity.
func (p *Product) InStock(quantity int) bool {
	return p.IsActive && p.StockQuantity >= quantity
}

// LowStock reports whether the product is at or below its low-stock threshold.
func (p *Product) LowStock() bool {
	return p.StockQuantity <= p.LowStockThreshold
}

// DiscountPercent returns the discount relative to the original price,
// or 0 when no discount applies.
func (p *Product) DiscountPercent() float64 {
	if p.OriginalPrice == nil || *p.OriginalPrice <= p.Price {
		return 0
	}
	return (*p.OriginalPrice - p.Price) / *p.OriginalPrice * 100
}
