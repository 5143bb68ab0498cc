package models

import (
	"time"

	"gorm.io/datatypes"
)

// Bundle is a curated product grouping sold at a discount or a fixed
// price. Items holds the selection rules the storefront resolves against
// the catalog (category, keyword, optional product pin).
type Bundle struct {
	ID              string         `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Slug            string         `json:"slug" gorm:"uniqueIndex;type:varchar(100)"`
	Name            string         `json:"name" gorm:"type:varchar(255)" validate:"required"`
	Description     string         `json:"description"`
	DiscountPercent float64        `json:"discount_percent"`
	FixedPrice      *float64       `json:"fixed_price"`
	ImageURL        string         `json:"image_url" gorm:"type:varchar(512)"`
	Items           datatypes.JSON `json:"items"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}
