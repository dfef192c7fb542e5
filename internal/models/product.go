package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product is the canonical, channel-independent record owned by the catalog.
// The adaptation engine only ever reads it.
type Product struct {
	ID            string           `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	SKU           *string          `json:"sku" gorm:"unique"`
	Title         string           `json:"title" gorm:"not null"`
	Description   string           `json:"description"`
	Price         decimal.Decimal  `json:"price" gorm:"type:decimal(12,2)"`
	CostPrice     *decimal.Decimal `json:"cost_price" gorm:"type:decimal(12,2)"`
	Currency      string           `json:"currency" gorm:"default:EUR"`
	Category      string           `json:"category"`
	Images        []ProductImage   `json:"images" gorm:"serializer:json;type:text"`
	Tags          []string         `json:"tags" gorm:"serializer:json;type:text"`
	StockQuantity int              `json:"stock_quantity"`
	Brand         *string          `json:"brand"`
	SupplierName  *string          `json:"supplier_name"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// ProductImage is one entry in the product's ordered gallery. Width and
// height are intrinsic dimensions when known; zero means unknown.
type ProductImage struct {
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
