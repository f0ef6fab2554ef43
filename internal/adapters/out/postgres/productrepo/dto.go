// Package productrepo persists the product catalog: standard unit prices per
// product and per-promotion price overrides.
package productrepo

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductDTO is one sellable product and its standard unit price.
type ProductDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Code      string          `gorm:"type:varchar(5);not null;uniqueIndex"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(10,2);not null"`
}

func (ProductDTO) TableName() string {
	return "products"
}

// PromotionPriceDTO overrides a product's unit price while a promotion code is
// applied. A product appears at most once per promotion.
type PromotionPriceDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PromotionCode string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_promotion_product"`
	ProductCode   string          `gorm:"type:varchar(5);not null;uniqueIndex:idx_promotion_product"`
	Price         decimal.Decimal `gorm:"type:numeric(10,2);not null"`
}

func (PromotionPriceDTO) TableName() string {
	return "promotion_prices"
}

// Migrate creates or updates the catalog tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&ProductDTO{}, &PromotionPriceDTO{})
}
