package productrepo

import (
	"context"
	"errors"

	"placeorder/internal/core/domain/model/kernel"
	"placeorder/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProductRepository implements ports.CatalogRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// ProductExists reports whether the code is in the products table.
func (r *GormProductRepository) ProductExists(ctx context.Context, code kernel.ProductCode) (bool, error) {
	if err := validateCode(code); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&ProductDTO{}).
		Where("code = ?", code.Value()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// SaveProduct upserts the product on its code.
func (r *GormProductRepository) SaveProduct(ctx context.Context, code kernel.ProductCode, price kernel.Price) error {
	if err := errors.Join(validateCode(code), price.Validate()); err != nil {
		return err
	}

	dto := ProductDTO{
		ID:        uuid.New(),
		Code:      code.Value(),
		UnitPrice: price.Value(),
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "code"}},
		DoUpdates: clause.AssignmentColumns([]string{"unit_price"}),
	}).Create(&dto).Error
}

// DeletePromotion removes every override of the promotion.
func (r *GormProductRepository) DeletePromotion(ctx context.Context, promotion kernel.PromotionCode) error {
	if promotion == "" {
		return errs.NewValueIsRequiredError("PromotionCode")
	}

	return r.db.WithContext(ctx).
		Where("promotion_code = ?", promotion.String()).
		Delete(&PromotionPriceDTO{}).Error
}

// SavePromotionPrice upserts one override on (promotion, product).
func (r *GormProductRepository) SavePromotionPrice(
	ctx context.Context,
	promotion kernel.PromotionCode,
	code kernel.ProductCode,
	price kernel.Price,
) error {
	var promotionErr error
	if promotion == "" {
		promotionErr = errs.NewValueIsRequiredError("PromotionCode")
	}
	if err := errors.Join(promotionErr, validateCode(code), price.Validate()); err != nil {
		return err
	}

	dto := PromotionPriceDTO{
		ID:            uuid.New(),
		PromotionCode: promotion.String(),
		ProductCode:   code.Value(),
		Price:         price.Value(),
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "promotion_code"}, {Name: "product_code"}},
		DoUpdates: clause.AssignmentColumns([]string{"price"}),
	}).Create(&dto).Error
}

func validateCode(code kernel.ProductCode) error {
	if code == nil {
		return errs.NewValueIsRequiredError("ProductCode")
	}
	return code.Validate()
}
