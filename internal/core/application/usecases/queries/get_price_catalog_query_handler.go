package queries

import (
	"context"
	"fmt"

	"placeorder/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetPriceCatalogQueryHandler reads the price tables with plain SQL.
//
// A row that no longer satisfies the domain constraints (an unparsable product
// code, a price out of range) fails the whole query rather than being skipped,
// so a refresh never publishes a partial catalog.
type GetPriceCatalogQueryHandler struct {
	db *gorm.DB
}

func NewGetPriceCatalogQueryHandler(db *gorm.DB) GetPriceCatalogQueryHandler {
	return GetPriceCatalogQueryHandler{db: db}
}

func (h GetPriceCatalogQueryHandler) Handle(
	ctx context.Context,
	query GetPriceCatalogQuery,
) (GetPriceCatalogQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPriceCatalogQueryResponse{}, err
	}

	standardPrices, err := h.standardPrices(ctx)
	if err != nil {
		return GetPriceCatalogQueryResponse{}, err
	}

	promotionPrices, err := h.promotionPrices(ctx)
	if err != nil {
		return GetPriceCatalogQueryResponse{}, err
	}

	return GetPriceCatalogQueryResponse{
		StandardPrices:  standardPrices,
		PromotionPrices: promotionPrices,
	}, nil
}

func (h GetPriceCatalogQueryHandler) standardPrices(ctx context.Context) ([]ProductPrice, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			code,
			unit_price
		FROM products
		ORDER BY code
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	prices := make([]ProductPrice, 0)
	for rows.Next() {
		var code string
		var unitPrice decimal.Decimal
		if err = rows.Scan(&code, &unitPrice); err != nil {
			return nil, err
		}

		productCode, price, rowErr := toCatalogEntry(code, unitPrice)
		if rowErr != nil {
			return nil, rowErr
		}
		prices = append(prices, ProductPrice{ProductCode: productCode, Price: price})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return prices, nil
}

func (h GetPriceCatalogQueryHandler) promotionPrices(ctx context.Context) ([]PromotionPrice, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			promotion_code,
			product_code,
			price
		FROM promotion_prices
		ORDER BY promotion_code, product_code
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	prices := make([]PromotionPrice, 0)
	for rows.Next() {
		var promotionCode, code string
		var amount decimal.Decimal
		if err = rows.Scan(&promotionCode, &code, &amount); err != nil {
			return nil, err
		}

		productCode, price, rowErr := toCatalogEntry(code, amount)
		if rowErr != nil {
			return nil, fmt.Errorf("promotion %s: %w", promotionCode, rowErr)
		}
		prices = append(prices, PromotionPrice{
			PromotionCode: kernel.PromotionCode(promotionCode),
			ProductCode:   productCode,
			Price:         price,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return prices, nil
}

func toCatalogEntry(code string, amount decimal.Decimal) (kernel.ProductCode, kernel.Price, error) {
	productCode, err := kernel.NewProductCode(code)
	if err != nil {
		return nil, kernel.Price{}, err
	}

	price, err := kernel.NewPrice(amount)
	if err != nil {
		return nil, kernel.Price{}, fmt.Errorf("product %s: %w", code, err)
	}

	return productCode, price, nil
}
