package ports

import (
	"context"

	"placeorder/internal/core/domain/model/kernel"
)

// CatalogRepository maintains the product and promotion price tables.
type CatalogRepository interface {
	ProductCatalog

	// SaveProduct inserts the product or replaces its standard unit price.
	SaveProduct(ctx context.Context, code kernel.ProductCode, price kernel.Price) error

	// DeletePromotion removes every override of the promotion. Deleting an
	// unknown promotion is not an error.
	DeletePromotion(ctx context.Context, promotion kernel.PromotionCode) error

	// SavePromotionPrice inserts or replaces one override of the promotion.
	SavePromotionPrice(
		ctx context.Context,
		promotion kernel.PromotionCode,
		code kernel.ProductCode,
		price kernel.Price,
	) error
}
