package ports

import (
	"context"

	"placeorder/internal/core/domain/model/kernel"
)

// ProductCatalog answers whether a product is sold.
type ProductCatalog interface {
	// ProductExists returns false, nil for an unknown product. A non-nil error
	// means the catalog could not be consulted.
	ProductExists(ctx context.Context, code kernel.ProductCode) (bool, error)
}
