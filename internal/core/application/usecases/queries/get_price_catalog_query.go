// Package queries contains read operations for retrieving system state.
// Queries return read models built straight from the database, bypassing the
// domain repositories.
package queries

import (
	"errors"

	"placeorder/internal/core/domain/model/kernel"
	"placeorder/internal/pkg/guard"
)

var ErrGetPriceCatalogQueryIsNotConstructed = errors.New(
	"GetPriceCatalogQuery must be created via NewGetPriceCatalogQuery constructor",
)

// GetPriceCatalogQuery retrieves every standard price and promotion override.
// The catalog refresh job uses it to rebuild the in-memory price snapshot.
//
// Example:
//
//	handler := NewGetPriceCatalogQueryHandler(db)
//	catalog, err := handler.Handle(ctx, NewGetPriceCatalogQuery())
//	if err != nil {
//	    return fmt.Errorf("failed to load prices: %w", err)
//	}
//	fmt.Printf("%d products, %d promotion prices\n",
//	    len(catalog.StandardPrices), len(catalog.PromotionPrices))
type GetPriceCatalogQuery struct {
	guard guard.ConstructorGuard
}

func NewGetPriceCatalogQuery() GetPriceCatalogQuery {
	return GetPriceCatalogQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPriceCatalogQuery) Validate() error {
	return q.guard.Validate(ErrGetPriceCatalogQueryIsNotConstructed)
}

// ProductPrice is the standard unit price of a product.
type ProductPrice struct {
	ProductCode kernel.ProductCode
	Price       kernel.Price
}

// PromotionPrice is a promotion's override of a product's unit price.
type PromotionPrice struct {
	PromotionCode kernel.PromotionCode
	ProductCode   kernel.ProductCode
	Price         kernel.Price
}

// GetPriceCatalogQueryResponse lists standard prices ordered by product code and
// promotion prices ordered by promotion code, then product code.
type GetPriceCatalogQueryResponse struct {
	StandardPrices  []ProductPrice
	PromotionPrices []PromotionPrice
}
