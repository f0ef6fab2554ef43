// Package catalog keeps the price lists the pricing stage reads. The lists live
// in memory and are swapped wholesale when the catalog refresh job reloads
// them, so pricing never waits on the database.
package catalog

import (
	"sync/atomic"

	"placeorder/internal/core/application/usecases/queries"
	"placeorder/internal/core/domain/model/kernel"
	"placeorder/internal/core/domain/services"
)

type priceLists struct {
	standard   map[string]kernel.Price
	promotions map[kernel.PromotionCode]map[string]kernel.Price
}

// Snapshot is safe for concurrent use. Until the first Replace every product
// costs the default price and no promotion has overrides.
type Snapshot struct {
	defaultPrice kernel.Price
	current      atomic.Pointer[priceLists]
}

func NewSnapshot(defaultPrice kernel.Price) *Snapshot {
	s := &Snapshot{defaultPrice: defaultPrice}
	s.current.Store(&priceLists{
		standard:   map[string]kernel.Price{},
		promotions: map[kernel.PromotionCode]map[string]kernel.Price{},
	})
	return s
}

// Replace installs a new catalog. Orders already holding price functions keep
// the lists they started with.
func (s *Snapshot) Replace(catalog queries.GetPriceCatalogQueryResponse) {
	lists := &priceLists{
		standard:   make(map[string]kernel.Price, len(catalog.StandardPrices)),
		promotions: make(map[kernel.PromotionCode]map[string]kernel.Price),
	}

	for _, p := range catalog.StandardPrices {
		lists.standard[p.ProductCode.Value()] = p.Price
	}

	for _, p := range catalog.PromotionPrices {
		overrides, ok := lists.promotions[p.PromotionCode]
		if !ok {
			overrides = make(map[string]kernel.Price)
			lists.promotions[p.PromotionCode] = overrides
		}
		overrides[p.ProductCode.Value()] = p.Price
	}

	s.current.Store(lists)
}

// StandardPrices returns the price function of the current catalog. Products
// missing from the catalog cost the default price.
func (s *Snapshot) StandardPrices() services.GetProductPrice {
	standard := s.current.Load().standard
	return func(code kernel.ProductCode) kernel.Price {
		if price, ok := standard[code.Value()]; ok {
			return price
		}
		return s.defaultPrice
	}
}

// PromotionPrices returns the overrides of one promotion in the current
// catalog. An unknown promotion never finds an override.
func (s *Snapshot) PromotionPrices(code kernel.PromotionCode) services.TryGetProductPrice {
	overrides := s.current.Load().promotions[code]
	return func(product kernel.ProductCode) (kernel.Price, bool) {
		price, ok := overrides[product.Value()]
		return price, ok
	}
}

// Size reports how many products and promotions the current catalog holds.
func (s *Snapshot) Size() (products, promotions int) {
	lists := s.current.Load()
	return len(lists.standard), len(lists.promotions)
}
