package contracts

import (
	"placeorder/internal/core/application/usecases/queries"

	"github.com/shopspring/decimal"
)

type ProductPriceDto struct {
	ProductCode string          `json:"productCode"`
	Price       decimal.Decimal `json:"price"`
}

type PromotionPriceDto struct {
	PromotionCode string          `json:"promotionCode"`
	ProductCode   string          `json:"productCode"`
	Price         decimal.Decimal `json:"price"`
}

type PriceCatalogDto struct {
	StandardPrices  []ProductPriceDto   `json:"standardPrices"`
	PromotionPrices []PromotionPriceDto `json:"promotionPrices"`
}

// SetProductPriceDto is the body of PUT /api/v1/catalog/products/{code}.
type SetProductPriceDto struct {
	Price decimal.Decimal `json:"price"`
}

// ReplacePromotionDto is the body of PUT /api/v1/catalog/promotions/{code}:
// unit prices keyed by product code.
type ReplacePromotionDto struct {
	Prices map[string]decimal.Decimal `json:"prices"`
}

func FromPriceCatalog(resp queries.GetPriceCatalogQueryResponse) PriceCatalogDto {
	dto := PriceCatalogDto{
		StandardPrices:  make([]ProductPriceDto, 0, len(resp.StandardPrices)),
		PromotionPrices: make([]PromotionPriceDto, 0, len(resp.PromotionPrices)),
	}
	for _, p := range resp.StandardPrices {
		dto.StandardPrices = append(dto.StandardPrices, ProductPriceDto{
			ProductCode: p.ProductCode.Value(),
			Price:       p.Price.Value(),
		})
	}
	for _, p := range resp.PromotionPrices {
		dto.PromotionPrices = append(dto.PromotionPrices, PromotionPriceDto{
			PromotionCode: p.PromotionCode.String(),
			ProductCode:   p.ProductCode.Value(),
			Price:         p.Price.Value(),
		})
	}
	return dto
}
