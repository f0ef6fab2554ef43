package contracts

import (
	"placeorder/internal/core/domain/model/order"
)

// PlaceOrderErrorDto is a failed order as {code, message}. The code is one of
// ValidationError, PricingError or RemoteServiceError.
type PlaceOrderErrorDto struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func FromPlaceOrderError(err order.PlaceOrderError) PlaceOrderErrorDto {
	return PlaceOrderErrorDto{Code: err.Code(), Message: err.Error()}
}
